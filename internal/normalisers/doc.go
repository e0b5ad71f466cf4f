// Package normalisers contains embed-URL normalisation rules.
// Each sub-package handles one provider; gdocs covers Google
// Docs/Sheets/Slides. Normalisers are pure: no network, no state.
package normalisers
