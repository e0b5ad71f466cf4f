// Package google provides shared plumbing for the Google Drive
// document source: service construction from service-account
// credentials and client-side rate limiting.
package google
