// Package web serves the document menu, per-document embed pages and
// QR codes. It only ever reads the registry's current snapshot;
// requests never wait on a refresh cycle.
package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docfolio/docfolio/internal/core/domain"
	"github.com/docfolio/docfolio/internal/core/ports/driven"
	"github.com/docfolio/docfolio/internal/core/ports/driving"
	"github.com/docfolio/docfolio/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Options holds the presentation chrome and link configuration.
type Options struct {
	PageTitle  string
	PageHeader string
	BaseURL    string
	HomeLink   string
}

// Server is the HTTP surface over the registry.
type Server struct {
	registry driving.RegistryReader
	encoder  driven.QREncoder
	opts     Options
	engine   *gin.Engine
}

// NewServer builds the router. Panics only on a broken embedded
// template set, which is a build defect, not a runtime condition.
func NewServer(registry driving.RegistryReader, encoder driven.QREncoder, opts Options) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	s := &Server{
		registry: registry,
		encoder:  encoder,
		opts:     opts,
		engine:   engine,
	}

	engine.GET("/", s.handleIndex)
	engine.GET("/view/:slug", s.handleView)
	engine.GET("/qr/:slug", s.handleQR)
	engine.GET("/healthz", s.handleHealth)

	return s
}

// Handler returns the router for mounting on an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleIndex(c *gin.Context) {
	snapshot := s.registry.Current()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"PageTitle":  s.opts.PageTitle,
		"PageHeader": s.opts.PageHeader,
		"HomeLink":   s.opts.HomeLink,
		"Entries":    snapshot.Entries(),
	})
}

func (s *Server) handleView(c *gin.Context) {
	slug := c.Param("slug")
	entry, ok := s.registry.Lookup(slug)
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{
			"PageTitle": s.opts.PageTitle,
			"Slug":      slug,
		})
		return
	}

	c.HTML(http.StatusOK, "view.html", gin.H{
		"PageTitle":  s.opts.PageTitle,
		"PageHeader": s.opts.PageHeader,
		"HomeLink":   s.opts.HomeLink,
		"Entry":      entry,
		"QRPath":     "/qr/" + entry.Slug + ".png",
	})
}

// handleQR serves the QR code for a document page. The payload is
// the absolute /view URL so a scanned phone lands on this site, not
// on the provider.
func (s *Server) handleQR(c *gin.Context) {
	slug := strings.TrimSuffix(c.Param("slug"), ".png")
	entry, ok := s.registry.Lookup(slug)
	if !ok {
		c.String(http.StatusNotFound, "unknown document %q", slug)
		return
	}

	size := 0
	if v := c.Query("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			size = n
		}
	}

	png, err := s.encoder.Encode(s.pageURL(entry), size)
	if err != nil {
		// A failed encode is a missing image, never a crash.
		logger.Warn("web: qr encode for %s failed: %v", slug, err)
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrEncodeFailed) {
			status = http.StatusNotFound
		}
		c.Status(status)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (s *Server) handleHealth(c *gin.Context) {
	snapshot := s.registry.Current()
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"entries":  snapshot.Len(),
		"cycle":    snapshot.CycleID,
		"built_at": snapshot.BuiltAt,
	})
}

func (s *Server) pageURL(entry domain.Entry) string {
	return strings.TrimSuffix(s.opts.BaseURL, "/") + "/view/" + entry.Slug
}
