package server

import (
	"bytes"
	"net/http"

	"github.com/Houeta/shelf-watch/internal/accordion"
	"github.com/Houeta/shelf-watch/internal/render"
	"github.com/Houeta/shelf-watch/internal/services/loader"
	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

// index renders the dashboard page. Each ?open=<site>:<panel> opens a panel.
func (s *Server) index(c *gin.Context) {
	var refs []accordion.Ref
	for _, raw := range c.QueryArray("open") {
		ref, err := accordion.ParseRef(raw)
		if err != nil {
			s.log.DebugContext(c.Request.Context(), "Ignoring bad panel reference", "ref", raw, "error", err)
			continue
		}
		refs = append(refs, ref)
	}

	view, err := s.loader.Dashboard(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		s.renderFailure(c)
		return
	}

	var buf bytes.Buffer
	if err = s.renderer.Dashboard(&buf, view, refs...); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "failed to render dashboard")
		return
	}

	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

func (s *Server) renderFailure(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.renderer.Failure(&buf, loader.FailureMessage); err != nil {
		_ = c.Error(err)
		c.String(http.StatusBadGateway, loader.FailureMessage)
		return
	}

	c.Data(http.StatusBadGateway, htmlContentType, buf.Bytes())
}

// dashboard returns the whole view-model.
func (s *Server) dashboard(c *gin.Context) {
	view, err := s.loader.Dashboard(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": loader.FailureMessage})
		return
	}

	c.JSON(http.StatusOK, view)
}

// site returns the view-model of one site.
func (s *Server) site(c *gin.Context) {
	view, err := s.loader.Dashboard(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": loader.FailureMessage})
		return
	}

	key := c.Param("key")
	site, ok := view.Site(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "site not found", "key": key})
		return
	}

	c.JSON(http.StatusOK, site)
}

func (s *Server) stylesheet(c *gin.Context) {
	c.Data(http.StatusOK, "text/css; charset=utf-8", render.Stylesheet)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
