package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"phrasebot/display"
	"phrasebot/phrases"
)

const shutdownTimeout = 5 * time.Second

//go:embed html/*.html
var embeddedHTMLFiles embed.FS

// Server serves a page whose footer element is rotated on every load.
type Server struct {
	rotator  *phrases.Rotator
	surface  *display.Memory
	footerID string
}

func NewServer(rotator *phrases.Rotator, surface *display.Memory, footerID string) *Server {
	return &Server{rotator: rotator, surface: surface, footerID: footerID}
}

func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error(err)
		}
	}()
	log.Info("web server listening", "addr", addr)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(template.Must(template.ParseFS(embeddedHTMLFiles, "html/*.html")))

	router.GET("/", s.renderRoot)
	router.GET("/footer", s.renderFooter)
	router.GET("/phrases", s.renderPhrases)
	return router
}

func (s *Server) renderRoot(c *gin.Context) {
	footer, _ := s.surface.Text(s.footerID)
	c.HTML(http.StatusOK, "index", gin.H{
		"Title":    fmt.Sprintf("%s phrases", humanize.Comma(int64(s.rotator.Set().Len()))),
		"FooterID": s.footerID,
		"Footer":   footer,
	})
}

// renderFooter answers 404 with no body when the footer element is missing,
// which leaves the page as it was.
func (s *Server) renderFooter(c *gin.Context) {
	err := s.rotator.UpdateElement(c.Request.Context(), s.surface, s.footerID)
	if errors.Is(err, phrases.ErrTargetNotFound) {
		log.Warn("footer target not found", "target", s.footerID)
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}
	text, _ := s.surface.Text(s.footerID)
	c.HTML(http.StatusOK, "footer", text)
}

func (s *Server) renderPhrases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count":   s.rotator.Set().Len(),
		"phrases": s.rotator.Set().All(),
	})
}
