// Package api is the main api web server
package api

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/aouyang1/photogallery/api/models"
	"github.com/aouyang1/photogallery/api/web/templates"
	"github.com/aouyang1/photogallery/exifmeta"
	"github.com/aouyang1/photogallery/gallery"
	"github.com/gin-gonic/gin"
)

//go:embed web/static/*
var webFiles embed.FS

// ImageLister is the view of the photo directory the server needs.
type ImageLister interface {
	List() ([]string, error)
	Open(name string) (*os.File, fs.FileInfo, error)
}

// MetadataExtractor turns an image name into its display metadata.
type MetadataExtractor interface {
	Extract(name string) exifmeta.Result
}

// Options configures the HTTP server around the router.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type WebServer struct {
	router    *gin.Engine
	opts      Options
	lister    ImageLister
	extractor MetadataExtractor
}

func NewWebServer(opts Options, lister ImageLister, extractor MetadataExtractor) (*WebServer, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(), gin.Recovery())

	ws := &WebServer{
		router:    router,
		opts:      opts,
		lister:    lister,
		extractor: extractor,
	}

	if err := ws.setupRoutes(); err != nil {
		return nil, err
	}
	return ws, nil
}

// Handler exposes the router, mainly for tests.
func (ws *WebServer) Handler() http.Handler {
	return ws.router
}

func (ws *WebServer) setupRoutes() error {
	staticFS, err := fs.Sub(webFiles, "web/static")
	if err != nil {
		return fmt.Errorf("failed to create static filesystem: %w", err)
	}
	ws.router.StaticFS("/static", http.FS(staticFS))

	ws.router.GET("/", ws.handleHome)
	ws.router.GET("/view/:filename", ws.handleView)
	ws.router.GET("/photos/*filename", ws.handlePhoto)
	ws.router.GET("/gallery", ws.handleGallery)

	ws.router.GET("/api/images", ws.handleListImages)
	ws.router.GET("/api/images/:filename/metadata", ws.handleMetadata)
	return nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (ws *WebServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         ws.opts.Addr,
		Handler:      ws.router,
		ReadTimeout:  ws.opts.ReadTimeout,
		WriteTimeout: ws.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting web server", "addr", ws.opts.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ws.opts.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func (ws *WebServer) handleHome(c *gin.Context) {
	images, err := ws.lister.List()
	if err != nil {
		slog.Error("failed to list images", "error", err)
		c.String(http.StatusInternalServerError, "Failed to read the photos directory.")
		return
	}
	if len(images) == 0 {
		c.String(http.StatusNotFound, templates.NoImagesMessage)
		return
	}
	c.Redirect(http.StatusFound, templates.ViewURL(images[0]))
}

func (ws *WebServer) handleView(c *gin.Context) {
	name := c.Param("filename")

	images, err := ws.lister.List()
	if err != nil {
		slog.Error("failed to list images", "error", err)
		c.String(http.StatusInternalServerError, "Failed to read the photos directory.")
		return
	}

	view, err := gallery.Navigate(images, name)
	if err != nil {
		c.String(http.StatusNotFound, "Image not found.")
		return
	}

	res := ws.extractor.Extract(name)
	render(c, http.StatusOK, templates.ViewPage(templates.ViewPageData{
		View:     view,
		Metadata: res.Record,
	}))
}

func (ws *WebServer) handlePhoto(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filename"), "/")

	f, info, err := ws.lister.Open(name)
	if err != nil {
		if errors.Is(err, gallery.ErrInvalidPath) {
			c.String(http.StatusBadRequest, "Invalid photo path.")
			return
		}
		c.String(http.StatusNotFound, "Photo file not found: %s", name)
		return
	}
	defer f.Close()

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

func (ws *WebServer) handleGallery(c *gin.Context) {
	images, err := ws.lister.List()
	if err != nil {
		slog.Error("failed to list images", "error", err)
		c.String(http.StatusInternalServerError, "Failed to read the photos directory.")
		return
	}
	render(c, http.StatusOK, templates.GalleryPage(images))
}

func (ws *WebServer) handleListImages(c *gin.Context) {
	images, err := ws.lister.List()
	if err != nil {
		slog.Error("failed to list images", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to list images: %v", err)})
		return
	}
	c.JSON(http.StatusOK, models.ImageListResponse{
		Images: images,
		Total:  len(images),
	})
}

func (ws *WebServer) handleMetadata(c *gin.Context) {
	name := c.Param("filename")

	images, err := ws.lister.List()
	if err != nil {
		slog.Error("failed to list images", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to list images: %v", err)})
		return
	}

	view, err := gallery.Navigate(images, name)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Image '%s' not found", name)})
		return
	}

	res := ws.extractor.Extract(name)
	c.JSON(http.StatusOK, models.MetadataResponse{
		Filename: name,
		Status:   res.Status.String(),
		Metadata: res.Record,
		Prev:     view.Prev,
		Next:     view.Next,
		Position: view.Position,
		Total:    view.Total,
	})
}

func render(c *gin.Context, status int, page templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := page.Render(c.Request.Context(), c.Writer); err != nil {
		slog.Error("failed to render page", "path", c.Request.URL.Path, "error", err)
	}
}
