package web

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// Embed static directory files
//
//go:embed all:static
var staticFiles embed.FS

// faviconSVG is a green tile with a bowl and "RS"
const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500"><rect width="500" height="500" rx="40" fill="#22c55e"/><circle cx="250" cy="270" r="150" fill="none" stroke="white" stroke-width="30"/><rect x="120" y="250" width="260" height="30" rx="15" fill="white"/><text x="250" y="200" font-family="Arial,sans-serif" font-weight="900" font-size="120" fill="white" text-anchor="middle">RS</text></svg>`

// SetupStaticFiles configures static file serving using embedded files
func SetupStaticFiles(s *rweb.Server) {
	// Get the static subdirectory from embedded files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.LogErr(err, "failed to get static subdirectory")
		return
	}

	// Serve /favicon.ico as an inline SVG so no separate icon file is needed
	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	// Serve static files at /static/ path
	s.Get("/static/*", func(c rweb.Context) error {
		// Strip /static/ prefix and serve from embedded FS
		path := strings.TrimPrefix(c.Request().Path(), "/static/")

		// Open and serve the file
		file, err := staticFS.Open(path)
		if err != nil {
			c.SetStatus(http.StatusNotFound)
			return nil
		}
		defer file.Close()

		// Directories are not listed
		stat, err := file.Stat()
		if err != nil {
			c.SetStatus(http.StatusInternalServerError)
			return nil
		}
		if stat.IsDir() {
			c.SetStatus(http.StatusNotFound)
			return nil
		}

		// Set appropriate content type based on file extension
		if contentType := getContentType(path); contentType != "" {
			c.Response().SetHeader("Content-Type", contentType)
		}

		// The page links app.css with ?v=N, so a versioned URL never changes content
		if isVersioned(c.Request().QueryParam("v")) {
			c.Response().SetHeader("Cache-Control", "public, max-age=31536000") // 1 year
		} else {
			c.Response().SetHeader("Cache-Control", "public, max-age=3600") // 1 hour
		}

		// Read file content
		content, err := io.ReadAll(file)
		if err != nil {
			c.SetStatus(http.StatusInternalServerError)
			return nil
		}

		return c.Bytes(content)
	})
}

// getContentType returns the content type based on file extension
func getContentType(path string) string {
	switch {
	case strings.HasSuffix(path, ".css"):
		return "text/css"
	case strings.HasSuffix(path, ".js"):
		return "application/javascript"
	case strings.HasSuffix(path, ".svg"):
		return "image/svg+xml"
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".jpg"), strings.HasSuffix(path, ".jpeg"):
		return "image/jpeg"
	default:
		return ""
	}
}

// isVersioned reports whether a static URL carries a cache-busting version
func isVersioned(v string) bool {
	return v != ""
}
