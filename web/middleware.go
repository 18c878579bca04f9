package web

import (
	"net/http"
	"strings"
	"time"

	"recipesearch/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// sessionCookie holds the signed session token
const sessionCookie = "recipe_session"

// CorsMiddleware handles CORS headers for cross-origin API requests
func CorsMiddleware(c rweb.Context) error {
	c.Response().SetHeader("Access-Control-Allow-Origin", "*")
	c.Response().SetHeader("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Response().SetHeader("Access-Control-Allow-Headers", "Content-Type, Accept, HX-Request, HX-Trigger, HX-Target, HX-Current-URL")

	// Handle preflight OPTIONS requests
	if c.Request().Method() == "OPTIONS" {
		c.SetStatus(http.StatusOK)
		return nil
	}

	return c.Next()
}

// SessionMiddleware ties each browser to its own search widget.
// A missing, expired or tampered cookie starts a fresh session.
func SessionMiddleware(signer *models.SessionSigner) rweb.Handler {
	return func(c rweb.Context) error {
		if token, err := c.GetCookie(sessionCookie); err == nil && token != "" {
			if id, err := signer.ValidateSession(token); err == nil {
				c.Set("session_id", id)
				return c.Next()
			}
			logger.Debug("Rejected session cookie", "path", c.Request().Path())
		}

		id, token, err := signer.NewSession()
		if err != nil {
			logger.LogErr(err, "failed to create session")
			c.SetStatus(http.StatusInternalServerError)
			return nil
		}
		if err := c.SetCookie(sessionCookie, token); err != nil {
			logger.LogErr(err, "failed to set session cookie")
		}

		c.Set("session_id", id)
		return c.Next()
	}
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// Recipe images are hosted by the API provider, htmx comes from unpkg
	csp := []string{
		"default-src 'self'",
		"script-src 'self' https://unpkg.com",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data: https:",
		"connect-src 'self'",
		"form-action 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// LoggingMiddleware provides detailed request logging
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()

	logger.Debug("Request started",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
	)

	err := c.Next()

	logger.Debug("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"duration", time.Since(start),
		"error", err,
	)

	return err
}
