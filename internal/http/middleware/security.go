// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides SecurityHeaders, which hardens every JSON response, and
// NoStore, which the router puts on the admin group so subscriber lists,
// contact messages and the CSV export are never cached by browsers or
// proxies. The public site is a separate browser app, so the response headers
// it must read (request ID, replay marker, ETag, download filename) are listed
// in Access-Control-Expose-Headers.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultExposeHeaders are readable by the browser front-end.
var DefaultExposeHeaders = []string{
	requestIDHeader,
	"Idempotency-Replayed",
	"ETag",
	"Retry-After",
	"Content-Disposition",
}

// SecurityOptions configures SecurityHeaders.
//
// EnableHSTS emits Strict-Transport-Security on HTTPS requests only; enable it
// when traffic is HTTPS end-to-end. HSTSMaxAge defaults to 180 days.
// NoStore adds no-store cache headers to every response. EnablePolicy adds
// Permissions-Policy and X-Permitted-Cross-Domain-Policies. Expose overrides
// DefaultExposeHeaders when non-nil.
type SecurityOptions struct {
	EnableHSTS   bool
	HSTSMaxAge   time.Duration
	NoStore      bool
	EnablePolicy bool
	Expose       []string
}

// SecurityHeaders returns a middleware that sets the baseline headers
// (nosniff, frame DENY, no-referrer) plus the optional groups selected in
// opt, and merges the exposed header names into any existing
// Access-Control-Expose-Headers value without duplicates.
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	maxAge := int(opt.HSTSMaxAge.Seconds())
	if maxAge <= 0 {
		maxAge = int((180 * 24 * time.Hour).Seconds())
	}
	hsts := "max-age=" + strconv.Itoa(maxAge) + "; includeSubDomains; preload"
	expose := opt.Expose
	if expose == nil {
		expose = DefaultExposeHeaders
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")

		if opt.EnablePolicy {
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")
			h.Set("X-Permitted-Cross-Domain-Policies", "none")
		}
		if opt.NoStore {
			setNoStore(h)
		}
		if opt.EnableHSTS && isHTTPS(c.Request) {
			h.Set("Strict-Transport-Security", hsts)
		}
		if len(expose) > 0 {
			h.Set("Access-Control-Expose-Headers", mergeHeaderList(h.Get("Access-Control-Expose-Headers"), expose))
		}

		c.Next()
	}
}

// NoStore marks responses as uncacheable.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		setNoStore(c.Writer.Header())
		c.Next()
	}
}

func setNoStore(h http.Header) {
	h.Set("Cache-Control", "no-store")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}

// mergeHeaderList appends the names in add to the comma-separated list cur,
// skipping names already present (case-insensitively).
func mergeHeaderList(cur string, add []string) string {
	seen := map[string]bool{}
	var out []string
	for _, part := range strings.Split(cur, ",") {
		if p := strings.TrimSpace(part); p != "" {
			seen[strings.ToLower(p)] = true
			out = append(out, p)
		}
	}
	for _, a := range add {
		if !seen[strings.ToLower(a)] {
			seen[strings.ToLower(a)] = true
			out = append(out, a)
		}
	}
	return strings.Join(out, ", ")
}

// isHTTPS reports whether the request arrived over TLS directly or via a
// proxy that set X-Forwarded-Proto: https.
func isHTTPS(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
