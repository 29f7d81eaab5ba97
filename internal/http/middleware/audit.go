package middleware

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var (
	uuidRE  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	emailRE = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	// URL-encoded "@" as it appears in query strings.
	encodedAtRE = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+%40[a-z0-9.\-]+\.[a-z]{2,}`)
	// Digits only, so the hex groups of a UUID never match.
	phoneRE = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// scrubPII replaces UUIDs, e-mail addresses and phone numbers in s. UUIDs go
// first so the phone pattern cannot eat their digit groups.
func scrubPII(s string) string {
	if s == "" {
		return s
	}
	s = uuidRE.ReplaceAllString(s, "[REDACTED:id]")
	s = encodedAtRE.ReplaceAllString(s, "[REDACTED:email]")
	s = emailRE.ReplaceAllString(s, "[REDACTED:email]")
	return phoneRE.ReplaceAllString(s, "[REDACTED:phone]")
}

// AuditOptions configures AdminAudit. MaskHeaders lists extra header names
// (case-insensitive) whose values are dropped entirely.
type AuditOptions struct {
	MaskHeaders []string
}

// AdminAudit writes one "admin_audit" line per request through the
// request-scoped logger, naming the admin and carrying the request headers.
// Credential headers are masked; other values and the query are scrubbed of
// e-mails, phone numbers and IDs. Bodies are never logged.
//
// Mount it after RequireAdmin.
func AdminAudit(opts AuditOptions) gin.HandlerFunc {
	masked := map[string]bool{
		"authorization":       true,
		"proxy-authorization": true,
		"cookie":              true,
		"set-cookie":          true,
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			masked[h] = true
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		headers := zerolog.Dict()
		for k, vv := range c.Request.Header {
			if masked[strings.ToLower(k)] {
				headers.Str(k, "[REDACTED]")
			} else {
				headers.Str(k, scrubPII(strings.Join(vv, ", ")))
			}
		}

		c.Next()

		levelFor(LoggerFrom(c), c.Writer.Status(), len(c.Errors) > 0).
			Str("admin", AdminFrom(c)).
			Str("route", c.Request.Method+" "+c.FullPath()).
			Str("query", scrubPII(c.Request.URL.RawQuery)).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Dict("headers", headers).
			Msg("admin_audit")
	}
}
