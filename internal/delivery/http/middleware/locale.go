package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	localeCookie    = "preferred-language"
	secondaryLocale = "bg"
)

// LocaleRedirect sends root-path requests to the Bulgarian variant when the
// visitor prefers it. Preference order: explicit cookie, then Accept-Language.
// API routes, static assets, and anything with a file extension pass through
// untouched, as do paths already under the locale prefix.
func LocaleRedirect() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/api") ||
			strings.HasPrefix(path, "/assets") ||
			strings.HasPrefix(path, "/favicon") ||
			strings.Contains(path, ".") {
			c.Next()
			return
		}

		if path == "/"+secondaryLocale || strings.HasPrefix(path, "/"+secondaryLocale+"/") {
			c.Next()
			return
		}

		preferBulgarian := strings.Contains(c.GetHeader("Accept-Language"), secondaryLocale)

		// An explicit cookie overrides header-based detection either way
		if cookie, err := c.Cookie(localeCookie); err == nil {
			switch cookie {
			case secondaryLocale:
				preferBulgarian = true
			case "en":
				preferBulgarian = false
			}
		}

		if path == "/" && preferBulgarian {
			target := "/" + secondaryLocale
			if raw := c.Request.URL.RawQuery; raw != "" {
				target += "?" + raw
			}
			c.Redirect(http.StatusTemporaryRedirect, target)
			c.Abort()
			return
		}

		c.Next()
	}
}
