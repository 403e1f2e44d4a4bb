package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/userdash/dashboard-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey is where the detected language is stored.
	LanguageContextKey = "language"
	// I18nServiceContextKey is where the i18n service is stored.
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware detects the request language.
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware creates a new i18n middleware.
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage resolves the request language, in priority order:
// explicit ?lang= query, Accept-Language header, configured default.
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" {
			if m.i18nService.IsLanguageSupported(queryLang) {
				lang = queryLang
			}
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Next()
	}
}

// parseAcceptLanguage returns the first supported language from an
// Accept-Language header, ignoring quality weights beyond order.
func (m *I18nMiddleware) parseAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}

	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if lang == "" {
			continue
		}
		if m.i18nService.IsLanguageSupported(lang) {
			return lang
		}
		// Try the primary subtag: "en-US" matches an "en" catalog.
		if idx := strings.Index(lang, "-"); idx > 0 {
			if base := lang[:idx]; m.i18nService.IsLanguageSupported(base) {
				return base
			}
		}
	}
	return ""
}
