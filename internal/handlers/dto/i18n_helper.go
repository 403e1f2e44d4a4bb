package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/userdash/dashboard-backend/internal/handlers/middleware"
	"github.com/userdash/dashboard-backend/internal/infrastructure/i18n"
)

// T translates a key using the request's detected language.
// Usage: dto.T(c, "flash.user_created", map[string]interface{}{"Name": name})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	i18nService, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage returns the language resolved for this request.
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(middleware.LanguageContextKey)
	if !exists {
		return "en"
	}

	langStr, ok := lang.(string)
	if !ok {
		return "en"
	}

	return langStr
}
