package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amanshinde1/ai-productivity-dashboard/pkg/translator"
)

// LanguageMiddleware resolves the response language from the
// Accept-Language header. Only the first tag's primary subtag is
// considered; anything outside the supported set falls back to en.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", resolveLang(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func resolveLang(header string) string {
	lang := header
	for _, sep := range []string{",", ";", "-"} {
		if idx := strings.Index(lang, sep); idx >= 0 {
			lang = lang[:idx]
		}
	}
	lang = strings.ToLower(strings.TrimSpace(lang))

	switch lang {
	case translator.LanguageFr, translator.LanguageEn:
		return lang
	default:
		return translator.LanguageEn
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
