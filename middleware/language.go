package middleware

import (
	"sort"
	"strconv"
	"strings"

	"souq-api/i18n"

	"github.com/gin-gonic/gin"
)

// LanguageDetection resolves the response language from Accept-Language.
// A supported language (en/ar) selects single-language shaping; a missing
// header or no supported language selects bilingual mode, where responses
// carry both variants of every bilingual field.
func LanguageDetection() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := DetectLanguage(c.GetHeader("Accept-Language"))

		if lang == "" {
			c.Set(i18n.CtxBilingual, true)
		} else {
			c.Set(i18n.CtxLang, lang)
		}

		c.Next()
	}
}

type weightedLang struct {
	code    string
	quality float64
	index   int
}

// DetectLanguage parses an Accept-Language header and returns the highest
// quality supported primary language, or "" when none matches.
func DetectLanguage(header string) string {
	if header == "" {
		return ""
	}

	var langs []weightedLang
	for i, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		code := part
		quality := 1.0
		if idx := strings.Index(part, ";"); idx >= 0 {
			code = strings.TrimSpace(part[:idx])
			if qIdx := strings.Index(part[idx:], "q="); qIdx >= 0 {
				if q, err := strconv.ParseFloat(strings.TrimSpace(part[idx+qIdx+2:]), 64); err == nil {
					quality = q
				}
			}
		}

		// Primary subtag only: ar-SA matches ar.
		code = strings.ToLower(strings.SplitN(code, "-", 2)[0])
		langs = append(langs, weightedLang{code: code, quality: quality, index: i})
	}

	sort.SliceStable(langs, func(a, b int) bool {
		return langs[a].quality > langs[b].quality
	})

	for _, l := range langs {
		if i18n.Supported(l.code) {
			return l.code
		}
	}
	return ""
}
