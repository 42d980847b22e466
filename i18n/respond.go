package i18n

import (
	"errors"
	"log"
	"net/http"

	"souq-api/models"

	"github.com/gin-gonic/gin"
)

// Context keys set by middleware.LanguageDetection.
const (
	CtxLang      = "lang"
	CtxBilingual = "bilingual"
)

func requestLanguage(c *gin.Context) (lang string, bilingual bool) {
	bilingual = c.GetBool(CtxBilingual)
	if !bilingual {
		lang = c.GetString(CtxLang)
	}
	return lang, bilingual
}

// languageField mirrors the original API contract: responses carry the
// resolved language, or "bilingual" when no preference was detected.
func languageField(lang string, bilingual bool) string {
	if bilingual {
		return "bilingual"
	}
	return lang
}

// Respond writes a localized success envelope. The message key is resolved
// through the dictionaries and the data payload is shaped for the detected
// language.
func Respond(c *gin.Context, status int, messageKey string, data interface{}) {
	lang, bilingual := requestLanguage(c)

	body := gin.H{
		"success":  true,
		"message":  TranslateMessage(messageKey, lang, bilingual),
		"language": languageField(lang, bilingual),
	}
	if data != nil {
		body["data"] = Shape(data, lang)
	}
	if bilingual {
		body["supported_languages"] = SupportedLanguages
	}

	c.JSON(status, body)
}

// RespondPaginated is Respond plus pagination metadata.
func RespondPaginated(c *gin.Context, messageKey string, data interface{}, meta models.PaginationMeta) {
	lang, bilingual := requestLanguage(c)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  TranslateMessage(messageKey, lang, bilingual),
		"language": languageField(lang, bilingual),
		"data":     Shape(data, lang),
		"meta":     meta,
	})
}

// RespondError maps an error to the localized error envelope. AppErrors
// surface their code and message key; anything else is logged and returned
// as a generic internal error without leaking details.
func RespondError(c *gin.Context, err error) {
	lang, bilingual := requestLanguage(c)

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"success":  false,
			"code":     appErr.Code,
			"message":  TranslateMessage(appErr.MessageKey, lang, bilingual),
			"language": languageField(lang, bilingual),
		})
		return
	}

	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success":  false,
		"code":     models.CodeInternal,
		"message":  TranslateMessage("common.internal_error", lang, bilingual),
		"language": languageField(lang, bilingual),
	})
}
