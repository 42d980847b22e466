package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationContentLanguage(t *testing.T) {
	en := verificationContent("Omar", "123456", "en")
	assert.Contains(t, en.subject, "Verification")
	assert.Contains(t, en.body, "123456")
	assert.Contains(t, en.heading, "Omar")

	ar := verificationContent("Omar", "123456", "ar")
	assert.Contains(t, ar.subject, "التحقق")
	assert.Contains(t, ar.body, "123456")
}

func TestPasswordResetContentLanguage(t *testing.T) {
	en := passwordResetContent("Sara", "654321", "en")
	assert.Contains(t, en.subject, "Password Reset")
	assert.Contains(t, en.body, "654321")

	ar := passwordResetContent("Sara", "654321", "ar")
	assert.Contains(t, ar.subject, "كلمة المرور")
	assert.Contains(t, ar.body, "654321")
}

func TestRenderHTMLEscapesNothingButEmbedsFields(t *testing.T) {
	html := renderHTML(emailContent{
		heading: "Hello Omar,",
		body:    "Use code <b>123456</b>",
		footer:  "Do not reply",
	})

	assert.True(t, strings.Contains(html, "Hello Omar,"))
	assert.True(t, strings.Contains(html, "123456"))
	assert.True(t, strings.Contains(html, "Do not reply"))
}
