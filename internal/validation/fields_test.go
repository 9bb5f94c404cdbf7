package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateUsername("ada"))
	assert.NoError(t, ValidateUsername(strings.Repeat("x", 50)))
	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername(strings.Repeat("x", 51)))

	// Multibyte runes count as one character each.
	assert.NoError(t, ValidateUsername(strings.Repeat("é", 50)))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"ada@example.com",
		"a.b+c@sub.example.co.uk",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"ada",
		"ada@example",
		"ada.example.com",
		"a@b@c.com",
		"@example.com",
	}
	for _, email := range invalid {
		assert.Error(t, ValidateEmail(email), email)
	}
}

func TestValidateContent(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateContent("hello", 10))
	assert.NoError(t, ValidateContent(strings.Repeat("x", 10), 10))
	assert.Error(t, ValidateContent("", 10))
	assert.Error(t, ValidateContent(strings.Repeat("x", 11), 10))
	assert.NoError(t, ValidateContent(strings.Repeat("汉", 10), 10))
}
