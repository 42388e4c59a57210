package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("test@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.domain.io"))

	assert.False(t, IsValidEmail("test@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsWorkEmail(t *testing.T) {
	assert.False(t, IsWorkEmail("user@gmail.com"))
	assert.False(t, IsWorkEmail("user@GMAIL.com"))
	assert.False(t, IsWorkEmail("user@icloud.com"))
	assert.False(t, IsWorkEmail("not-an-email"))

	assert.True(t, IsWorkEmail("user@company.com"))
	assert.True(t, IsWorkEmail("ops@agency.co"))
}

func TestNormalizeWebsiteURL(t *testing.T) {
	assert.Equal(t, "https://example.com", NormalizeWebsiteURL("example.com"))
	assert.Equal(t, "https://www.example.com/path", NormalizeWebsiteURL(" www.example.com/path "))
	assert.Equal(t, "http://example.com", NormalizeWebsiteURL("http://example.com"))
	assert.Equal(t, "https://example.com", NormalizeWebsiteURL("https://example.com"))
	assert.Equal(t, "", NormalizeWebsiteURL("  "))
}
