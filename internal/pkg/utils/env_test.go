package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("String Set", func(t *testing.T) {
		t.Setenv("BOOKING_FACILITY", "Seoul CURA Healthcare Center")
		assert.Equal(t, "Seoul CURA Healthcare Center", GetEnvString("BOOKING_FACILITY", "default"))
	})

	t.Run("String Unset Uses Default", func(t *testing.T) {
		assert.Equal(t, "default", GetEnvString("BOOKING_TEST_UNSET_KEY", "default"))
	})

	t.Run("Blank Uses Default", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "  ")
		assert.Equal(t, "smtp.gmail.com", GetEnvString("SMTP_HOST", "smtp.gmail.com"))
	})

	t.Run("Int Parsed", func(t *testing.T) {
		t.Setenv("SMTP_PORT", "465")
		assert.Equal(t, 465, GetEnvInt("SMTP_PORT", 587))
	})

	t.Run("Int Invalid Uses Default", func(t *testing.T) {
		t.Setenv("SMTP_PORT", "five-eight-seven")
		assert.Equal(t, 587, GetEnvInt("SMTP_PORT", 587))
	})

	t.Run("Bool Parsed", func(t *testing.T) {
		t.Setenv("BROWSER_HEADLESS", "true")
		assert.True(t, GetEnvBool("BROWSER_HEADLESS", false))
	})

	t.Run("Float Parsed", func(t *testing.T) {
		t.Setenv("BROWSER_TIMEOUT_IN_SECONDS", "12.5")
		assert.Equal(t, 12.5, GetEnvFloat("BROWSER_TIMEOUT_IN_SECONDS", 30))
	})
}
