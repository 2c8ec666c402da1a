package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	for _, p := range []string{"555-123-4567", "+1 (555) 987-6543", "+441234567890"} {
		assert.True(t, ValidatePhone(p), p)
	}
	for _, p := range []string{"", "call me", "0123", "+"} {
		assert.False(t, ValidatePhone(p), p)
	}
}
