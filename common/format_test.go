package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMobilePhone(t *testing.T) {
	valid := []string{
		"+14155550100",
		"+821012345678",
		"0912345678",
		"091234567890123",
		" +14155550100 ",
	}
	for _, phone := range valid {
		assert.True(t, IsValidMobilePhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"   ",
		"12345",
		"+",
		"+123456789012345",
		"0123",
		"phone",
		"+1415555a100",
	}
	for _, phone := range invalid {
		assert.False(t, IsValidMobilePhone(phone), "expected %q to be invalid", phone)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.org"))

	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("@example.com"))
}
