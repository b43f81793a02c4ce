package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last+tag@sub.domain.org",
		"x_1-2%3@host.co",
	}
	for _, e := range valid {
		assert.True(t, IsEmailValid(e), e)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local-part.com",
		"user@",
		"user@host",
		"user name@example.com",
	}
	for _, e := range invalid {
		assert.False(t, IsEmailValid(e), e)
	}
}

func TestSendConfirmationEmailRejectsInvalidAddress(t *testing.T) {
	err := SendConfirmationEmail("not-an-address", "code123")
	assert.Error(t, err)
}
