package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestValidateUsername(t *testing.T) {
	assert.True(t, ValidateUsername("bob"))
	assert.False(t, ValidateUsername("ab"))
	assert.False(t, ValidateUsername("this-username-is-way-too-long-to-pass"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("Str0ng!pass"))
	assert.False(t, ValidatePassword("short1!"))
	assert.False(t, ValidatePassword("alllowercase1!"))
	assert.False(t, ValidatePassword("NoDigits!"))
	assert.False(t, ValidatePassword("NoSpecial123"))
}

func TestValidatePeriod(t *testing.T) {
	assert.True(t, ValidatePeriod(1, 2025))
	assert.True(t, ValidatePeriod(12, 2020))
	assert.False(t, ValidatePeriod(0, 2025))
	assert.False(t, ValidatePeriod(13, 2025))
	assert.False(t, ValidatePeriod(6, 2019))
	assert.False(t, ValidatePeriod(6, 2101))
}

func TestValidateKind(t *testing.T) {
	assert.True(t, ValidateKind("income"))
	assert.True(t, ValidateKind("expense"))
	assert.False(t, ValidateKind("transfer"))
	assert.False(t, ValidateKind(""))
	assert.False(t, ValidateKind("Income"))
}
