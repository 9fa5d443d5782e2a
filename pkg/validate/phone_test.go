package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone_EquivalentForms(t *testing.T) {
	// All three accepted forms of the same subscriber number must normalize
	// to the same canonical value.
	inputs := []string{
		"+2348012345678",
		"2348012345678",
		"08012345678",
		"0801 234 5678",
		"+234-801-234-5678",
	}

	for _, input := range inputs {
		normalized, err := NormalizePhone(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, "+2348012345678", normalized, "input %q", input)
	}
}

func TestNormalizePhone_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"12345",
		"+14155552671",   // wrong country code
		"080123456",      // too short
		"080123456789",   // too long
		"0801234567a",    // non-digit
		"+2346012345678", // invalid leading subscriber digit
		"8012345678",     // missing prefix
	}

	for _, input := range inputs {
		_, err := NormalizePhone(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestIsValidOTP(t *testing.T) {
	assert.True(t, IsValidOTP("123456"))
	assert.True(t, IsValidOTP("000000"))

	assert.False(t, IsValidOTP("12345"))
	assert.False(t, IsValidOTP("1234567"))
	assert.False(t, IsValidOTP("12345a"))
	assert.False(t, IsValidOTP(""))
	assert.False(t, IsValidOTP("12 456"))
}
