package localeformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "es-MX"},
		{in: "es-MX", want: "es-MX"},
		{in: "es_MX", want: "es-MX"},
		{in: " en-US ", want: "en-US"},
		{in: "de", want: "de"},
	}
	for _, tt := range tests {
		tag, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, tag.String(), tt.in)
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	_, err := Parse("not a locale!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid locale")
}

func TestFormatGroupsDigits(t *testing.T) {
	t.Parallel()

	mx, err := ForLocale(DefaultLocale)
	require.NoError(t, err)
	assert.Equal(t, "1", mx.Format(1))
	assert.Equal(t, "999", mx.Format(999))
	assert.Equal(t, "12,345", mx.Format(12345))
	assert.Equal(t, "1,234,567", mx.Format(1234567))

	us := New(language.AmericanEnglish)
	assert.Equal(t, "12,345", us.Format(12345))

	de := New(language.German)
	assert.Equal(t, "12.345", de.Format(12345))
	assert.Equal(t, language.German, de.Tag())
}
