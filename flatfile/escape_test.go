package flatfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"plain text",
		"a|b",
		"line1\nline2",
		"|\n|\n",
		"Gate code 12|34\nring twice",
		`ends in \`,
		`\n literal`,
		`\\`,
	} {
		assert.Equal(t, s, unescapeField(escapeField(s)), "input %q", s)
	}
}

func TestEscapeField(t *testing.T) {
	assert.Equal(t, `a\|b\nc`, escapeField("a|b\nc"))
	assert.Equal(t, "a|b\nc", unescapeField(`a\|b\nc`))
	assert.Equal(t, `x\\|`, escapeField(`x\`)+"|")
	assert.Equal(t, `C:\temp`, unescapeField(`C:\temp`))
	assert.Equal(t, `a,b`, unescapeField(`a,b`))
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"a|b|c", []string{"a", "b", "c"}},
		{"a||c", []string{"a", "", "c"}},
		{"a|b|", []string{"a", "b", ""}},
		{`a\|b|c`, []string{`a\|b`, "c"}},
		{`a\nb|c`, []string{`a\nb`, "c"}},
		{"", []string{""}},
		{`a\\|b`, []string{`a\\`, "b"}},
		{`a\`, []string{`a\`}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, splitFields(tc.line), "line %q", tc.line)
	}
}

func TestSplitIDs(t *testing.T) {
	assert.Nil(t, splitIDs(""))
	assert.Equal(t, []string{"a", "b"}, splitIDs("a,b"))
	assert.Equal(t, "a,b", joinIDs([]string{"a", "b"}))
	assert.Equal(t, "", joinIDs(nil))
	assert.Equal(t, `a\,1,b\|2`, joinIDs([]string{"a,1", "b|2"}))
	assert.Equal(t, []string{"a,1", `b\`, "c"}, splitIDs(`a\,1,b\\,c`))
}

func TestOptional(t *testing.T) {
	assert.False(t, optional(""))
	assert.False(t, optional("null"))
	assert.True(t, optional("x"))
}
