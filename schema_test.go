package wrangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagDef_NegatedAllowed(t *testing.T) {
	tFalse := false
	tTrue := true

	tests := []struct {
		name string
		f    FlagDef
		want bool
	}{
		{"default false, no override", FlagDef{BoolDefault: false}, false},
		{"default true, no override", FlagDef{BoolDefault: true}, true},
		{"default true, explicit false", FlagDef{BoolDefault: true, WithNegated: &tFalse}, false},
		{"default false, explicit true", FlagDef{BoolDefault: false, WithNegated: &tTrue}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.negatedAllowed())
		})
	}
}

func TestParserOf(t *testing.T) {
	parser := ParserOf(func(s string) (int, error) {
		return len(s), nil
	})
	v, err := parser("abcd")
	assert.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestTrimEquals(t *testing.T) {
	name, value, ok := trimEquals("flag=value")
	assert.True(t, ok)
	assert.Equal(t, "flag", name)
	assert.Equal(t, "value", value)

	name, _, ok = trimEquals("flag")
	assert.False(t, ok)
	assert.Equal(t, "flag", name)
}
