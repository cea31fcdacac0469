package strcase_test

import (
	"testing"

	"github.com/dekarrin/wrangle/internal/strcase"
	"github.com/stretchr/testify/assert"
)

func TestToKebab(t *testing.T) {
	assert.Equal(t, "color-output", strcase.ToKebab("colorOutput"))
	assert.Equal(t, "color-output", strcase.ToKebab("color-output"))
}

func TestToCamel(t *testing.T) {
	assert.Equal(t, "colorOutput", strcase.ToCamel("color-output"))
	assert.Equal(t, "colorOutput", strcase.ToCamel("colorOutput"))
	assert.Equal(t, "", strcase.ToCamel(""))
}

func TestNegatedForms(t *testing.T) {
	camel, kebab := strcase.NegatedForms("colorOutput")
	assert.Equal(t, "noColorOutput", camel)
	assert.Equal(t, "no-color-output", kebab)
}
