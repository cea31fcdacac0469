package wrangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagValues_DeclareOrderAndDefaults(t *testing.T) {
	fv := newFlagValues()
	fv.declare("b")
	fv.declare("a")
	fv.set("a", true)
	fv.setDefault("b", false)

	assert.Equal(t, []string{"b", "a"}, fv.Names())
	assert.True(t, fv.Present("a"))
	assert.False(t, fv.Present("b"))
	assert.True(t, fv.Bool("a"))
	assert.False(t, fv.Bool("b"))
}

func TestFlagValues_SetDefaultDoesNotOverwriteExisting(t *testing.T) {
	fv := newFlagValues()
	fv.set("count", 5)
	fv.setDefault("count", 0)
	assert.Equal(t, 5, fv.Count("count"))
}

func TestScanResult_OK(t *testing.T) {
	r := &ScanResult{}
	assert.True(t, r.OK())

	r.Errors = append(r.Errors, assertError{})
	assert.False(t, r.OK())
}
