package sliceops_test

import (
	"testing"

	"github.com/dekarrin/wrangle/internal/sliceops"
	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	assert.Equal(t, 1, sliceops.Index([]string{"a", "b", "c"}, "b"))
	assert.Equal(t, -1, sliceops.Index([]string{"a", "b", "c"}, "z"))
}

func TestFilter(t *testing.T) {
	got := sliceops.Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, got)
}
