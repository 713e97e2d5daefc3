package slices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	strs, rest := Partition[string]([]any{"CSCP", 3, "CPIM", nil})

	assert.Equal(t, []string{"CSCP", "CPIM"}, strs)
	assert.Equal(t, []any{3, nil}, rest)
}

func TestPartitionEmpty(t *testing.T) {
	strs, rest := Partition[string](nil)

	assert.Empty(t, strs)
	assert.Empty(t, rest)
}
