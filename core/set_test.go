// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

func TestVertexSet(t *testing.T) {
	s := core.NewVertexSet(V(3), V(1))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Add(V(2)))
	assert.False(t, s.Add(V(2)))
	assert.True(t, s.Contains(V(1)))

	s.Remove(V(1))
	assert.False(t, s.Contains(V(1)))
	assert.Equal(t, []id.VertexID[uint32]{V(2), V(3)}, s.Sorted())

	assert.True(t, s.Equal(core.NewVertexSet(V(3), V(2))))
	assert.False(t, s.Equal(core.NewVertexSet(V(3))))
	assert.False(t, s.Equal(core.NewVertexSet(V(3), V(4))))
}
