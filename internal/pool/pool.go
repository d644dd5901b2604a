// Package pool provides sync.Pool-backed scratch buffers for the
// render path, which rebuilds the whole screen every frame.
package pool

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

// layerSliceCap is the starting capacity for pooled layer slices. A
// busy workspace composites around a dozen layers per frame.
const layerSliceCap = 16

var stringBuilderPool = sync.Pool{
	New: func() any {
		return &strings.Builder{}
	},
}

// GetStringBuilder returns an empty string builder from the pool
func GetStringBuilder() *strings.Builder {
	return stringBuilderPool.Get().(*strings.Builder)
}

// PutStringBuilder resets the builder and returns it to the pool
func PutStringBuilder(sb *strings.Builder) {
	sb.Reset()
	stringBuilderPool.Put(sb)
}

var layerSlicePool = sync.Pool{
	New: func() any {
		s := make([]*lipgloss.Layer, 0, layerSliceCap)
		return &s
	},
}

// GetLayerSlice returns an empty layer slice with preallocated capacity
func GetLayerSlice() *[]*lipgloss.Layer {
	return layerSlicePool.Get().(*[]*lipgloss.Layer)
}

// PutLayerSlice clears the slice and returns it to the pool. The
// layers themselves are owned by the canvas, not the pool.
func PutLayerSlice(layers *[]*lipgloss.Layer) {
	*layers = (*layers)[:0]
	layerSlicePool.Put(layers)
}
