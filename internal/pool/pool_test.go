package pool

import (
	"strings"
	"sync"
	"testing"

	"charm.land/lipgloss/v2"
)

// TestStringBuilderPool tests the string builder pool
func TestStringBuilderPool(t *testing.T) {
	sb := GetStringBuilder()
	if sb == nil {
		t.Fatal("GetStringBuilder returned nil")
	}

	sb.WriteString("test")
	if sb.String() != "test" {
		t.Errorf("Expected 'test', got %q", sb.String())
	}

	PutStringBuilder(sb)

	// Get again and verify it's reset
	sb2 := GetStringBuilder()
	if sb2.Len() != 0 {
		t.Errorf("String builder should be reset, but has length %d", sb2.Len())
	}

	PutStringBuilder(sb2)
}

// TestStringBuilderPool_Concurrent tests concurrent access to the pool
func TestStringBuilderPool_Concurrent(t *testing.T) {
	const goroutines = 10
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				sb := GetStringBuilder()
				sb.WriteString("test")
				if sb.String() != "test" {
					t.Errorf("Goroutine %d iteration %d: unexpected content", id, j)
				}
				PutStringBuilder(sb)
			}
		}(i)
	}

	wg.Wait()
}

// TestLayerSlicePool tests the layer slice pool
func TestLayerSlicePool(t *testing.T) {
	layers := GetLayerSlice()
	if layers == nil {
		t.Fatal("GetLayerSlice returned nil")
	}
	if *layers == nil {
		t.Fatal("Layer slice is nil")
	}
	if cap(*layers) < layerSliceCap {
		t.Errorf("Expected capacity >= %d, got %d", layerSliceCap, cap(*layers))
	}

	*layers = append(*layers, lipgloss.NewLayer("content"))
	PutLayerSlice(layers)

	// Get again and verify it comes back empty
	layers2 := GetLayerSlice()
	if len(*layers2) != 0 {
		t.Errorf("Layer slice should be empty, got length %d", len(*layers2))
	}

	PutLayerSlice(layers2)
}

// BenchmarkStringBuilderPool benchmarks the string builder pool
func BenchmarkStringBuilderPool(b *testing.B) {
	b.Run("WithPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sb := GetStringBuilder()
			sb.WriteString("test string")
			_ = sb.String()
			PutStringBuilder(sb)
		}
	})

	b.Run("WithoutPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sb := &strings.Builder{}
			sb.WriteString("test string")
			_ = sb.String()
		}
	})
}

// BenchmarkStringBuilderPool_Parallel benchmarks concurrent pool usage
func BenchmarkStringBuilderPool_Parallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			sb := GetStringBuilder()
			sb.WriteString("test string for parallel benchmark")
			_ = sb.String()
			PutStringBuilder(sb)
		}
	})
}
