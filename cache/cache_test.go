package cache

import (
	"sync"
	"testing"

	"github.com/vvuk/angle/pool"
	"github.com/vvuk/angle/types"
)

func TestCache_IdentityStability(t *testing.T) {
	c := New()
	defer c.Close()

	first := c.Get(types.Float, types.PrecisionHigh, types.QualifierNone, 1, 1)
	second := c.Get(types.Float, types.PrecisionHigh, types.QualifierNone, 1, 1)
	if first != second {
		t.Fatal("Same tuple must return the same pointer")
	}

	mat3 := c.Get(types.Float, types.PrecisionHigh, types.QualifierNone, 3, 3)
	if mat3 == first {
		t.Fatal("Distinct tuples must return distinct pointers")
	}
	if mat3.PrimarySize() != 3 || mat3.SecondarySize() != 3 {
		t.Fatalf("Expected 3x3, got %dx%d", mat3.PrimarySize(), mat3.SecondarySize())
	}
	if !mat3.IsRealized() {
		t.Fatal("Cache must hand out realized descriptors")
	}
	if !mat3.IsMatrix() || mat3.MangledName() != "f3x3" {
		t.Fatalf("Expected realized mat3, got %q", mat3.MangledName())
	}

	if c.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", c.Len())
	}
}

func TestCache_Discrimination(t *testing.T) {
	c := New()
	defer c.Close()

	seen := make(map[*types.Type]struct{})
	total := 0
	for b := types.Float; b <= types.Bool; b++ {
		for p := types.PrecisionUndefined; p < types.PrecisionLast; p++ {
			for primary := uint8(1); primary <= 4; primary++ {
				ty := c.Get(b, p, types.QualifierNone, primary, 1)
				if ty == nil {
					t.Fatal("Get returned nil")
				}
				if _, dup := seen[ty]; dup {
					t.Fatalf("Distinct tuple returned an already-seen descriptor %s", ty)
				}
				seen[ty] = struct{}{}
				total++
			}
		}
	}

	if c.Len() != total {
		t.Fatalf("Expected %d entries, got %d", total, c.Len())
	}
}

func TestCache_HitDoesNotAllocate(t *testing.T) {
	arena := pool.New[types.Type](0)
	c := NewWithArena(arena)
	defer c.Close()

	c.Get(types.Float, types.PrecisionMedium, types.QualifierUniform, 4, 1)
	if arena.Len() != 1 {
		t.Fatalf("Expected one arena slot after miss, got %d", arena.Len())
	}

	for i := 0; i < 10; i++ {
		c.Get(types.Float, types.PrecisionMedium, types.QualifierUniform, 4, 1)
	}
	if arena.Len() != 1 {
		t.Fatalf("Hits must not allocate; arena has %d slots", arena.Len())
	}

	stats := c.Stats()
	if stats.Entries != 1 || stats.Misses != 1 || stats.Hits != 10 {
		t.Fatalf("Unexpected stats: %+v", stats)
	}
}

func TestCache_CloseIdempotent(t *testing.T) {
	c := New()
	c.Get(types.Int, types.PrecisionHigh, types.QualifierConst, 2, 1)

	c.Close()
	c.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("Expected Get on closed cache to panic")
		}
	}()
	c.Get(types.Int, types.PrecisionHigh, types.QualifierConst, 2, 1)
}

func TestCache_ConcurrentSameTuple(t *testing.T) {
	c := New()
	defer c.Close()

	const workers = 32
	results := make([]*types.Type, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Get(types.Float, types.PrecisionHigh, types.QualifierNone, 3, 3)
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatal("Concurrent Gets for one tuple must return one descriptor")
		}
	}
	if c.Len() != 1 {
		t.Fatalf("Expected exactly one entry, got %d", c.Len())
	}
}

func TestCache_ConcurrentMixedTuples(t *testing.T) {
	c := New()
	defer c.Close()

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for primary := uint8(1); primary <= 4; primary++ {
				for q := types.QualifierNone; q < types.QualifierLast; q++ {
					c.Get(types.Float, types.PrecisionMedium, q, primary, 1)
				}
			}
		}()
	}
	wg.Wait()

	want := 4 * int(types.QualifierLast)
	if c.Len() != want {
		t.Fatalf("Expected %d entries, got %d", want, c.Len())
	}
}
