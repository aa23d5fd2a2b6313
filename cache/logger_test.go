package cache

import (
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/vvuk/angle/types"
)

func TestLogger_DefaultAndReset(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Expected a no-op logger by default")
	}

	custom := zap.NewExample()
	SetLogger(custom)
	if Logger() != custom {
		t.Fatal("Expected SetLogger to install the given logger")
	}

	SetLogger(nil)
	if Logger() == nil || Logger() == custom {
		t.Fatal("Expected nil to restore the no-op logger")
	}
}

func TestLogger_SwapDuringCacheUse(t *testing.T) {
	defer SetLogger(nil)

	c := New()
	defer c.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			SetLogger(zap.NewNop())
		}
	}()
	go func() {
		defer wg.Done()
		for primary := uint8(1); primary <= 4; primary++ {
			for q := types.QualifierNone; q < types.QualifierLast; q++ {
				c.Get(types.Float, types.PrecisionLow, q, primary, 1)
			}
		}
	}()
	wg.Wait()

	if c.Len() != 4*int(types.QualifierLast) {
		t.Fatalf("Expected %d entries, got %d", 4*int(types.QualifierLast), c.Len())
	}
}
