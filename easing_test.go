package vlist_test

import (
	"math"
	"testing"

	"github.com/go-theft-auto/vlist"
)

func TestEaseInOutQuintBoundaries(t *testing.T) {
	if got := vlist.EaseInOutQuint(0); got != 0 {
		t.Errorf("f(0) = %v, want 0", got)
	}
	if got := vlist.EaseInOutQuint(1); got != 1 {
		t.Errorf("f(1) = %v, want 1", got)
	}
	if got := vlist.EaseInOutQuint(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("f(0.5) = %v, want 0.5", got)
	}
}

func TestEaseInOutQuintShape(t *testing.T) {
	// Slow start: the first quarter covers far less than a quarter of the
	// output range.
	if got := vlist.EaseInOutQuint(0.25); got >= 0.05 {
		t.Errorf("f(0.25) = %v, want < 0.05", got)
	}
	// Symmetric slow landing.
	if got := vlist.EaseInOutQuint(0.75); got <= 0.95 {
		t.Errorf("f(0.75) = %v, want > 0.95", got)
	}
}

func TestEasingMonotonic(t *testing.T) {
	easings := map[string]vlist.Easing{
		"quint":    vlist.EaseInOutQuint,
		"linear":   vlist.EaseLinear,
		"outcubic": vlist.EaseOutCubic,
	}

	for name, f := range easings {
		prev := f(0)
		for i := 1; i <= 1000; i++ {
			t01 := float64(i) / 1000
			cur := f(t01)
			if cur < prev {
				t.Fatalf("%s: f(%v) = %v < f(%v) = %v, not monotonic", name, t01, cur, t01-0.001, prev)
			}
			prev = cur
		}
		if math.Abs(prev-1) > 1e-9 {
			t.Errorf("%s: f(1) = %v, want 1", name, prev)
		}
	}
}
