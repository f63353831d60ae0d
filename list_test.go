package vlist_test

import (
	"testing"
	"time"

	"github.com/go-theft-auto/vlist"
)

func newTestList(opts ...vlist.Option) *vlist.List[item, string] {
	return vlist.New(itemID, itemHeight, opts...)
}

// stepUntilIdle drives the list's frame loop until the animation finishes.
func stepUntilIdle(t *testing.T, l *vlist.List[item, string]) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		l.Step(1.0 / 60)
		if !l.Animating() {
			return
		}
	}
	t.Fatal("list did not settle within 10000 frames")
}

func TestListScrollToItemEndToEnd(t *testing.T) {
	// Heights 20, 30, 40, 10, 25: offsets 0, 20, 50, 90, 100, total 125.
	// Viewport 60 -> max offset 65.
	var setterCalls []float32
	var events []vlist.ScrollEvent
	doneCount := 0

	l := newTestList(
		vlist.WithDuration(300*time.Millisecond),
		vlist.WithScrollSetter(func(offset float32) { setterCalls = append(setterCalls, offset) }),
		vlist.OnScroll(func(ev vlist.ScrollEvent) { events = append(events, ev) }),
		vlist.OnAnimationDone(func() { doneCount++ }),
	)
	l.SetItems(itemsOf(20, 30, 40, 10, 25))
	l.SetViewportSize(vlist.Vec2{X: 200, Y: 60})

	if got := l.MaxOffset(); got != 65 {
		t.Fatalf("MaxOffset() = %v, want 65", got)
	}

	// Item 3 sits at offset 90, beyond the max: the animation must land
	// exactly on the clamped 65.
	if !l.ScrollToItem("item-3") {
		t.Fatal("ScrollToItem refused a valid key")
	}
	if !l.Animating() {
		t.Fatal("no animation in flight after ScrollToItem")
	}

	stepUntilIdle(t, l)

	if got := l.ScrollY(); got != 65 {
		t.Errorf("ScrollY() = %v, want clamped 65", got)
	}
	if doneCount != 1 {
		t.Errorf("completion fired %d times, want exactly 1", doneCount)
	}
	if len(setterCalls) == 0 {
		t.Fatal("scroll setter never invoked")
	}
	for i, off := range setterCalls {
		if off < 0 || off > 65 {
			t.Errorf("setter call %d: offset %v out of [0, 65]", i, off)
		}
	}
	if final := setterCalls[len(setterCalls)-1]; final != 65 {
		t.Errorf("last setter offset = %v, want 65", final)
	}
	for i, ev := range events {
		if !ev.Programmatic {
			t.Errorf("event %d: animation frame not marked programmatic", i)
		}
		if ev.Direction == vlist.DirectionUp {
			t.Errorf("event %d: direction = up while scrolling down", i)
		}
	}
}

func TestListScrollToMissingItemIsNoop(t *testing.T) {
	l := newTestList()
	l.SetItems(itemsOf(20, 30, 40))
	l.SetViewportSize(vlist.Vec2{X: 200, Y: 60})

	if l.ScrollToItem("ghost") {
		t.Error("ScrollToItem reported success for an absent key")
	}
	if l.Animating() {
		t.Error("animation started for an absent key")
	}
	l.Step(1.0 / 60)
	if l.ScrollY() != 0 {
		t.Errorf("ScrollY() = %v, want 0 after ignored request", l.ScrollY())
	}
}

func TestListDoubleScrollToItemGuard(t *testing.T) {
	l := newTestList(vlist.WithDuration(300 * time.Millisecond))
	l.SetItems(itemsOf(repeat(30, 50)...))
	l.SetViewportSize(vlist.Vec2{X: 200, Y: 300})

	if !l.ScrollToItem("item-20") {
		t.Fatal("first request refused")
	}
	l.Step(1.0 / 60)

	// Second request mid-flight is dropped.
	if l.ScrollToItem("item-40") {
		t.Error("request accepted while an animation is in flight")
	}

	stepUntilIdle(t, l)
	if got, want := l.ScrollY(), float32(20*30); got != want {
		t.Errorf("ScrollY() = %v, want %v (first target must win)", got, want)
	}

	// Repeating the finished target is also dropped.
	if l.ScrollToItem("item-20") {
		t.Error("request accepted for the already-reached target")
	}
}

func TestListRetargetOptIn(t *testing.T) {
	l := newTestList(
		vlist.WithDuration(300*time.Millisecond),
		vlist.WithRetarget(true),
	)
	l.SetItems(itemsOf(repeat(30, 50)...))
	l.SetViewportSize(vlist.Vec2{X: 200, Y: 300})

	l.ScrollToItem("item-20")
	for i := 0; i < 5; i++ {
		l.Step(1.0 / 60)
	}

	// With retargeting on, a mid-flight request redirects the animation.
	if !l.ScrollToItem("item-40") {
		t.Fatal("retargeting request refused")
	}

	stepUntilIdle(t, l)
	if got, want := l.ScrollY(), float32(40*30); got != want {
		t.Errorf("ScrollY() = %v, want %v (retargeted)", got, want)
	}
}

func TestListUserScrollRebasesNextAnimation(t *testing.T) {
	l := newTestList(vlist.WithDuration(300 * time.Millisecond))
	l.SetItems(itemsOf(repeat(30, 50)...))
	l.SetViewportSize(vlist.Vec2{X: 200, Y: 300})

	// User scrolls to 450, then requests an animation.
	l.HandleScroll(vlist.ScrollEvent{Offset: 450})
	if l.ScrollY() != 450 {
		t.Fatalf("ScrollY() = %v, want 450", l.ScrollY())
	}

	l.ScrollToItem("item-0")
	l.Step(0.15) // Half the duration: quintic midpoint is exactly halfway.
	if got := l.ScrollY(); got != 225 {
		t.Errorf("midpoint ScrollY() = %v, want 225 (from user position 450)", got)
	}

	stepUntilIdle(t, l)
	if l.ScrollY() != 0 {
		t.Errorf("ScrollY() = %v, want 0", l.ScrollY())
	}
}

func TestListHandleScrollClampsAndFillsDirection(t *testing.T) {
	var got []vlist.ScrollEvent
	l := newTestList(vlist.OnScroll(func(ev vlist.ScrollEvent) { got = append(got, ev) }))
	l.SetItems(itemsOf(repeat(30, 10)...)) // total 300
	l.SetViewportSize(vlist.Vec2{X: 200, Y: 100})

	l.HandleScroll(vlist.ScrollEvent{Offset: 1e9})
	if l.ScrollY() != 200 {
		t.Errorf("ScrollY() = %v, want clamped 200", l.ScrollY())
	}

	l.HandleScroll(vlist.ScrollEvent{Offset: -50})
	if l.ScrollY() != 0 {
		t.Errorf("ScrollY() = %v, want clamped 0", l.ScrollY())
	}

	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Direction != vlist.DirectionDown || got[1].Direction != vlist.DirectionUp {
		t.Errorf("directions = %v, %v, want down then up", got[0].Direction, got[1].Direction)
	}
	if got[0].Offset != 200 || got[1].Offset != 0 {
		t.Errorf("event offsets = %v, %v, want clamped 200 and 0", got[0].Offset, got[1].Offset)
	}
}

func TestListSetItemsClampsScroll(t *testing.T) {
	l := newTestList()
	l.SetItems(itemsOf(repeat(30, 50)...)) // total 1500
	l.SetViewportSize(vlist.Vec2{X: 200, Y: 300})

	l.ScrollTo(1000)
	if l.ScrollY() != 1000 {
		t.Fatalf("ScrollY() = %v, want 1000", l.ScrollY())
	}

	// Shrink the content: offset must clamp to the new max (10*30 - 300 = 0).
	l.SetItems(itemsOf(repeat(30, 10)...))
	if l.ScrollY() != 0 {
		t.Errorf("ScrollY() = %v, want 0 after content shrank", l.ScrollY())
	}
}

func TestListVisibleRangeTracksScroll(t *testing.T) {
	l := newTestList(vlist.WithOverscan(0))
	l.SetItems(itemsOf(repeat(30, 100)...))
	l.SetViewportSize(vlist.Vec2{X: 200, Y: 90})

	first, last := l.VisibleRange()
	if first != 0 || last != 3 {
		t.Errorf("VisibleRange() = [%d, %d), want [0, 3)", first, last)
	}

	l.ScrollTo(300)
	first, last = l.VisibleRange()
	if first != 10 || last != 13 {
		t.Errorf("VisibleRange() = [%d, %d) after scroll, want [10, 13)", first, last)
	}

	entries := l.VisibleEntries()
	if len(entries) != 3 || entries[0].Index != 10 {
		t.Errorf("VisibleEntries() starts at %d with %d rows, want 10 with 3", entries[0].Index, len(entries))
	}
}

func TestListWheelDelta(t *testing.T) {
	l := newTestList(vlist.WithWheelSpeed(30))

	// Wheel up (positive notches) moves the offset toward 0.
	if got := l.WheelDelta(2); got != -60 {
		t.Errorf("WheelDelta(2) = %v, want -60", got)
	}
	if got := l.WheelDelta(-1); got != 30 {
		t.Errorf("WheelDelta(-1) = %v, want 30", got)
	}
}

func TestListZeroDurationCompletesInOneStep(t *testing.T) {
	doneCount := 0
	l := newTestList(
		vlist.WithDuration(0),
		vlist.OnAnimationDone(func() { doneCount++ }),
	)
	l.SetItems(itemsOf(repeat(30, 50)...))
	l.SetViewportSize(vlist.Vec2{X: 200, Y: 300})

	l.ScrollToItem("item-20")
	l.Step(1.0 / 60)

	if l.Animating() {
		t.Error("zero-duration animation still in flight after one frame")
	}
	if got, want := l.ScrollY(), float32(20*30); got != want {
		t.Errorf("ScrollY() = %v, want %v", got, want)
	}
	if doneCount != 1 {
		t.Errorf("completion fired %d times, want exactly 1", doneCount)
	}
}

func TestListScrollByClampsAndNotifies(t *testing.T) {
	var setterCalls []float32
	l := newTestList(vlist.WithScrollSetter(func(off float32) { setterCalls = append(setterCalls, off) }))
	l.SetItems(itemsOf(repeat(30, 10)...)) // total 300
	l.SetViewportSize(vlist.Vec2{X: 200, Y: 100})

	l.ScrollBy(150)
	l.ScrollBy(150) // Clamped at 200.
	l.ScrollBy(150) // No-op: already at max.

	if l.ScrollY() != 200 {
		t.Errorf("ScrollY() = %v, want 200", l.ScrollY())
	}
	if len(setterCalls) != 2 {
		t.Fatalf("setter called %d times, want 2 (no-op moves are skipped)", len(setterCalls))
	}
	if setterCalls[0] != 150 || setterCalls[1] != 200 {
		t.Errorf("setter calls = %v, want [150, 200]", setterCalls)
	}
}

func BenchmarkListStep(b *testing.B) {
	l := newTestList(vlist.WithDuration(time.Duration(b.N) * time.Second))
	l.SetItems(itemsOf(repeat(24, 10000)...))
	l.SetViewportSize(vlist.Vec2{X: 200, Y: 600})
	l.ScrollToItem("item-9000")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Step(1.0 / 60)
	}
}
