package vlist_test

import (
	"testing"
	"time"

	"github.com/go-theft-auto/vlist"
)

// mockRenderer is a test renderer that records what it was asked to draw.
type mockRenderer struct {
	renderCalls int
	lastVerts   int
	lastCmds    int
}

func (m *mockRenderer) Render(dl *vlist.DrawList) error {
	dl.Finalize()
	m.renderCalls++
	m.lastVerts = len(dl.VtxBuffer)
	m.lastCmds = len(dl.CmdBuffer)
	return nil
}

func (m *mockRenderer) Resize(width, height int) {}

func setupWidgetTest() (*vlist.UI, *mockRenderer, *vlist.InputState) {
	renderer := &mockRenderer{}
	ui := vlist.NewUI(renderer)
	input := vlist.NewInputState()
	return ui, renderer, input
}

// renderFrame runs one full UI frame with the list widget.
func renderFrame(t *testing.T, ui *vlist.UI, input *vlist.InputState, l *vlist.List[item, string], dt float32, rendered *int) {
	t.Helper()

	ctx := ui.Begin(input, vlist.Vec2{X: 800, Y: 600}, dt)
	vlist.Rows(ctx, "test_rows", l, 300, func(ctx *vlist.Context, e vlist.Entry[item], rect vlist.Rect) {
		if rendered != nil {
			*rendered++
		}
	})
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
}

func TestRowsBasicFrame(t *testing.T) {
	ui, renderer, input := setupWidgetTest()

	l := newTestList()
	l.SetItems(itemsOf(repeat(30, 100)...))

	rendered := 0
	renderFrame(t, ui, input, l, 0.016, &rendered)

	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.lastVerts == 0 {
		t.Error("nothing drawn: expected list chrome vertices")
	}

	// Viewport 300 / row 30 = 10 visible rows, plus default overscan 1 below
	// (nothing above at offset 0).
	if rendered != 11 {
		t.Errorf("rendered %d rows, got frame at offset 0, want 11", rendered)
	}

	// The widget reported its viewport to the list.
	if got := l.ViewportSize().Y; got != 300 {
		t.Errorf("viewport height = %v, want 300", got)
	}
}

func TestRowsOnlyVisibleRowsRendered(t *testing.T) {
	ui, _, input := setupWidgetTest()

	l := newTestList(vlist.WithOverscan(2))
	l.SetItems(itemsOf(repeat(30, 10000)...))

	rendered := 0
	renderFrame(t, ui, input, l, 0.016, &rendered)

	// 10 visible + 2 overscan below; a 10000-row list must not render more.
	if rendered != 12 {
		t.Errorf("rendered %d rows of 10000, want 12", rendered)
	}
}

func TestRowsMouseWheelScrolls(t *testing.T) {
	ui, _, input := setupWidgetTest()

	l := newTestList()
	l.SetItems(itemsOf(repeat(30, 100)...))

	// Frame 1: no input, widget lays out and reports its viewport.
	renderFrame(t, ui, input, l, 0.016, nil)
	if l.ScrollY() != 0 {
		t.Fatalf("initial ScrollY() = %v, want 0", l.ScrollY())
	}

	// Frame 2: wheel down inside the widget.
	input.Reset()
	input.SetMousePos(100, 100)
	input.SetMouseWheel(0, -3)
	renderFrame(t, ui, input, l, 0.016, nil)

	// 3 notches at the default 30 px/notch.
	if l.ScrollY() != 90 {
		t.Errorf("ScrollY() = %v after wheel, want 90", l.ScrollY())
	}
}

func TestRowsWheelIgnoredOutsideWidget(t *testing.T) {
	ui, _, input := setupWidgetTest()

	l := newTestList()
	l.SetItems(itemsOf(repeat(30, 100)...))

	renderFrame(t, ui, input, l, 0.016, nil)

	input.Reset()
	input.SetMousePos(100, 500) // Below the 300px-tall widget
	input.SetMouseWheel(0, -3)
	renderFrame(t, ui, input, l, 0.016, nil)

	if l.ScrollY() != 0 {
		t.Errorf("ScrollY() = %v, want 0: wheel outside the widget must not scroll", l.ScrollY())
	}
}

func TestRowsPagingKeys(t *testing.T) {
	ui, _, input := setupWidgetTest()

	l := newTestList()
	l.SetItems(itemsOf(repeat(30, 100)...)) // total 3000, viewport 300

	renderFrame(t, ui, input, l, 0.016, nil)

	// PageDown scrolls 80% of the viewport.
	input.Reset()
	input.SetMousePos(100, 100)
	input.SetKey(vlist.KeyPageDown, true)
	renderFrame(t, ui, input, l, 0.016, nil)
	if l.ScrollY() != 240 {
		t.Errorf("ScrollY() = %v after PageDown, want 240", l.ScrollY())
	}

	// End jumps to the max offset.
	input.Reset()
	input.SetMousePos(100, 100)
	input.SetKey(vlist.KeyPageDown, false)
	input.SetKey(vlist.KeyEnd, true)
	renderFrame(t, ui, input, l, 0.016, nil)
	if got, want := l.ScrollY(), float32(2700); got != want {
		t.Errorf("ScrollY() = %v after End, want %v", got, want)
	}

	// Home returns to the top.
	input.Reset()
	input.SetMousePos(100, 100)
	input.SetKey(vlist.KeyEnd, false)
	input.SetKey(vlist.KeyHome, true)
	renderFrame(t, ui, input, l, 0.016, nil)
	if l.ScrollY() != 0 {
		t.Errorf("ScrollY() = %v after Home, want 0", l.ScrollY())
	}
}

func TestRowsAnimatedScrollAcrossFrames(t *testing.T) {
	ui, _, input := setupWidgetTest()

	doneCount := 0
	l := newTestList(
		vlist.WithDuration(300*time.Millisecond),
		vlist.OnAnimationDone(func() { doneCount++ }),
	)
	l.SetItems(itemsOf(repeat(30, 100)...))

	renderFrame(t, ui, input, l, 0.016, nil)
	input.Reset()

	if !l.ScrollToItem("item-50") {
		t.Fatal("ScrollToItem refused")
	}

	// The widget's frame loop drives the animation via its delta time.
	prev := l.ScrollY()
	advanced := false
	for i := 0; i < 60 && l.Animating(); i++ {
		renderFrame(t, ui, input, l, 1.0/60, nil)
		if l.ScrollY() > prev {
			advanced = true
		}
		if l.ScrollY() < prev {
			t.Fatalf("frame %d: offset regressed from %v to %v", i, prev, l.ScrollY())
		}
		prev = l.ScrollY()
	}

	if !advanced {
		t.Error("animation never advanced the offset")
	}
	if l.Animating() {
		t.Fatal("animation still in flight after 60 frames of 1/60s")
	}
	if got, want := l.ScrollY(), float32(50*30); got != want {
		t.Errorf("ScrollY() = %v, want %v", got, want)
	}
	if doneCount != 1 {
		t.Errorf("completion fired %d times, want exactly 1", doneCount)
	}
}

func TestRowsScrollbarDrag(t *testing.T) {
	ui, _, input := setupWidgetTest()

	l := newTestList()
	l.SetItems(itemsOf(repeat(30, 100)...)) // total 3000, viewport 300, max 2700

	// Frame 1: lay out. The scrollbar occupies the right edge of the 800px
	// widget; the thumb starts at the top.
	renderFrame(t, ui, input, l, 0.016, nil)

	// Frame 2: press on the thumb (right edge, near the top).
	input.Reset()
	input.SetMousePos(796, 10)
	input.SetMouseButton(vlist.MouseButtonLeft, true)
	renderFrame(t, ui, input, l, 0.016, nil)

	// Frame 3: drag down while held.
	input.Reset()
	input.SetMousePos(796, 110)
	renderFrame(t, ui, input, l, 0.016, nil)

	if l.ScrollY() <= 0 {
		t.Errorf("ScrollY() = %v, want > 0 after dragging the thumb down", l.ScrollY())
	}

	// Frame 4: release ends the drag; further movement does nothing.
	input.Reset()
	input.SetMouseButton(vlist.MouseButtonLeft, false)
	renderFrame(t, ui, input, l, 0.016, nil)
	dragged := l.ScrollY()

	input.Reset()
	input.SetMousePos(796, 290)
	renderFrame(t, ui, input, l, 0.016, nil)
	if l.ScrollY() != dragged {
		t.Errorf("ScrollY() = %v, want %v: movement after release must not scroll", l.ScrollY(), dragged)
	}
}

func BenchmarkRowsFrame(b *testing.B) {
	renderer := &mockRenderer{}
	ui := vlist.NewUI(renderer)
	input := vlist.NewInputState()

	l := newTestList()
	l.SetItems(itemsOf(repeat(24, 10000)...))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(input, vlist.Vec2{X: 800, Y: 600}, 1.0/60)
		vlist.Rows(ctx, "bench_rows", l, 560, func(ctx *vlist.Context, e vlist.Entry[item], rect vlist.Rect) {
			ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, vlist.ColorWhite)
		})
		_ = ui.End()
	}
}
