package vlist

// rowsStore is the type-safe store for per-widget scrollbar state.
var rowsStore = NewFrameStore[rowsState]()

// rowsState is the transient widget state that must survive across frames
// while the widget keeps rendering: scrollbar drag tracking.
type rowsState struct {
	Dragging     bool
	DragStartY   float32
	DragStartScr float32
}

// RowFunc renders one visible row into the given rectangle.
// The rectangle is in screen coordinates with the scroll offset already
// applied; rows partially outside the viewport are clipped by the widget.
type RowFunc[T any] func(ctx *Context, entry Entry[T], rect Rect)

// Rows renders the visible window of l at the current cursor position.
// It reports the measured viewport to the list, advances the scroll
// animation by the frame's delta time, feeds hover-scoped mouse wheel and
// paging-key input back into the list as user scrolls, and draws the
// scrollbar. Row contents are drawn by render; only rows inside the viewport
// plus the configured overscan margin are visited.
//
// Usage:
//
//	vlist.Rows(ctx, "inbox", list, 400, func(ctx *vlist.Context, e vlist.Entry[Mail], rect vlist.Rect) {
//	    ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H-1, rowColor(e.Item))
//	})
func Rows[T any, K comparable](ctx *Context, id string, l *List[T, K], height float32, render RowFunc[T], opts ...Option) {
	o := applyOptions(opts)

	widgetID := ctx.GetID(id + "_rows")
	state := rowsStore.Get(widgetID, rowsState{})

	pos := ctx.GetCursorPos()
	w := ctx.DisplaySize.X - pos.X
	if width := GetOpt(o, OptWidth); width > 0 {
		w = width
	}

	// Decide scrollbar layout before measuring: the thumb steals width from
	// the content area.
	scrollbarVisibility := GetOpt(o, OptScrollbarVisibility)
	showScrollbar := scrollbarVisibility == ScrollbarAlways ||
		(scrollbarVisibility == ScrollbarAuto && l.Index().TotalHeight() > height)

	scrollbarWidth := float32(0)
	if showScrollbar {
		scrollbarWidth = ctx.style.ScrollbarSize
	}

	contentWidth := w - scrollbarWidth
	scrollbarX := pos.X + w - scrollbarWidth
	contentX := pos.X
	if GetOpt(o, OptScrollbarSide) == ScrollbarLeft {
		scrollbarX = pos.X
		contentX = pos.X + scrollbarWidth
	}

	// Report the layout to the list. The viewport is the content area, not
	// the full widget rect.
	l.SetViewportSize(Vec2{X: contentWidth, Y: height})

	viewportRect := Rect{X: pos.X, Y: pos.Y, W: w, H: height}

	// Handle scroll input when hovered (no focus required).
	if ctx.Input != nil && ctx.isHovered(viewportRect) {
		if wy := ctx.Input.MouseWheelY; wy != 0 {
			l.ScrollBy(l.WheelDelta(wy))
		}

		pageAmount := height * 0.8 // Page up/down scrolls 80% of viewport
		if ctx.Input.KeyPressed(KeyPageDown) {
			l.ScrollBy(pageAmount)
		}
		if ctx.Input.KeyPressed(KeyPageUp) {
			l.ScrollBy(-pageAmount)
		}
		if ctx.Input.KeyPressed(KeyHome) {
			l.ScrollTo(0)
		}
		if ctx.Input.KeyPressed(KeyEnd) {
			l.ScrollTo(l.MaxOffset())
		}
	}

	// Advance the animation after user input so a user scroll this frame is
	// observed before the next animation frame is applied.
	l.Step(ctx.DeltaTime)

	// Background and border.
	ctx.DrawList.AddRect(pos.X, pos.Y, w, height, ctx.style.BackgroundColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, height, ctx.style.BorderColor, 1)

	// Visible rows, clipped to the content area.
	ctx.DrawList.PushClipRect(contentX, pos.Y, contentX+contentWidth, pos.Y+height)

	scrollY := l.ScrollY()
	rowBg := GetOpt(o, OptRowBackground)
	for _, entry := range l.VisibleEntries() {
		rect := Rect{
			X: contentX,
			Y: pos.Y + entry.OffsetTop - scrollY,
			W: contentWidth,
			H: entry.Height,
		}
		if rowBg {
			color := ctx.style.RowBgColor
			if entry.Index%2 == 1 {
				color = ctx.style.RowBgAltColor
			}
			ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, color)
		}
		render(ctx, entry, rect)
	}

	ctx.DrawList.PopClipRect()

	// Re-check visibility now that content height is known this frame.
	totalHeight := l.Index().TotalHeight()
	showScrollbar = scrollbarVisibility == ScrollbarAlways ||
		(scrollbarVisibility != ScrollbarNever && totalHeight > height)

	if showScrollbar && totalHeight > height {
		drawScrollbar(ctx, l, state, Rect{X: scrollbarX, Y: pos.Y, W: scrollbarWidth, H: height})
	}

	// Restore cursor position after the widget.
	ctx.SetCursorPos(pos.X, pos.Y)
	ctx.advanceCursor(Vec2{X: w, Y: height})
}

// drawScrollbar draws the track and thumb and handles thumb dragging and
// track-click paging. All position changes go through the list as
// user-initiated scrolls.
func drawScrollbar[T any, K comparable](ctx *Context, l *List[T, K], state *rowsState, track Rect) {
	totalHeight := l.Index().TotalHeight()
	maxScroll := l.MaxOffset()

	scrollRatio := track.H / totalHeight
	thumbHeight := maxf(ctx.style.ScrollbarMinThumb, track.H*scrollRatio)
	thumbPos := float32(0)
	if maxScroll > 0 {
		thumbPos = (l.ScrollY() / maxScroll) * (track.H - thumbHeight)
	}
	thumbY := track.Y + thumbPos

	ctx.DrawList.AddRect(track.X, track.Y, track.W, track.H, ctx.style.ScrollbarBgColor)

	thumbRect := Rect{X: track.X, Y: thumbY, W: track.W, H: thumbHeight}
	thumbHovered := ctx.isHovered(thumbRect)

	if ctx.Input != nil {
		// Start drag on thumb click.
		if thumbHovered && ctx.Input.MouseClicked(MouseButtonLeft) {
			state.Dragging = true
			state.DragStartY = ctx.Input.MouseY
			state.DragStartScr = l.ScrollY()
		}

		// Handle ongoing drag.
		if state.Dragging {
			if ctx.Input.MouseDown(MouseButtonLeft) {
				deltaY := ctx.Input.MouseY - state.DragStartY
				scrollableTrack := track.H - thumbHeight
				if scrollableTrack > 0 {
					scrollDelta := deltaY * (maxScroll / scrollableTrack)
					l.ScrollTo(state.DragStartScr + scrollDelta)
				}
			} else {
				state.Dragging = false
			}
		}

		// Click on track (above or below thumb) to page scroll.
		if !thumbHovered && ctx.isHovered(track) && ctx.Input.MouseClicked(MouseButtonLeft) {
			if ctx.Input.MouseY < thumbY {
				l.ScrollBy(-track.H)
			} else if ctx.Input.MouseY > thumbY+thumbHeight {
				l.ScrollBy(track.H)
			}
		}
	}

	thumbColor := ctx.style.ScrollbarGrabColor
	if state.Dragging || thumbHovered {
		thumbColor = ctx.style.ScrollbarGrabHovered
	}
	ctx.DrawList.AddRect(track.X, thumbY, track.W, thumbHeight, thumbColor)
}
