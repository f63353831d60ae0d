package vlist

// List owns the virtualized-list scroll state for one viewport: the
// normalized item index, the current scroll offset, and the scroll animator.
// It decides when and to what offset the viewport scrolls; actually drawing
// rows is the host's job (see Rows for the immediate-mode widget, or the
// backend packages for standalone hosts).
//
// A List is single-threaded: all calls must come from the frame loop
// goroutine. The animation "suspends" between frames simply by returning from
// Step and being ticked again on the next frame.
type List[T any, K comparable] struct {
	getID     func(T) K
	getHeight func(T) float32

	index *Index[T, K]
	anim  Animator

	overscan     int
	retarget     bool
	wheelSpeed   float32
	scrollSetter func(float32)
	onScroll     func(ScrollEvent)
	onDone       func()

	viewport Vec2
	scrollY  float32
	clock    float64
}

// New creates a List for items identified by getID and measured by getHeight.
// getID must return stable, unique keys; getHeight must return finite,
// non-negative pixel heights. Neither precondition is validated (heights
// originate entirely from caller logic), and violating them leaves the
// layout undefined.
func New[T any, K comparable](getID func(T) K, getHeight func(T) float32, opts ...Option) *List[T, K] {
	o := applyOptions(opts)

	l := &List[T, K]{
		getID:        getID,
		getHeight:    getHeight,
		index:        Normalize(nil, getID, getHeight),
		overscan:     GetOpt(o, OptOverscan),
		retarget:     GetOpt(o, OptRetarget),
		wheelSpeed:   GetOpt(o, OptWheelSpeed),
		scrollSetter: GetOpt(o, OptScrollSetter),
		onScroll:     GetOpt(o, OptOnScroll),
		onDone:       GetOpt(o, OptOnDone),
	}
	l.anim.Duration = GetOpt(o, OptDuration).Seconds()
	l.anim.Easing = GetOpt(o, OptEasing)

	return l
}

// SetItems replaces the item sequence and rebuilds the normalized index.
// Heights may depend on arbitrary caller state, so the rebuild is always a
// full pass; call this whenever the sequence or the height function's inputs
// change. The scroll offset is clamped to the new content bounds.
func (l *List[T, K]) SetItems(items []T) {
	l.index = Normalize(items, l.getID, l.getHeight)
	l.scrollY = clampf(l.scrollY, 0, l.MaxOffset())
}

// Index returns the current normalized index.
func (l *List[T, K]) Index() *Index[T, K] {
	return l.index
}

// Len returns the number of items.
func (l *List[T, K]) Len() int {
	return l.index.Len()
}

// SetViewportSize records the viewport dimensions. Hosts report this once
// per layout pass or resize.
func (l *List[T, K]) SetViewportSize(size Vec2) {
	l.viewport = size
}

// ViewportSize returns the last reported viewport dimensions.
func (l *List[T, K]) ViewportSize() Vec2 {
	return l.viewport
}

// ScrollY returns the current scroll offset.
func (l *List[T, K]) ScrollY() float32 {
	return l.scrollY
}

// MaxOffset returns the largest valid scroll offset for the current content
// and viewport.
func (l *List[T, K]) MaxOffset() float32 {
	return l.index.MaxOffset(l.viewport.Y)
}

// Animating reports whether a scroll animation is in flight.
func (l *List[T, K]) Animating() bool {
	return l.anim.Animating()
}

// VisibleRange returns the half-open entry range [first, last) to render for
// the current offset, widened by the overscan margin.
func (l *List[T, K]) VisibleRange() (first, last int) {
	return l.index.Range(l.scrollY, l.viewport.Y, l.overscan)
}

// VisibleEntries returns the entries to render for the current offset.
// The slice is shared with the index; do not modify.
func (l *List[T, K]) VisibleEntries() []Entry[T] {
	first, last := l.VisibleRange()
	return l.index.Entries()[first:last]
}

// ScrollToItem starts an animated scroll to the item with the given key.
// A missing key is not an error — the item may have just been removed — and
// the call is silently ignored. The request is also dropped when an
// animation is already in flight (unless WithRetarget is enabled) or when it
// targets the same offset as the previous request, so at most one animation
// runs at a time. Returns true when an animation was started or redirected.
func (l *List[T, K]) ScrollToItem(key K) bool {
	entry, ok := l.index.Lookup(key)
	if !ok {
		listLogger.Debug("scroll-to target not in index", "key", key)
		return false
	}

	target := entry.OffsetTop

	if l.retarget && l.anim.Animating() {
		l.anim.Retarget(target, l.clock)
		listLogger.Debug("scroll animation retargeted", "index", entry.Index, "target", target)
		return true
	}

	started := l.anim.Start(target, l.clock)
	if started {
		listLogger.Debug("scroll animation started",
			"index", entry.Index,
			"target", target,
			"from", l.anim.Baseline())
	}
	return started
}

// HandleScroll processes a scroll event from the hosting scroll container.
// User-initiated events rebase the animator so the next animation starts
// from the user's position; an animation already in flight keeps running
// unaffected. The offset is clamped to the content bounds.
func (l *List[T, K]) HandleScroll(ev ScrollEvent) {
	offset := clampf(ev.Offset, 0, l.MaxOffset())
	if ev.Direction == DirectionNone {
		ev.Direction = directionOf(l.scrollY, offset)
	}
	ev.Offset = offset

	l.scrollY = offset
	l.anim.ObserveScroll(offset, ev.Programmatic)
	if l.onScroll != nil {
		l.onScroll(ev)
	}
}

// ScrollBy applies a user-initiated relative scroll (mouse wheel, paging
// keys) in pixels. The resulting offset is clamped, pushed to the external
// scroll setter, and surfaced as a non-programmatic scroll event.
func (l *List[T, K]) ScrollBy(delta float32) {
	l.ScrollTo(l.scrollY + delta)
}

// ScrollTo applies a user-initiated absolute scroll to the given offset.
func (l *List[T, K]) ScrollTo(offset float32) {
	offset = clampf(offset, 0, l.MaxOffset())
	if offset == l.scrollY {
		return
	}
	if l.scrollSetter != nil {
		l.scrollSetter(offset)
	}
	l.HandleScroll(ScrollEvent{Offset: offset, Programmatic: false})
}

// WheelDelta converts a wheel notch count into pixels using the configured
// wheel speed. Positive wheel input scrolls the content up (offset down),
// matching typical windowing conventions.
func (l *List[T, K]) WheelDelta(notches float32) float32 {
	return -notches * l.wheelSpeed
}

// Step advances the list's clock by dt seconds and applies the next
// animation frame, if any: the eased offset is clamped to [0, MaxOffset],
// pushed to the external scroll setter, and surfaced as a programmatic
// scroll event. On the frame where the elapsed time reaches the duration the
// animation stops and the completion callback fires exactly once.
//
// Frames are strictly ordered: each Step fully computes and applies one
// offset before the next can run.
func (l *List[T, K]) Step(dt float32) {
	l.clock += float64(dt)

	offset, done, running := l.anim.Tick(l.clock, l.MaxOffset())
	if !running {
		return
	}

	dir := directionOf(l.scrollY, offset)
	l.scrollY = offset
	if l.scrollSetter != nil {
		l.scrollSetter(offset)
	}
	if l.onScroll != nil {
		l.onScroll(ScrollEvent{Offset: offset, Direction: dir, Programmatic: true})
	}

	if done {
		listLogger.Debug("scroll animation complete", "offset", offset)
		if l.onDone != nil {
			l.onDone()
		}
	}
}
