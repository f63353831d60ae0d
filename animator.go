package vlist

// animPhase is the animator's state tag.
type animPhase int

const (
	animIdle animPhase = iota
	animRunning
)

// Animator drives a time-eased transition of a scroll offset from a baseline
// to a target. It is an explicit two-state machine: Idle, or Running with the
// initial offset, final offset, and start time captured at launch.
//
// All methods must be called from the same goroutine that drives the frame
// loop; the animator performs no locking.
type Animator struct {
	// Duration is the animation length in seconds. A duration <= 0 is not
	// validated: the first tick then completes immediately at the final
	// offset.
	Duration float64

	// Easing remaps progress; nil means EaseInOutQuint.
	Easing Easing

	phase    animPhase
	baseline float32 // Offset at animation start, or last committed user position

	// Running state, captured by Start and immutable until completion.
	// User scrolls mid-flight update only the baseline, which is read again
	// at the next Start.
	initial   float32
	final     float32
	startTime float64

	// Last recorded target. Repeat requests for the same target are dropped.
	lastFinal float32
	hasFinal  bool
}

// Animating reports whether an animation is in flight.
func (a *Animator) Animating() bool {
	return a.phase == animRunning
}

// Baseline returns the committed scroll offset that the next animation will
// start from.
func (a *Animator) Baseline() float32 {
	return a.baseline
}

// ObserveScroll records a scroll position change. User-initiated changes
// commit the baseline immediately, so a future animation starts from where
// the user left the viewport rather than from a stale target. Programmatic
// changes (the animator's own frames) are observed without rebasing.
// Last write wins; there is no history.
func (a *Animator) ObserveScroll(offset float32, programmatic bool) {
	if !programmatic {
		a.baseline = offset
	}
}

// Start launches an animation from the current baseline to target.
// It returns false without side effects when an animation is already in
// flight, or when target equals the last recorded final target — at most one
// animation runs at a time, and identical requests are coalesced.
func (a *Animator) Start(target float32, now float64) bool {
	if a.phase == animRunning {
		return false
	}
	if a.hasFinal && target == a.lastFinal {
		return false
	}

	a.initial = a.baseline
	a.final = target
	a.lastFinal = target
	a.hasFinal = true
	a.startTime = now
	a.phase = animRunning
	return true
}

// Retarget redirects an in-flight animation to a new target, rebasing the
// initial offset to the current interpolated position so the transition stays
// continuous. When idle it behaves like Start without the duplicate-target
// guard.
func (a *Animator) Retarget(target float32, now float64) {
	if a.phase == animRunning {
		a.initial = a.offsetAt(now)
		a.baseline = a.initial
	} else {
		a.initial = a.baseline
		a.phase = animRunning
	}
	a.final = target
	a.lastFinal = target
	a.hasFinal = true
	a.startTime = now
}

// Tick advances the animation to the given time and returns the eased offset
// clamped to [0, maxOffset]. running is false when no animation is in flight.
// done is true exactly once per animation, on the tick where the elapsed time
// reaches the duration; the animator is then idle and the baseline committed
// to the final target.
func (a *Animator) Tick(now float64, maxOffset float32) (offset float32, done, running bool) {
	if a.phase != animRunning {
		return 0, false, false
	}

	elapsed := now - a.startTime
	offset = clampf(a.offsetAt(now), 0, maxOffset)

	if elapsed >= a.Duration {
		a.phase = animIdle
		a.baseline = a.final
		return offset, true, true
	}
	return offset, false, true
}

// offsetAt interpolates the unclamped offset for the given time.
func (a *Animator) offsetAt(now float64) float32 {
	t := 1.0
	if a.Duration > 0 {
		t = (now - a.startTime) / a.Duration
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	easing := a.Easing
	if easing == nil {
		easing = EaseInOutQuint
	}
	eased := easing(t)

	return a.initial + (a.final-a.initial)*float32(eased)
}
