package vlist

import "time"

// Option configures a list or widget.
type Option func(*options)

// options holds all configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for options.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = vlist.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	vlist.New(getID, getHeight, vlist.WithOpt(OptCustomThing, value))
//
//	// Read in widget implementation
//	value := vlist.GetOpt(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// ScrollbarVisibility controls when scrollbars are shown.
type ScrollbarVisibility int

const (
	ScrollbarAuto   ScrollbarVisibility = iota // Show only when content exceeds viewport
	ScrollbarAlways                            // Always show scrollbar
	ScrollbarNever                             // Never show scrollbar
)

// ScrollbarSide controls which side the scrollbar appears on.
type ScrollbarSide int

const (
	ScrollbarRight ScrollbarSide = iota // Scrollbar on right side (default)
	ScrollbarLeft                       // Scrollbar on left side
)

// Defaults for list behavior.
const (
	DefaultScrollDuration = 300 * time.Millisecond
	DefaultOverscan       = 1
	DefaultWheelSpeed     = 30 // Pixels per wheel notch
)

// --- List Options ---
var (
	OptOverscan     = NewOptKey("overscan", DefaultOverscan)
	OptDuration     = NewOptKey("duration", DefaultScrollDuration)
	OptEasing       = NewOptKey[Easing]("easing", nil)
	OptRetarget     = NewOptKey("retarget", false)
	OptScrollSetter = NewOptKey[func(float32)]("scrollSetter", nil)
	OptOnScroll     = NewOptKey[func(ScrollEvent)]("onScroll", nil)
	OptOnDone       = NewOptKey[func()]("onDone", nil)
)

// --- Widget Options ---
var (
	OptWidth               = NewOptKey[float32]("width", 0)
	OptWheelSpeed          = NewOptKey[float32]("wheelSpeed", DefaultWheelSpeed)
	OptScrollbarVisibility = NewOptKey("scrollbarVisibility", ScrollbarAuto)
	OptScrollbarSide       = NewOptKey("scrollbarSide", ScrollbarRight)
	OptRowBackground       = NewOptKey("rowBackground", false)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithOverscan sets how many extra rows are included beyond the visible
// viewport on each side. Overscan only widens the rendered window; it never
// affects scroll offsets.
func WithOverscan(n int) Option { return WithOpt(OptOverscan, n) }

// WithDuration sets the scroll animation duration. The default is 300ms.
// Durations <= 0 are not validated; the animation then completes on its
// first frame.
func WithDuration(d time.Duration) Option { return WithOpt(OptDuration, d) }

// WithEasing sets the animation easing function. The default is EaseInOutQuint.
func WithEasing(e Easing) Option { return WithOpt(OptEasing, e) }

// WithRetarget allows ScrollToItem to redirect an in-flight animation to a
// new target instead of dropping the request. The transition rebases to the
// current interpolated offset, so it stays continuous.
func WithRetarget(enabled bool) Option { return WithOpt(OptRetarget, enabled) }

// WithScrollSetter wires the external scroll container's imperative setter.
// The list invokes it with the clamped offset on every animation frame and
// on every user scroll it handles.
func WithScrollSetter(set func(offset float32)) Option { return WithOpt(OptScrollSetter, set) }

// OnScroll registers a callback fired on every scroll position change,
// user-driven or programmatic.
func OnScroll(cb func(ScrollEvent)) Option { return WithOpt(OptOnScroll, cb) }

// OnAnimationDone registers a callback fired exactly once when a
// ScrollToItem animation completes.
func OnAnimationDone(cb func()) Option { return WithOpt(OptOnDone, cb) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithWheelSpeed sets how many pixels one mouse wheel notch scrolls.
func WithWheelSpeed(speed float32) Option { return WithOpt(OptWheelSpeed, speed) }

// ShowScrollbar controls scrollbar visibility.
func ShowScrollbar(always bool) Option {
	if always {
		return WithOpt(OptScrollbarVisibility, ScrollbarAlways)
	}
	return WithOpt(OptScrollbarVisibility, ScrollbarAuto)
}

// ScrollbarPosition sets which side the scrollbar appears on.
func ScrollbarPosition(side ScrollbarSide) Option { return WithOpt(OptScrollbarSide, side) }

// WithRowBackground draws alternating row backgrounds behind rendered rows.
func WithRowBackground() Option { return WithOpt(OptRowBackground, true) }
