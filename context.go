package vlist

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for list debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

func init() {
	if os.Getenv("VLIST_DEBUG") != "" {
		logLevel.Set(slog.LevelDebug)
	}
}

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// listLogger is the logger for list internals.
var listLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// Context holds all state for rendering in a single frame.
// This is NOT context.Context - it's a dedicated frame context: using a
// dedicated type avoids type assertions and map lookups on the hot path.
type Context struct {
	// Drawing output
	DrawList *DrawList

	// Styling
	style Style

	// Layout cursor
	cursor Vec2

	// Input (read-only during frame)
	Input *InputState

	// IDs
	idStack   []ID
	idCounter uint32 // Auto-increment for call-site IDs

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32
}

// NewContext creates an empty frame context.
func NewContext() *Context {
	return &Context{}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Advance frame counter and clean up stale FrameStore entries
	NextFrame()

	ctx.cursor = Vec2{0, 0}
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// advanceCursor moves the cursor past a placed widget.
func (ctx *Context) advanceCursor(size Vec2) {
	ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
}

// isHovered returns true if the widget area is under the mouse cursor.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
}

// IsHovered returns true if the widget area is under the mouse cursor
// (public API).
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

// isClicked returns true if the rect was clicked this frame.
func (ctx *Context) isClicked(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	hovered := ctx.isHovered(rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)

	if clicked && logLevel.Level() <= slog.LevelDebug {
		if hovered {
			listLogger.Debug("click detected", "rect", rect,
				"mouse", Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
		}
	}

	return hovered && clicked
}

// IsClicked returns true if the rect was clicked this frame (public API).
func (ctx *Context) IsClicked(rect Rect) bool {
	return ctx.isClicked(rect)
}
