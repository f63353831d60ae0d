package vlist

// Renderer is the interface for rendering list draw data.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// UI manages the frame lifecycle: it hands out a Context per frame and
// renders the accumulated draw list through the backend renderer.
type UI struct {
	renderer Renderer
	style    Style
	ctx      *Context
}

// UIOption configures a UI instance.
type UIOption func(*UI)

// WithStyle sets the UI style.
func WithStyle(style Style) UIOption {
	return func(u *UI) { u.style = style }
}

// NewUI creates a new UI instance.
func NewUI(renderer Renderer, opts ...UIOption) *UI {
	u := &UI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Begin starts a new frame and returns the frame context.
// Call this at the start of each frame before drawing any widgets.
func (u *UI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := u.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.Input = input
	ctx.SetStyle(u.style)
	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End finishes the frame and renders the accumulated draw list.
func (u *UI) End() error {
	if u.ctx.DrawList == nil {
		return nil
	}

	err := u.renderer.Render(u.ctx.DrawList)

	ReleaseDrawList(u.ctx.DrawList)
	u.ctx.DrawList = nil

	return err
}

// Context returns the current frame context.
// Only valid between Begin() and End() calls.
func (u *UI) Context() *Context {
	return u.ctx
}

// Style returns the current style.
func (u *UI) Style() Style {
	return u.style
}

// SetStyle sets the style.
func (u *UI) SetStyle(style Style) {
	u.style = style
}

// Resize notifies the renderer of a display size change.
func (u *UI) Resize(width, height int) {
	u.renderer.Resize(width, height)
}
