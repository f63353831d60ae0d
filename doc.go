/*
Package vlist provides a virtualized list renderer with animated scrolling,
designed as idiomatic Go with a dedicated List type per viewport.

# Overview

The package separates three concerns:

  - Normalization: an arbitrary item sequence is flattened into an Index
    mapping each stable key to its item, ordinal position, height, and
    cumulative top offset. The index is rebuilt in a single forward pass
    whenever the sequence or the heights change.
  - Offset math: the index answers range queries (which entries intersect
    the viewport, widened by an overscan margin) and bounds queries
    (the maximum scroll offset for a given viewport height).
  - Scroll animation: programmatic scrolls to an item are animated over a
    fixed duration with quintic ease-in-out, driven one frame at a time by
    the host's frame loop. User scrolls pass through immediately and rebase
    the animation baseline.

Rendering is the caller's job: the package computes which rows are visible
and where they sit, and hands each one to a render callback. The bundled
Rows widget draws list chrome (background, row stripes, scrollbar) through
a pooled DrawList that the backend packages translate to OpenGL or ebiten.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(800, 600)
	ui := vlist.NewUI(renderer)

	list := vlist.New(
	    func(m Mail) string { return m.ID },
	    func(m Mail) float32 { return 24 },
	    vlist.WithDuration(300*time.Millisecond),
	)
	list.SetItems(mails)

	// Frame loop
	for !window.ShouldClose() {
	    input := inputAdapter.Update()

	    ctx := ui.Begin(input, vlist.Vec2{X: 800, Y: 600}, deltaTime)

	    vlist.Rows(ctx, "inbox", list, 560, func(ctx *vlist.Context, e vlist.Entry[Mail], rect vlist.Rect) {
	        // draw one row into rect
	    })

	    ui.End()
	    window.SwapBuffers()
	}

	// From anywhere in the frame loop: animate to an item by key.
	list.ScrollToItem("mail-42")

# Scroll Model

All offset changes funnel through the List. User input (mouse wheel, paging
keys, scrollbar drags) becomes an immediate clamped scroll; ScrollToItem
becomes an animation that emits one clamped offset per frame via Step. At
most one animation runs at a time: requests made while one is in flight,
or that repeat the previous target, are dropped (see WithRetarget for the
preempting variant). Completion fires the OnAnimationDone callback exactly
once.

The List is not safe for concurrent use; drive it from the frame loop
goroutine, the same way the Context is single-threaded.

# Debugging

Set the VLIST_DEBUG environment variable or call SetVerbose(true) to enable
debug logging of animation starts, retargets, and completions via log/slog.
*/
package vlist
