// Example demonstrates a virtualized list in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, fills a list with rows of varying
// heights, and renders the visible window of it. The mouse wheel, paging
// keys, and scrollbar scroll directly; pressing Space animates a scroll to a
// random row. Tunables are read from config.toml next to the binary.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/vlist"
	"github.com/go-theft-auto/vlist/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "vlist example"
)

// Config holds the demo tunables.
type Config struct {
	Rows       int     `toml:"rows"`
	MinHeight  float32 `toml:"min_height"`
	MaxHeight  float32 `toml:"max_height"`
	DurationMS int     `toml:"duration_ms"`
	Overscan   int     `toml:"overscan"`
	Retarget   bool    `toml:"retarget"`
	WheelSpeed float32 `toml:"wheel_speed"`
}

func defaultConfig() Config {
	return Config{
		Rows:       10000,
		MinHeight:  20,
		MaxHeight:  60,
		DurationMS: 300,
		Overscan:   1,
		Retarget:   false,
		WheelSpeed: 30,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Row is a demo list item.
type Row struct {
	ID     int
	Label  string
	Height float32
	Color  uint32
}

func makeRows(cfg Config) []Row {
	rng := rand.New(rand.NewSource(1))
	rows := make([]Row, cfg.Rows)
	for i := range rows {
		h := cfg.MinHeight + rng.Float32()*(cfg.MaxHeight-cfg.MinHeight)
		shade := uint8(40 + rng.Intn(60))
		rows[i] = Row{
			ID:     i,
			Label:  fmt.Sprintf("row %d", i),
			Height: h,
			Color:  vlist.RGBA(shade, shade, shade+10, 255),
		}
	}
	return rows
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.toml", "path to the demo config file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	vlist.SetVerbose(*verbose)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Create the list renderer (takes initial viewport size) and input adapter.
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("list renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	ui := vlist.NewUI(renderer, vlist.WithStyle(vlist.DarkStyle()))

	rows := makeRows(cfg)
	var list *vlist.List[Row, int]
	list = vlist.New(
		func(r Row) int { return r.ID },
		func(r Row) float32 { return r.Height },
		vlist.WithDuration(time.Duration(cfg.DurationMS)*time.Millisecond),
		vlist.WithOverscan(cfg.Overscan),
		vlist.WithRetarget(cfg.Retarget),
		vlist.WithWheelSpeed(cfg.WheelSpeed),
		vlist.OnAnimationDone(func() {
			fmt.Println("scroll finished at", list.ScrollY())
		}),
	)
	list.SetItems(rows)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	lastTime := glfw.GetTime()

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		now := glfw.GetTime()
		deltaTime := float32(now - lastTime)
		lastTime = now

		// Space animates a jump to a random row.
		if input.KeyPressed(vlist.KeySpace) {
			target := rows[rng.Intn(len(rows))]
			if list.ScrollToItem(target.ID) {
				fmt.Println("scrolling to", target.Label)
			}
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.08, 0.08, 0.09, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		renderer.Resize(w, h)

		displaySize := vlist.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(input, displaySize, deltaTime)

		ctx.SetCursorPos(20, 20)
		vlist.Rows(ctx, "demo", list, float32(h)-40,
			func(ctx *vlist.Context, e vlist.Entry[Row], rect vlist.Rect) {
				ctx.DrawList.AddRect(rect.X+4, rect.Y+2, rect.W-8, rect.H-4, e.Item.Color)
			},
			vlist.WithWidth(float32(w)-40),
			vlist.WithRowBackground(),
		)

		if err := ui.End(); err != nil {
			return fmt.Errorf("list render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
