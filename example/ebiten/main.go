// Example demonstrates the virtualized list inside an ebiten game loop.
//
//	go run ./example/ebiten/
//
// The mouse wheel and paging keys scroll directly; pressing Space animates a
// scroll to a random row.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/vlist"
	ebitenhost "github.com/go-theft-auto/vlist/host/ebiten"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

// Row is a demo list item.
type Row struct {
	ID     int
	Height float32
	Color  uint32
}

// Game drives the list from ebiten's fixed-tick Update/Draw loop.
type Game struct {
	ui       *vlist.UI
	renderer *ebitenhost.Renderer
	bridge   *ebitenhost.InputBridge
	list     *vlist.List[Row, int]
	rows     []Row
	rng      *rand.Rand
	input    *vlist.InputState
}

func NewGame() *Game {
	rng := rand.New(rand.NewSource(1))
	rows := make([]Row, 5000)
	for i := range rows {
		shade := uint8(40 + rng.Intn(60))
		rows[i] = Row{
			ID:     i,
			Height: 20 + rng.Float32()*40,
			Color:  vlist.RGBA(shade, shade, shade+10, 255),
		}
	}

	list := vlist.New(
		func(r Row) int { return r.ID },
		func(r Row) float32 { return r.Height },
		vlist.WithDuration(300*time.Millisecond),
	)
	list.SetItems(rows)

	renderer := ebitenhost.NewRenderer(screenWidth, screenHeight)

	return &Game{
		ui:       vlist.NewUI(renderer, vlist.WithStyle(vlist.DarkStyle())),
		renderer: renderer,
		bridge:   ebitenhost.NewInputBridge(),
		list:     list,
		rows:     rows,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *Game) Update() error {
	g.input = g.bridge.Update()

	if g.input.KeyPressed(vlist.KeySpace) {
		target := g.rows[g.rng.Intn(len(g.rows))]
		if g.list.ScrollToItem(target.ID) {
			fmt.Println("scrolling to row", target.ID)
		}
	}

	return nil
}

func (g *Game) Draw(screen *eb.Image) {
	g.renderer.SetTarget(screen)

	// Ebiten runs Update at a fixed 60 ticks per second.
	ctx := g.ui.Begin(g.input, vlist.Vec2{X: screenWidth, Y: screenHeight}, 1.0/60.0)

	ctx.SetCursorPos(20, 20)
	vlist.Rows(ctx, "demo", g.list, screenHeight-40,
		func(ctx *vlist.Context, e vlist.Entry[Row], rect vlist.Rect) {
			ctx.DrawList.AddRect(rect.X+4, rect.Y+2, rect.W-8, rect.H-4, e.Item.Color)
		},
		vlist.WithWidth(screenWidth-40),
		vlist.WithRowBackground(),
	)

	if err := g.ui.End(); err != nil {
		log.Println("render:", err)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	eb.SetWindowSize(screenWidth, screenHeight)
	eb.SetWindowTitle("vlist ebiten example")

	if err := eb.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
