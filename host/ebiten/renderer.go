// Package ebiten hosts the list inside an ebiten game loop: a Renderer that
// draws DrawLists onto an *ebiten.Image and an input bridge that polls
// ebiten's mouse, wheel, and keyboard state each Update.
package ebiten

import (
	"image"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/vlist"
)

// whiteImage is the source for untextured triangles. A 3x3 image with the
// center pixel sampled avoids bleeding at the edges under linear filtering.
var whiteImage = eb.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// Renderer draws list DrawLists onto an ebiten image.
type Renderer struct {
	dst    *eb.Image
	width  int
	height int

	// Scratch buffer reused across frames.
	vertices []eb.Vertex
}

// NewRenderer creates an ebiten list renderer.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// SetTarget sets the destination image for the current frame.
// Call this from Draw before UI.End.
func (r *Renderer) SetTarget(dst *eb.Image) {
	r.dst = dst
}

// Resize updates the logical screen size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws the DrawList onto the current target image. Clip rectangles
// map to SubImage targets; vertex offsets are rebased per command because
// ebiten indices address the whole vertex slice.
func (r *Renderer) Render(dl *vlist.DrawList) error {
	if r.dst == nil || dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}

	dl.Finalize()

	srcX := float32(whiteImage.Bounds().Min.X) + 1.5
	srcY := float32(whiteImage.Bounds().Min.Y) + 1.5

	op := &eb.DrawTrianglesOptions{}

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}

		target := r.clipTarget(cmd.ClipRect)
		if target == nil {
			continue
		}

		verts := dl.VtxBuffer[cmd.VertexOffset:]
		r.vertices = r.vertices[:0]
		for _, v := range verts {
			rc, g, b, a := vlist.UnpackRGBA(v.Color)
			r.vertices = append(r.vertices, eb.Vertex{
				DstX:   v.Pos[0],
				DstY:   v.Pos[1],
				SrcX:   srcX,
				SrcY:   srcY,
				ColorR: float32(rc) / 255,
				ColorG: float32(g) / 255,
				ColorB: float32(b) / 255,
				ColorA: float32(a) / 255,
			})
		}

		// Indices are already relative to the command's vertex offset.
		idx := dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount]
		target.DrawTriangles(r.vertices, idx, whiteImage, op)
	}

	return nil
}

// clipTarget returns the destination restricted to the command's clip
// rectangle, or nil when the intersection is empty.
func (r *Renderer) clipTarget(clip [4]float32) *eb.Image {
	rect := image.Rect(int(clip[0]), int(clip[1]), int(clip[2]), int(clip[3]))
	rect = rect.Intersect(image.Rect(0, 0, r.width, r.height))
	if rect.Empty() {
		return nil
	}
	return r.dst.SubImage(rect).(*eb.Image)
}
