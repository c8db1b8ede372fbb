package warp

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/keystone/dbg"
)

// This is for debugging purposes only

// Padding around the quads so points near the hull edge stay visible
const dbgDrawPadding = 100

// Helper to draw a source/destination correspondence in the terminal
// (iTerm only) for debugging. The source quad is drawn in green, the
// destination in cyan, with thin lines joining corresponding vertices.
func dbgDrawCorrespondence(src, dst *Quad, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, q := range []*Quad{src, dst} {
		for _, p := range q {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Correspondence lines first so the quads draw over them
	c.SetLineWidth(1)
	c.SetRGBA(1, 1, 1, 0.4)
	for i := 0; i < 4; i++ {
		c.MoveTo(src[i].X, src[i].Y)
		c.LineTo(dst[i].X, dst[i].Y)
	}
	c.Stroke()

	c.SetLineWidth(2)
	for qi, q := range []*Quad{src, dst} {
		c.MoveTo(q[0].X, q[0].Y)
		for _, p := range q[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		if qi == 0 {
			c.SetRGB(0, 1, 0)
		} else {
			c.SetRGB(0, 1, 1)
		}
		c.Stroke()
	}

	c.SavePNG("/tmp/keystone_quads.png")
	imgcat.CatFile("/tmp/keystone_quads.png", os.Stdout)

	fmt.Println("src:", src.DbgName(), "dst:", dst.DbgName())
}

// DbgName gives the quad a stable readable name, colored by health:
// red for a degenerate (collinear) quad, green otherwise.
func (q *Quad) DbgName() string {
	name := dbg.Name(q)
	if q.Degenerate() {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}
