package advanced

import (
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/paulmach/orb"

	"github.com/oyashio/antimeridian/dbg"
)

// This is for debugging purposes only

// Padding around the fragments so the antimeridian lines are visible even
// when a fragment ends exactly on one.
const dbgDrawPadding = 40

// dbgDraw renders a fragment collection on a longitude/latitude canvas and
// prints it in the terminal (iTerm only). Both images of the antimeridian are
// drawn as vertical lines when they fall inside the view, which makes a bad
// split or a missed rewrap obvious at a glance.
func dbgDraw(fragments orb.MultiPolygon, scale float64) {
	bound := fragments.Bound()
	if bound.IsEmpty() {
		return
	}
	minX, minY := bound.Left(), bound.Bottom()
	maxX, maxY := bound.Right(), bound.Top()

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so north is up
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i := range fragments {
		frag := fragments[i]
		for _, ring := range frag {
			if len(ring) == 0 {
				continue
			}
			c.MoveTo(ring[0].Lon(), ring[0].Lat())
			for _, p := range ring[1:] {
				c.LineTo(p.Lon(), p.Lat())
			}
			c.ClosePath()
		}
		r, g, b := dbgFragmentFill(frag)
		c.SetRGBA(r, g, b, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	// The antimeridian and its shifted image, when in view
	for _, m := range []Meridian{MeridianWest, MeridianEast} {
		line := m.cutLine()
		if line[0].Lon() < minX || line[0].Lon() > maxX {
			continue
		}
		c.MoveTo(line[0].Lon(), line[0].Lat())
		c.LineTo(line[1].Lon(), line[1].Lat())
		c.SetRGB(1, 0, 0)
		c.Stroke()
	}

	// Name each fragment at the center of its bound. Text has to be drawn
	// back in native coordinates or it comes out flipped with the canvas.
	c.SetRGB(1, 1, 1)
	for i := range fragments {
		b := fragments[i].Bound()
		centerX := (b.Left() + b.Right()) / 2
		centerY := (b.Bottom() + b.Top()) / 2
		centerX, centerY = c.TransformPoint(centerX, centerY)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(dbg.Name(&fragments[i]), centerX, centerY, 0.5, 0.5)
		c.Pop()
	}

	c.SavePNG("/tmp/antimeridian_fragments.png")
	imgcat.CatFile("/tmp/antimeridian_fragments.png", os.Stdout)
}

// dbgList prints one line per fragment with its colored name and bounds.
func dbgList(fragments orb.MultiPolygon) {
	for i := range fragments {
		b := fragments[i].Bound()
		fmt.Printf("%s: lon [%v, %v] lat [%v, %v], %d ring(s)\n",
			dbgName(&fragments[i]), b.Left(), b.Right(), b.Bottom(), b.Top(), len(fragments[i]))
	}
}

// dbgName colors a fragment's readable name by where it sits relative to the
// prime meridian: cyan west, green east, red straddling it.
func dbgName(frag *orb.Polygon) string {
	name := dbg.Name(frag)
	b := frag.Bound()
	if b.Right() <= 0 {
		name = aurora.Cyan(name).String()
	} else if b.Left() >= 0 {
		name = aurora.Green(name).String()
	} else {
		name = aurora.Red(name).String()
	}
	return name
}

func dbgFragmentFill(frag orb.Polygon) (r, g, b float64) {
	bound := frag.Bound()
	if bound.Right() <= 0 {
		return 0.3, 0.2, 1
	}
	if bound.Left() >= 0 {
		return 0.2, 1, 0.3
	}
	return 1, 0.3, 0.2
}
