package quickhull

import (
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the point cloud so hull vertices aren't flush with the edge
const drawPadding = 20

// Render draws the point cloud and its hull outline into an image: input
// points as white dots, the hull boundary stroked in cyan with its vertices
// highlighted. Used by the demo CLI; also handy for eyeballing a hull while
// debugging.
func Render(src Source, hull []Index, scale float64) image.Image {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	var pts []Point
	src.Iterate(func(pos int, pt Point) {
		if !isReal(pt) {
			return
		}
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
		pts = append(pts, pt)
	})
	if len(pts) == 0 {
		return gg.NewContext(drawPadding*2, drawPadding*2).Image()
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Input points
	c.SetRGB(1, 1, 1)
	for _, pt := range pts {
		c.DrawPoint(pt.X, pt.Y, 2/scale)
		c.Fill()
	}

	// Hull outline
	if len(hull) > 1 {
		first := src.Get(hull[0])
		c.MoveTo(first.X, first.Y)
		for _, ix := range hull[1:] {
			pt := src.Get(ix)
			c.LineTo(pt.X, pt.Y)
		}
		c.ClosePath()
		c.SetLineWidth(2 / scale)
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	// Hull vertices
	c.SetRGB(0, 1, 0)
	for _, ix := range hull {
		pt := src.Get(ix)
		c.DrawPoint(pt.X, pt.Y, 3/scale)
		c.Fill()
	}

	return c.Image()
}

// Helper to draw and print a hull in the terminal (iTerm only) for debugging.
func dbgDraw(src Source, hull []Index, scale float64) {
	c := gg.NewContextForImage(Render(src, hull, scale))
	c.SavePNG("/tmp/hull.png")
	imgcat.CatFile("/tmp/hull.png", os.Stdout)
}
