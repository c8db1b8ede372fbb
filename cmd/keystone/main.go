package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"golang.org/x/image/draw"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/keystone"
	"github.com/osuushi/keystone/raster"
)

// Demo of projective warping. Takes a PNG (or a generated test card),
// maps the --from quad onto the --to quad, and writes the result.
// Quads are given as four space-separated "x,y" pairs in corresponding
// order; three collinear points in either quad are rejected.

var (
	fromFlag = kingpin.Flag("from", `Source quad as "x,y x,y x,y x,y"`).Required().String()
	toFlag   = kingpin.Flag("to", `Destination quad as "x,y x,y x,y x,y"`).Required().String()
	mode     = kingpin.Flag("mode", "Resampling mode").Default("interpolated").Enum("sampled", "interpolated")
	fillFlag = kingpin.Flag("fill", "Color brought in at the boundary").Default("white").Enum("white", "black")
	show     = kingpin.Flag("show", "Preview the result in the terminal (iTerm only)").Bool()
	input    = kingpin.Arg("input", "Input PNG; omit to warp a generated test card").String()
	output   = kingpin.Arg("output", "Output PNG").Default("warped.png").String()
)

func main() {
	kingpin.Parse()

	srcQuad, err := parseQuad(*fromFlag)
	if err != nil {
		kingpin.Fatalf("bad --from quad: %v", err)
	}
	dstQuad, err := parseQuad(*toFlag)
	if err != nil {
		kingpin.Fatalf("bad --to quad: %v", err)
	}

	var img image.Image
	if *input == "" {
		img = testCard(256, 256)
	} else if img, err = loadPNG(*input); err != nil {
		kingpin.Fatalf("reading %s: %v", *input, err)
	}

	src, err := raster.FromImage(img)
	if err != nil {
		kingpin.Fatalf("converting input: %v", err)
	}

	fill := keystone.BringInWhite
	if *fillFlag == "black" {
		fill = keystone.BringInBlack
	}

	var dst *raster.Raster
	if *mode == "sampled" {
		dst, err = keystone.TransformSampled(src, srcQuad, dstQuad, fill)
	} else {
		dst, err = keystone.TransformInterpolated(src, srcQuad, dstQuad, fill)
	}
	if err != nil {
		kingpin.Fatalf("transform: %v", err)
	}

	out, err := dst.ToImage()
	if err != nil {
		kingpin.Fatalf("converting output: %v", err)
	}
	if err := savePNG(*output, out); err != nil {
		kingpin.Fatalf("writing %s: %v", *output, err)
	}
	fmt.Printf("Wrote %s (%dx%d, %s, fill %s)\n",
		*output, dst.Width(), dst.Height(), *mode, *fillFlag)

	if *show {
		preview(out)
	}
}

func parseQuad(s string) (keystone.Quad, error) {
	var quad keystone.Quad
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return quad, fmt.Errorf("want 4 points, got %d", len(fields))
	}
	for i, field := range fields {
		parts := strings.Split(field, ",")
		if len(parts) != 2 {
			return quad, fmt.Errorf("point %q is not x,y", field)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return quad, fmt.Errorf("point %q: %v", field, err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return quad, fmt.Errorf("point %q: %v", field, err)
		}
		quad[i] = keystone.Point{X: x, Y: y}
	}
	return quad, nil
}

// testCard draws a grid with a circle and one marked corner, which
// makes keystone distortion obvious at a glance.
func testCard(width, height int) image.Image {
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()

	c.SetRGB(0.7, 0.7, 0.7)
	c.SetLineWidth(1)
	for x := 0; x < width; x += 16 {
		c.DrawLine(float64(x), 0, float64(x), float64(height))
	}
	for y := 0; y < height; y += 16 {
		c.DrawLine(0, float64(y), float64(width), float64(y))
	}
	c.Stroke()

	c.SetRGB(0, 0, 0)
	c.SetLineWidth(3)
	c.DrawCircle(float64(width)/2, float64(height)/2, float64(width)/3)
	c.Stroke()

	c.SetRGB(1, 0, 0)
	c.DrawRectangle(4, 4, 24, 24)
	c.Fill()

	return c.Image()
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// preview scales the image down to terminal-friendly size and cats it.
func preview(img image.Image) {
	const maxWidth = 192
	bounds := img.Bounds()
	if bounds.Dx() > maxWidth {
		h := bounds.Dy() * maxWidth / bounds.Dx()
		small := image.NewNRGBA(image.Rect(0, 0, maxWidth, h))
		draw.ApproxBiLinear.Scale(small, small.Bounds(), img, bounds, draw.Over, nil)
		img = small
	}
	if err := savePNG("/tmp/keystone_preview.png", img); err != nil {
		fmt.Fprintln(os.Stderr, "preview:", err)
		return
	}
	imgcat.CatFile("/tmp/keystone_preview.png", os.Stdout)
}
