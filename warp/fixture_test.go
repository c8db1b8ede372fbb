package warp

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into quads. This is not a full (or
// even correct) svg parser. It parses the SVG, finds whatever the first
// polygon is, and requires it to have exactly four points. If anything
// goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func LoadQuadFixture(name string) Quad {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Want exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	pointStrings := strings.Fields(pointString)
	if len(pointStrings) != 4 {
		log.Fatalf("Fixture %q has %d points; a quad needs 4", name, len(pointStrings))
	}

	var quad Quad
	for i, pointString := range pointStrings {
		parts := strings.Split(pointString, ",")
		if len(parts) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", parts[1], err)
		}
		quad[i] = Point{X: x, Y: y}
	}
	return quad
}
