package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/convexhull/quickhull"
)

// Demo of hull computation. Input on stdin should be newline separated
// points in the form "x y". Prints the hull vertices (position and
// coordinates) in counterclockwise order, and can optionally render the
// point cloud with its hull to a PNG.

var (
	parallel   = kingpin.Flag("parallel", "Use the fork-join variant of the algorithm.").Bool()
	pngPath    = kingpin.Flag("png", "Render the points and hull to this PNG file.").String()
	scale      = kingpin.Flag("scale", "Pixels per input unit when rendering.").Default("10").Float64()
	cpuProfile = kingpin.Flag("cpuprofile", "Write a CPU profile (for benchmarking large inputs).").Bool()
)

func main() {
	kingpin.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	points, err := readPoints(os.Stdin)
	if err != nil {
		log.Fatalf("reading points: %v", err)
	}
	fmt.Printf("Read %d points\n", len(points))

	src := quickhull.Points(points)
	var hull []quickhull.Index
	if *parallel {
		hull = quickhull.ConvexHullParallel(src)
	} else {
		hull = quickhull.ConvexHull(src)
	}

	fmt.Printf("Hull has %d vertices:\n", len(hull))
	for _, ix := range hull {
		pt := src.Get(ix)
		fmt.Printf("  #%d (%g, %g)\n", ix.Pos(), pt.X, pt.Y)
	}

	if *pngPath != "" {
		img := quickhull.Render(src, hull, *scale)
		if err := gg.SavePNG(*pngPath, img); err != nil {
			log.Fatalf("saving %s: %v", *pngPath, err)
		}
		fmt.Printf("Wrote %s\n", *pngPath)
	}
}

func readPoints(in *os.File) ([]quickhull.Point, error) {
	points := []quickhull.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", len(points)+1)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (quickhull.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return quickhull.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return quickhull.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return quickhull.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return quickhull.Point{X: x, Y: y}, nil
}
