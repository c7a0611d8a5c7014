// github.com/tobler/bicart - distance cartograms via bidimensional regression
// Copyright (C) 2026  The bicart authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/tobler/bicart"
	"github.com/tobler/bicart/geoio"
)

var (
	sourceFile = flag.String("source", "", "GeoJSON point layer: source positions")
	imageFile  = flag.String("image", "", "GeoJSON point layer: image (displaced) positions")
	layerFile  = flag.String("layer", "", "GeoJSON layer to warp through the fitted field")
	outFile    = flag.String("out", "", "destination for the warped GeoJSON layer")
	precision  = flag.Float64("precision", 1.0, "lattice resolution divisor")
	iterations = flag.Int("iterations", 0, "outer solver passes (0: derive from point count)")
	verbose    = flag.Bool("v", false, "print fit-quality metrics")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cartogram: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *sourceFile == "" || *imageFile == "" || *layerFile == "" || *outFile == "" {
		return fmt.Errorf("-source, -image, -layer and -out are all required")
	}

	source, err := readPoints(*sourceFile)
	if err != nil {
		return err
	}
	image, err := readPoints(*imageFile)
	if err != nil {
		return err
	}

	nIter := *iterations
	if nIter <= 0 {
		nIter = cartogram.DefaultIterations(len(source))
	}

	g, err := cartogram.New(source, image, *precision, nIter, nil)
	if err != nil {
		return fmt.Errorf("fitting grid: %w", err)
	}

	if *verbose {
		printMetrics(g)
	}

	body, err := os.ReadFile(*layerFile)
	if err != nil {
		return err
	}
	geoms, props, err := geoio.ReadLayer(body)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *layerFile, err)
	}

	warped, err := g.InterpolateLayer(geoms)
	if err != nil {
		return fmt.Errorf("warping %s: %w", *layerFile, err)
	}

	out, err := geoio.WriteLayer(warped, props)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return os.WriteFile(*outFile, out, 0o644)
}

func readPoints(fname string) ([]cartogram.Coord, error) {
	body, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	points, err := geoio.ReadPoints(body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	return points, nil
}

func printMetrics(g *cartogram.Grid) {
	width, height := g.GridDimensions()
	fmt.Printf("grid: %d x %d nodes, resolution %.6g\n", width, height, g.Resolution())
	fmt.Printf("MAE: %.6g  R^2: %.6g\n", g.Mae(), g.RSquared())

	rmse := g.RMSEInterpImage()
	fmt.Printf("RMSE (interp vs image):  %.6g  (x %.6g, y %.6g)\n", rmse.RMSE, rmse.RMSEX, rmse.RMSEY)

	rmseSrc := g.RMSEInterpSource()
	fmt.Printf("RMSE (interp vs source): %.6g  (x %.6g, y %.6g)\n", rmseSrc.RMSE, rmseSrc.RMSEX, rmseSrc.RMSEY)

	fmt.Printf("average deformation strength: %.6g\n", g.DeformationStrength())

	// Report every node's strength in row-major (i, j) order, sorted so
	// repeated runs diff cleanly.
	strengths := make(map[[2]int]float64)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			strengths[[2]int{i, j}] = g.NodeDeformationStrength(i, j)
		}
	}
	keys := maps.Keys(strengths)
	slices.SortFunc(keys, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
	if *verbose && len(keys) > 0 {
		fmt.Println("per-node deformation strength:")
		for _, k := range keys {
			fmt.Printf("  (%d,%d): %.6g\n", k[0], k[1], strengths[k])
		}
	}
}
