// Command build-index reconstructs administrative boundaries from an
// OSM PBF extract and persists an R-tree index over them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osmtools/adminlookup/internal/boundary"
	"github.com/osmtools/adminlookup/internal/rtreeindex"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	pbfPath    string
	binPath    string
	geojsonOut string
	levels     []uint
)

var rootCmd = &cobra.Command{
	Use:   "build-index",
	Short: "Build an R-tree index of administrative boundaries from an OSM PBF extract",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&pbfPath, "pbf", "", "path to the input OSM PBF extract (required)")
	rootCmd.Flags().StringVar(&binPath, "bin", "", "path to write the persisted index (required)")
	rootCmd.Flags().UintSliceVar(&levels, "admin-level", []uint{4, 6, 8, 9, 10}, "admin levels to index")
	rootCmd.Flags().StringVar(&geojsonOut, "geojson-out", "", "optional path to write a debug GeoJSON FeatureCollection")

	_ = rootCmd.MarkFlagRequired("pbf")
	_ = rootCmd.MarkFlagRequired("bin")
}

func run(_ *cobra.Command, _ []string) error {
	adminLevels := make([]uint8, len(levels))
	for i, l := range levels {
		adminLevels[i] = uint8(l)
	}

	boundaries, err := boundary.BuildFromPBF(pbfPath, adminLevels)
	if err != nil {
		return fmt.Errorf("building boundaries: %w", err)
	}
	fmt.Fprintf(os.Stderr, "reconstructed %d boundaries\n", len(boundaries))

	idx := rtreeindex.Build(boundaries)

	out, err := os.Create(binPath)
	if err != nil {
		return fmt.Errorf("creating index file: %w", err)
	}
	defer out.Close()

	if err := rtreeindex.Save(out, idx); err != nil {
		return fmt.Errorf("saving index: %w", err)
	}

	if geojsonOut != "" {
		gf, err := os.Create(geojsonOut)
		if err != nil {
			return fmt.Errorf("creating geojson file: %w", err)
		}
		defer gf.Close()
		if err := boundary.WriteFeatureCollection(gf, boundaries); err != nil {
			return fmt.Errorf("writing geojson: %w", err)
		}
	}

	return nil
}
