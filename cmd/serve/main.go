// Command serve loads a persisted boundary index and exposes it over
// HTTP.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osmtools/adminlookup/internal/bulkio"
	"github.com/osmtools/adminlookup/internal/config"
	"github.com/osmtools/adminlookup/internal/logging"
	"github.com/osmtools/adminlookup/internal/query"
	"github.com/osmtools/adminlookup/internal/rtreeindex"
	"github.com/osmtools/adminlookup/internal/server"
	"github.com/osmtools/adminlookup/internal/workerpool"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var v = config.NewViper()

var rootCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve administrative boundary lookups over HTTP",
	RunE:  runServe,
}

func init() {
	// Persistent so bulklookup inherits them too.
	rootCmd.PersistentFlags().String("bin", "", "path to the persisted index (required unless RTREE_BIN is set)")
	rootCmd.PersistentFlags().Bool("parallel", false, "fan out per-line bulk work across the worker pool")
	rootCmd.Flags().Uint16("port", 8080, "HTTP listen port")

	_ = v.BindPFlag("bin", rootCmd.PersistentFlags().Lookup("bin"))
	_ = v.BindPFlag("parallel", rootCmd.PersistentFlags().Lookup("parallel"))
	_ = v.BindPFlag("port", rootCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(bulkLookupCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	idx, err := loadIndex(cfg.BinPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(false)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	pool := workerpool.New(0)
	srv := server.New(idx, pool, logger, cfg.Parallel)

	logger.Sugar().Infof("serving %d boundaries on :%d", idx.Len(), cfg.Port)
	return srv.Run(fmt.Sprintf(":%d", cfg.Port))
}

func loadIndex(path string) (*rtreeindex.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	defer f.Close()

	idx, err := rtreeindex.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}
	return idx, nil
}

var bulkLookupCmd = &cobra.Command{
	Use:   "bulklookup",
	Short: "Resolve id,lng,lat lines read from stdin without starting the HTTP server",
	RunE:  runBulkLookup,
}

func runBulkLookup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	idx, err := loadIndex(cfg.BinPath)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for scanner.Scan() {
		line, err := bulkio.ParseLine(scanner.Text())
		if err != nil {
			return err
		}
		matches := query.Locate(idx, line.Point)
		fmt.Fprintf(out, "%s", line.ID)
		for _, m := range matches {
			fmt.Fprintf(out, ",%s(%d)", m.Name, m.AdminLevel)
		}
		fmt.Fprintln(out)
	}
	return scanner.Err()
}
