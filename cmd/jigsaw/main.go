// Command jigsaw reassembles a scrambled tile image and reports the corner
// product (A) and the pattern roughness (B), or generates a solvable puzzle.
//
//	jigsaw -input tiles.txt
//	jigsaw -generate 12 -seed 7 -monsters 4 > tiles.txt
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/jigsaw"
	"github.com/katalvlaran/jigsaw/builder"
	"github.com/katalvlaran/jigsaw/internal/config"
	"github.com/katalvlaran/jigsaw/internal/logger"
	"github.com/katalvlaran/jigsaw/internal/puzzleio"
	"github.com/katalvlaran/jigsaw/mosaic"
	"github.com/katalvlaran/jigsaw/tile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "jigsaw: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("jigsaw", flag.ContinueOnError)
	configPath := fs.String("config", "jigsaw.yaml", "Path to the YAML configuration")
	input := fs.String("input", "", "Tile file, '-' for stdin")
	patternPath := fs.String("pattern", "", "Pattern file (default: sea monster)")
	maxStates := fs.Int("max-states", 0, "Bound on search states per stage (0 = automatic)")
	logLevel := fs.String("log-level", "", "DEBUG, INFO, WARN or ERROR")
	generate := fs.Int("generate", 0, "Write a generated N×N puzzle instead of solving")
	seed := fs.Int64("seed", 1, "Generator seed")
	size := fs.Int("size", 10, "Generated tile side")
	monsters := fs.Int("monsters", 0, "Pattern copies painted into a generated puzzle")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *generate < 0 {
		return fmt.Errorf("%w: -generate=%d (must be ≥ 0)", config.ErrInvalid, *generate)
	}
	if *monsters < 0 {
		return fmt.Errorf("%w: -monsters=%d (must be ≥ 0)", config.ErrInvalid, *monsters)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	// flags given on the command line win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "pattern":
			cfg.Pattern = *patternPath
		case "max-states":
			cfg.Search.MaxStates = *maxStates
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})
	if err = cfg.Validate(); err != nil {
		return err
	}

	if err = logger.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logger.Close()

	pattern, err := loadPattern(cfg)
	if err != nil {
		return err
	}
	if *generate > 0 {
		return generatePuzzle(stdout, *generate, *size, *seed, pattern, *monsters)
	}

	return solve(ctx, cfg, stdin, stdout, pattern)
}

// loadPattern reads cfg.Pattern, falling back to the sea monster.
func loadPattern(cfg *config.Config) (*mosaic.Pattern, error) {
	if cfg.Pattern == "" {
		return mosaic.Monster(), nil
	}
	f, err := os.Open(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := puzzleio.ParsePattern(f, cfg.FilledSymbol())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Pattern, err)
	}

	return mosaic.NewPattern(g, tile.Filled)
}

func solve(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer, pattern *mosaic.Pattern) error {
	log := logger.Logger()

	var r io.Reader = stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	tiles, err := puzzleio.ParseTiles(r, puzzleio.Symbols{Filled: cfg.FilledSymbol(), Empty: cfg.EmptySymbol()})
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	log.Info("tiles loaded", "input", cfg.Input, "count", len(tiles))

	res, err := jigsaw.Reconstruct(ctx, tiles, pattern,
		jigsaw.WithMaxStates(cfg.Search.MaxStates),
		jigsaw.WithLogger(log),
	)
	if err != nil {
		return err
	}
	log.Info("reconstructed", "side", res.Side, "matches", res.Matches, "orientation", res.Orientation.String())

	_, err = fmt.Fprintf(stdout, "A: %d\nB: %d\n", res.CornerProduct, res.Roughness)
	return err
}

func generatePuzzle(stdout io.Writer, side, tileSide int, seed int64, pattern *mosaic.Pattern, copies int) error {
	opts := []builder.Option{builder.WithSeed(seed)}
	if copies > 0 {
		opts = append(opts, builder.WithPattern(pattern.Grid(), copies))
	}
	p, err := builder.Generate(side, tileSide, opts...)
	if err != nil {
		return err
	}
	logger.Logger().Info("generated", "side", p.Side, "tile_side", p.TileSide, "stamped", p.Stamped,
		"filled", p.Image.Count(tile.Filled))

	return puzzleio.WriteTiles(stdout, p.Tiles)
}
