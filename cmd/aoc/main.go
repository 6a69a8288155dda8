package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/aoc-solvers/internal/models"
	"github.com/povarna/aoc-solvers/internal/setup"
	"github.com/povarna/aoc-solvers/internal/setup/logger"
	"github.com/povarna/aoc-solvers/internal/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	day := flag.Int("day", 0, "Puzzle day (1-7)")
	part := flag.Int("part", models.PartBoth, "Puzzle part: 1, 2 or 0 for both")
	configPath := flag.String("config", "", "Puzzle rules YAML (defaults to PUZZLES_CONFIG_PATH or configs/puzzles.yaml)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: aoc -day N [-part P] [-config path] <input file | - | literal lines...>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *day == 0 || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg := setup.LoadConfig()
	if *configPath != "" {
		cfg.PuzzlesConfigPath = *configPath
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.NewConsole(cfg.LogLevel)
	appLogger := log.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, &appLogger, *day, *part, flag.Args()); err != nil {
		log.Error().Err(err).Int("day", *day).Int("part", *part).Msg("Unable to solve puzzle")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *setup.Config, appLogger *zerolog.Logger, day, part int, args []string) error {
	deps, err := setup.Wire(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to wire dependencies: %w", err)
	}
	defer deps.Close()

	lines, err := loadInput(args)
	if err != nil {
		return err
	}

	result, err := deps.Executor.Execute(ctx, models.SolveRequest{
		RequestID: "cli",
		Day:       day,
		Part:      part,
		Lines:     lines,
	})
	if err != nil {
		return err
	}

	for _, p := range result.Parts {
		fmt.Println(p.Line(result.Day))
	}
	return nil
}

// loadInput reads the file named by the first argument when it exists ("-"
// is stdin); otherwise the arguments themselves are the input lines.
func loadInput(args []string) ([]string, error) {
	if args[0] == "-" {
		return utils.ReadLines(os.Stdin)
	}

	info, err := os.Stat(args[0])
	if err != nil || info.IsDir() {
		return args, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log.Debug().Str("file", args[0]).Msg("Reading input file")
	return utils.ReadLines(f)
}
