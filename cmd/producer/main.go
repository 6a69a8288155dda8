package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/aoc-solvers/internal/models"
	red "github.com/povarna/aoc-solvers/internal/redis"
	"github.com/povarna/aoc-solvers/internal/setup"
	"github.com/povarna/aoc-solvers/internal/stream/redis"
	"github.com/povarna/aoc-solvers/internal/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	data := flag.String("d", "", "Inline JSON SolveRequest")
	day := flag.Int("day", 0, "Puzzle day, used with -input")
	part := flag.Int("part", models.PartBoth, "Puzzle part, used with -input")
	input := flag.String("input", "", "Puzzle input file, used with -day")
	stream := flag.String("stream", redis.DefaultRequestStream, "Stream name")
	flag.Parse()

	if *data == "" && (*day == 0 || *input == "") {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>' | producer -day N -input <file> [-part P]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	req, err := buildRequest(*data, *day, *part, *input)
	if err != nil {
		log.Error().Err(err).Msg("invalid request")
		os.Exit(1)
	}

	if err := run(req, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func buildRequest(data string, day, part int, input string) (models.SolveRequest, error) {
	var req models.SolveRequest
	if data != "" {
		err := json.Unmarshal([]byte(data), &req)
		return req, err
	}

	f, err := os.Open(input)
	if err != nil {
		return req, err
	}
	defer f.Close()

	lines, err := utils.ReadLines(f)
	if err != nil {
		return req, err
	}

	return models.SolveRequest{
		RequestID: fmt.Sprintf("producer-%d", time.Now().UnixNano()),
		Day:       day,
		Part:      part,
		Lines:     lines,
	}, nil
}

func run(req models.SolveRequest, stream string) error {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}
	cfg := setup.LoadConfig()

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 3, &log.Logger)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := redis.Publish(ctx, client, stream, req)
	if err != nil {
		return err
	}

	log.Info().Str("stream", stream).Str("id", id).Str("request_id", req.RequestID).Int("day", req.Day).Msg("Published successfully!")
	return nil
}
