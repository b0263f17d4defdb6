package main

import (
	"context"
	"fmt"
	"go/format"
	"os"
	"time"

	"github.com/delaneyj/lazysignal/cmd/codegen/templates"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outKey               = "out"
	debugKey             = "debug"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed multi-source helpers for lazy signals",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of typed sources to generate helpers for",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "File to write the generated code to",
				Value: "lazy/derive_gen.go",
			},
			&cli.BoolFlag{
				Name:  debugKey,
				Usage: "Log at debug level",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("codegen failed")
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool(debugKey) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	start := time.Now()
	log.Info().Msg("codegen for lazy started")
	defer func() {
		log.Info().Dur("took", time.Since(start)).Msg("codegen for lazy finished")
	}()

	count := int(cmd.Uint(genericParamCountKey))
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}
	out := cmd.String(outKey)
	log.Debug().Int("count", count).Str("out", out).Msg("rendering")

	contents, err := format.Source([]byte(templates.DeriveGen(count)))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	return nil
}
