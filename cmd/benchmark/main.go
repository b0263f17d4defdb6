package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/lazysignal/lazy"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

const (
	iterationsKey = "iterations"
	profileKey    = "profile"
	debugKey      = "debug"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100, 1_000}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure propagation latency through chains of derived signals",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  iterationsKey,
				Usage: "Updates to time per configuration",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
			},
			&cli.BoolFlag{
				Name:  debugKey,
				Usage: "Log at debug level",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool(debugKey) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(iterationsKey))
	log.Info().Int("iterations", iters).Msg("warming up")

	benchmarkMapChains(iters)
	benchmarkDiamonds(iters)

	return nil
}

func addOne(oldValue int) int {
	return oldValue + 1
}

func pass(int) lazy.Invalidator {
	return nil
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

// benchmarkMapChains times one source write reaching w subscribed chains of h
// Map steps each.
func benchmarkMapChains(iters int) {
	tbl := newTable("Map chains")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := lazy.New(1)
			unsubscribes := make([]lazy.Unsubscriber, 0, w)
			for i := 0; i < w; i++ {
				// Map memoizes by mapper, so each chain needs its own closure
				step := 1
				inc := func(v int) int { return v + step }

				var last lazy.Readable[int] = src
				for j := 0; j < h; j++ {
					last = lazy.Map(last, inc)
				}
				unsubscribes = append(unsubscribes, last.Subscribe(pass))
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Update(addOne)
				tach.AddTime(time.Since(start))
			}

			for _, unsubscribe := range unsubscribes {
				unsubscribe()
			}
			log.Debug().Int("w", w).Int("h", h).Msg("map chains done")
			appendCalc(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach)
		}
	}

	tbl.Render()
}

// benchmarkDiamonds times a write fanning out to w pairs of derived signals
// that are joined again with Derive2.
func benchmarkDiamonds(iters int) {
	tbl := newTable("Derive diamonds")

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		src := lazy.New(1)
		unsubscribes := make([]lazy.Unsubscriber, 0, w)
		for i := 0; i < w; i++ {
			// Derive1 is not memoized, so every pair is its own
			left := lazy.Derive1(src, func(v int) int { return v * 2 })
			right := lazy.Derive1(src, func(v int) int { return v * 3 })
			joined := lazy.Derive2(left, right, func(l, r int) int {
				return l + r
			})
			unsubscribes = append(unsubscribes, joined.Subscribe(pass))
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			src.Update(addOne)
			tach.AddTime(time.Since(start))
		}

		for _, unsubscribe := range unsubscribes {
			unsubscribe()
		}
		appendCalc(tbl, fmt.Sprintf("diamond: %d", w), tach)
	}

	tbl.Render()
}
