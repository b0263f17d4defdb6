package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/lazysignal/lazy"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

const (
	repeatsKey = "repeats"
	debugKey   = "debug"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

type fanoutTestConfig struct {
	name          string  // friendly name for the test, also seeds its random source
	nSources      int     // signals combined by every observer
	nObservers    int     // observers of the record derived from the sources
	churnFraction float64 // fraction of observers that resubscribe on each iteration
	iterations    int64   // source writes per run
}

type results struct {
	count    int64
	starts   int64
	duration time.Duration
}

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_fanout",
		Usage: "Measure fan-out and subscribe churn throughput of lazy signals",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Runs per configuration, the fastest is reported",
				Value: 5,
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

	log.Info().Msg("starting fanout benchmark, please wait...")
	defer log.Info().Msg("finished fanout benchmark")

	cfgs := []fanoutTestConfig{
		{name: "single observer", nSources: 1, nObservers: 1, iterations: 200_000},
		{name: "wide fanout", nSources: 2, nObservers: 1_000, iterations: 2_000},
		{name: "many sources", nSources: 25, nObservers: 10, iterations: 20_000},
		{name: "light churn", nSources: 4, nObservers: 100, churnFraction: 0.05, iterations: 10_000},
		{name: "heavy churn", nSources: 4, nObservers: 100, churnFraction: 0.5, iterations: 2_000},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "nSources", "nObservers", "churn%", "nTimes",
		"time", "notifications", "starts", "updateRate", "title",
	})

	repeats := int(cmd.Uint(repeatsKey))
	if repeats < 1 {
		return fmt.Errorf("repeats must be at least 1, got %d", repeats)
	}

	for _, cfg := range cfgs {
		log.Info().Str("config", cfg.name).Msg("running")

		// run once to warm up
		runFanout(cfg)

		best := results{duration: time.Hour}
		for i := 0; i < repeats; i++ {
			log.Debug().
				Str("config", cfg.name).
				Int("iteration", i+1).
				Int("of", repeats).
				Msg("repeat")

			r := runFanout(cfg)
			if r.duration < best.duration {
				best = r
			}
		}
		if best.count < cfg.iterations {
			return fmt.Errorf("%s: expected at least %d notifications, got %d", cfg.name, cfg.iterations, best.count)
		}

		updateRate := float64(best.count) / (float64(best.duration) / float64(time.Millisecond))

		table.Append([]string{
			cfg.name,
			fmt.Sprint(cfg.nSources),
			fmt.Sprint(cfg.nObservers),
			fmt.Sprint(100 * cfg.churnFraction),
			humanize.Comma(cfg.iterations),
			fmt.Sprint(best.duration),
			humanize.Comma(best.count),
			humanize.Comma(best.starts),
			humanize.Comma(int64(updateRate)),
			makeTitle(cfg),
		})
	}
	table.Render()

	return nil
}

func makeTitle(cfg fanoutTestConfig) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("%d observers of %d sources", cfg.nObservers, cfg.nSources))
	if cfg.churnFraction > 0 {
		sb.WriteString(fmt.Sprintf(" churn %0.2f%%", 100*cfg.churnFraction))
	}
	return sb.String()
}

// runFanout writes random sources while observers watch all of them through a
// record derive. Churning observers unsubscribe and subscribe again, which on
// the last observer drives the record through stop and start.
func runFanout(cfg fanoutTestConfig) results {
	rnd := rand.New(rand.NewSource(int64(xxhash.Sum64String(cfg.name) & 0x7fffffffffffffff)))

	sources := make(lazy.Sources, cfg.nSources)
	writable := make([]*lazy.Signal[int], cfg.nSources)
	for i := range writable {
		writable[i] = lazy.New(0)
		sources[fmt.Sprintf("s%d", i)] = writable[i]
	}

	var r results
	record := lazy.DeriveRecord(sources)
	record.SubscribeStartSoon(func(*lazy.Handle[lazy.Record]) lazy.Stopper {
		r.starts++
		return nil
	})

	observe := func(lazy.Record) lazy.Invalidator {
		r.count++
		return nil
	}
	unsubscribes := make([]lazy.Unsubscriber, cfg.nObservers)
	for i := range unsubscribes {
		unsubscribes[i] = record.SubscribeSoon(observe)
	}

	start := time.Now()
	for i := int64(0); i < cfg.iterations; i++ {
		writable[rnd.Intn(cfg.nSources)].Update(func(v int) int {
			return v + 1 + rnd.Intn(3)
		})
		for j := range unsubscribes {
			if rnd.Float64() < cfg.churnFraction {
				unsubscribes[j]()
				unsubscribes[j] = record.SubscribeSoon(observe)
			}
		}
	}
	r.duration = time.Since(start)

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}
	record.Destroy()

	return r
}
