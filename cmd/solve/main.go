package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/bot"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/notation"
	"github.com/domino14/reversi/search"
)

type suiteEntry struct {
	Name     string   `yaml:"name"`
	Position string   `yaml:"position"`
	Seconds  int      `yaml:"seconds"`
	Expect   []string `yaml:"expect"`
}

type suiteResult struct {
	Entry    suiteEntry
	Decision search.Decision
	Err      error
}

func (r suiteResult) Hit() bool {
	if r.Err != nil {
		return false
	}
	if len(r.Entry.Expect) == 0 {
		return true
	}
	return lo.Contains(r.Entry.Expect, r.Decision.Move.String())
}

func loadSuite(r io.Reader) ([]suiteEntry, error) {
	var entries []suiteEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Expect = lo.Map(entries[i].Expect, func(m string, _ int) string {
			return strings.ToLower(m)
		})
	}
	return entries, nil
}

// mover picks a move for one suite entry.
type mover func(ctx context.Context, e suiteEntry) (search.Decision, error)

func localMover(s *search.Solver) mover {
	return func(ctx context.Context, e suiteEntry) (search.Decision, error) {
		b, side, err := notation.Parse(e.Position)
		if err != nil {
			return search.Decision{}, fmt.Errorf("%s: %w", e.Name, err)
		}
		return s.Solve(ctx, b, side, e.Seconds)
	}
}

// remoteMover asks a running bot over NATS.
func remoteMover(c *bot.Client) mover {
	return func(ctx context.Context, e suiteEntry) (search.Decision, error) {
		resp, err := c.RequestMove(ctx, bot.MoveRequest{
			GameID:           e.Name,
			Position:         e.Position,
			SecondsRemaining: e.Seconds,
		})
		if err != nil {
			return search.Decision{}, fmt.Errorf("%s: %w", e.Name, err)
		}
		return search.Decision{
			Move:  board.Pos(resp.Row, resp.Col),
			Score: resp.Score,
			Depth: resp.Depth,
		}, nil
	}
}

func runSuite(ctx context.Context, m mover, entries []suiteEntry) []suiteResult {
	return lo.Map(entries, func(e suiteEntry, _ int) suiteResult {
		dec, err := m(ctx, e)
		return suiteResult{Entry: e, Decision: dec, Err: err}
	})
}

func report(w io.Writer, results []suiteResult) {
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(w, "%-20s error: %v\n", r.Entry.Name, r.Err)
		case r.Hit():
			fmt.Fprintf(w, "%-20s ok    %v (%d) depth %d\n", r.Entry.Name, r.Decision.Move, r.Decision.Score, r.Decision.Depth)
		default:
			fmt.Fprintf(w, "%-20s MISS  %v (%d) depth %d, wanted %s\n", r.Entry.Name, r.Decision.Move,
				r.Decision.Score, r.Decision.Depth, strings.Join(r.Entry.Expect, " "))
		}
	}
	fmt.Fprintf(w, "mean depth %.1f\n", lo.MeanBy(results, func(r suiteResult) float64 {
		return float64(r.Decision.Depth)
	}))
	hits := lo.CountBy(results, func(r suiteResult) bool { return r.Hit() })
	fmt.Fprintf(w, "%d/%d\n", hits, len(results))
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("solve", pflag.ContinueOnError)
	position := fs.String("position", notation.Format(board.Initial(), board.Black), "position to solve")
	seconds := fs.Int("seconds", 60, "whole seconds left on the clock")
	depth := fs.Int("depth", 0, "search exactly this deep, ignoring the clock")
	suite := fs.String("suite", "", "yaml file of positions to solve")
	remote := fs.Bool("remote", false, "send positions to a running bot over NATS")

	cfg := &config.Config{}
	if err := cfg.LoadFlags(fs, args); err != nil {
		return err
	}
	cfg.ApplyLogLevel()
	s := search.NewSolver(cfg)

	m := localMover(s)
	if *remote {
		if *depth > 0 {
			return errors.New("depth-limited searches only run locally")
		}
		nc, err := nats.Connect(cfg.GetString(config.ConfigNatsURL))
		if err != nil {
			return err
		}
		defer nc.Close()
		m = remoteMover(bot.NewClient(nc, cfg.GetString(config.ConfigBotSubject)))
	}

	if *suite != "" {
		f, err := os.Open(*suite)
		if err != nil {
			return err
		}
		defer f.Close()
		entries, err := loadSuite(f)
		if err != nil {
			return err
		}
		report(out, runSuite(ctx, m, entries))
		return nil
	}

	if *depth > 0 {
		b, side, err := notation.Parse(*position)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s.SearchDepth(ctx, b, side, *depth))
		return nil
	}
	dec, err := m(ctx, suiteEntry{Name: "position", Position: *position, Seconds: *seconds})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%v (%d) depth %d, %d nodes in %v\n", dec.Move, dec.Score, dec.Depth, dec.Nodes, dec.Elapsed)
	return nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("solve-failed")
	}
}
