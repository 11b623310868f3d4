// Command gomatch referees games between two players and reports the score.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	var a arguments
	if err := a.parse(flag.CommandLine, os.Args[1:]); err != nil {
		os.Exit(2)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(a.logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if err := a.check(); err != nil {
		log.Fatal().Err(err).Msg("bad arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, &a, os.Stdout, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("match stopped")
	}
}

// run plays the whole match, a.workers games at a time
func run(ctx context.Context, a *arguments, stdout, stderr io.Writer) error {
	var records *recordWriter
	if a.records {
		records = newRecordWriter(stdout, a.gzip, a.workers)
	}

	var show io.Writer
	if a.show {
		show = stderr
	}
	ref := &referee{opts: a.gameOptions(), maxMoves: a.maxMoves, show: show}
	progress := NewProgressUpdate(stderr, a.black+" vs "+a.white)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.workers)
	for i := 0; i < a.games; i++ {
		i := i
		eg.Go(func() error {
			rec, tally, err := playOne(ctx, a, ref, i)
			if err != nil {
				return err
			}
			progress.Update(tally)
			if records != nil {
				return records.Write(rec)
			}
			return nil
		})
	}
	err := eg.Wait()
	progress.Close()
	if records != nil {
		if cerr := records.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// playOne sets up game i. The first player takes black in even games.
func playOne(ctx context.Context, a *arguments, ref *referee, i int) (*GameRecord, string, error) {
	first, err := newSeat(ctx, a, a.black, a.seed+int64(2*i))
	if err != nil {
		return nil, "", err
	}
	defer first.close()
	second, err := newSeat(ctx, a, a.white, a.seed+int64(2*i+1))
	if err != nil {
		return nil, "", err
	}
	defer second.close()

	black, white := first, second
	if i%2 == 1 {
		black, white = second, first
	}
	rec, err := ref.play(ctx, black, white)
	if err != nil {
		return nil, "", err
	}
	return rec, outcome(rec, i%2 == 1), nil
}

// outcome names the tally a game counts for
func outcome(rec *GameRecord, swapped bool) string {
	switch {
	case rec.Winner == "draw":
		return "draws"
	case (rec.Winner == "black") != swapped:
		return "first"
	}
	return "second"
}
