package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/dodgebc/weiqi-agents/weiqi"
)

// playerKinds are the built-in strategies, anything starting with "gtp:" runs
// an external engine
var playerKinds = []string{"alphabeta", "minimax", "montecarlo", "random"}

type arguments struct {
	black    string
	white    string
	games    int
	workers  int
	size     int
	komi     float64
	koRule   string
	ko       weiqi.KoRule
	depth    int
	rollouts int
	movetime time.Duration
	maxMoves int
	seed     int64
	records  bool
	gzip     bool
	show     bool
	logLevel string
}

// parse reads flags, with defaults taken from GOMATCH_* environment variables
func (a *arguments) parse(fs *flag.FlagSet, args []string) error {

	// Players
	fs.StringVar(&a.black, "black", envString("GOMATCH_BLACK", "alphabeta"), "first player: "+strings.Join(playerKinds, ", ")+" or gtp:<command>")
	fs.StringVar(&a.white, "white", envString("GOMATCH_WHITE", "random"), "second player, same choices as -black")

	// Match
	fs.IntVar(&a.games, "games", envInt("GOMATCH_GAMES", 1), "number of games, colors alternate")
	fs.IntVar(&a.workers, "workers", envInt("GOMATCH_WORKERS", 1), "games played at the same time")
	fs.IntVar(&a.maxMoves, "maxmoves", envInt("GOMATCH_MAX_MOVES", 400), "moves before a game is stopped and counted")
	fs.Int64Var(&a.seed, "seed", int64(envInt("GOMATCH_SEED", 1)), "seed for random and montecarlo players")

	// Rules
	fs.IntVar(&a.size, "size", envInt("GOMATCH_SIZE", weiqi.DefaultSize), "board size")
	fs.Float64Var(&a.komi, "komi", envFloat("GOMATCH_KOMI", 0), "komi given to white")
	fs.StringVar(&a.koRule, "ko", envString("GOMATCH_KO", "simple"), "ko rule: simple, positional or none")

	// Search budgets
	fs.IntVar(&a.depth, "depth", envInt("GOMATCH_DEPTH", 3), "search depth for alphabeta and minimax")
	fs.IntVar(&a.rollouts, "rollouts", envInt("GOMATCH_ROLLOUTS", 32), "rollouts per candidate for montecarlo")
	fs.DurationVar(&a.movetime, "movetime", envDuration("GOMATCH_MOVETIME", 0), "time per move, 0 for no limit")

	// Output
	fs.BoolVar(&a.records, "records", envBool("GOMATCH_RECORDS", false), "write a JSON line per game to stdout")
	fs.BoolVar(&a.gzip, "gzip", envBool("GOMATCH_GZIP", false), "compress records")
	fs.BoolVar(&a.show, "show", envBool("GOMATCH_SHOW", false), "print the board after every move")
	fs.StringVar(&a.logLevel, "loglevel", envString("GOMATCH_LOG_LEVEL", "info"), "zerolog level")

	// Usage and parse
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: gomatch [options]\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fs.PrintDefaults()
	}
	return fs.Parse(args)
}

func (a *arguments) check() error {
	for _, p := range []string{a.black, a.white} {
		if !validPlayer(p) {
			return errors.Errorf("unknown player %q", p)
		}
	}
	if a.games < 1 {
		return errors.New("games must be at least 1")
	}
	if a.workers < 1 {
		return errors.New("workers must be at least 1")
	}
	if a.maxMoves < 1 {
		return errors.New("maxmoves must be at least 1")
	}
	if a.depth < 1 {
		return errors.New("depth must be at least 1")
	}
	if a.rollouts < 1 {
		return errors.New("rollouts must be at least 1")
	}
	if a.movetime < 0 {
		return errors.New("movetime must not be negative")
	}
	if a.gzip && !a.records {
		return errors.New("gzip needs records")
	}
	ko, err := weiqi.ParseKoRule(a.koRule)
	if err != nil {
		return err
	}
	a.ko = ko
	if _, err := weiqi.NewGame(a.gameOptions()...); err != nil {
		return err
	}
	return nil
}

func (a *arguments) gameOptions() []weiqi.Option {
	return []weiqi.Option{weiqi.WithSize(a.size), weiqi.WithKomi(a.komi), weiqi.WithKoRule(a.ko)}
}

func validPlayer(p string) bool {
	if strings.HasPrefix(p, "gtp:") {
		return len(strings.Fields(strings.TrimPrefix(p, "gtp:"))) > 0
	}
	for _, k := range playerKinds {
		if p == k {
			return true
		}
	}
	return false
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
