package main

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"github.com/dodgebc/weiqi-agents/player"
	"github.com/dodgebc/weiqi-agents/weiqi"
)

// GameRecord is one finished game as written to the records stream
type GameRecord struct {
	ID       string     `json:"id"`
	Black    string     `json:"black"`
	White    string     `json:"white"`
	Size     int        `json:"size"`
	Komi     float64    `json:"komi"`
	Moves    []string   `json:"moves"`
	Winner   string     `json:"winner"`
	Score    string     `json:"score"`
	Forfeit  string     `json:"forfeit,omitempty"`
	Capped   bool       `json:"capped,omitempty"`
	Thinking [2]float64 `json:"thinking"` // seconds spent by black and white
}

// referee owns the authoritative board of one game
type referee struct {
	opts     []weiqi.Option
	maxMoves int
	show     io.Writer
}

// play runs one game to the end. A player that errors or names an illegal
// move loses on the spot. Only a failure of the referee itself, or ctx
// ending, is returned as an error.
func (r *referee) play(ctx context.Context, black, white player.Player) (*GameRecord, error) {
	g, err := weiqi.NewGame(r.opts...)
	if err != nil {
		return nil, err
	}
	if err := black.NewGame(weiqi.Black); err != nil {
		return nil, errors.Wrapf(err, "new game for %s", black.Name())
	}
	if err := white.NewGame(weiqi.White); err != nil {
		return nil, errors.Wrapf(err, "new game for %s", white.Name())
	}

	rec := &GameRecord{
		ID:    xid.New().String(),
		Black: black.Name(),
		White: white.Name(),
		Size:  g.Size(),
		Komi:  g.Komi(),
		Moves: []string{},
	}
	logger := log.With().Str("game", rec.ID).Logger()
	seats := map[weiqi.Color]player.Player{weiqi.Black: black, weiqi.White: white}

	forfeit := weiqi.Empty
	for !g.IsGameOver() {
		if len(rec.Moves) >= r.maxMoves {
			rec.Capped = true
			break
		}
		color := g.Turn()
		mover, other := seats[color], seats[-color]

		start := time.Now()
		move, err := mover.GenMove(ctx)
		rec.Thinking[colorSlot(color)] += time.Since(start).Seconds()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if err != nil {
			rec.Forfeit = err.Error()
			forfeit = color
			break
		}

		m, err := player.ParseMove(move, g.Size())
		if err == nil {
			err = g.Push(m)
		}
		if err != nil {
			rec.Forfeit = errors.Wrapf(err, "%s played %q", mover.Name(), move).Error()
			forfeit = color
			break
		}
		rec.Moves = append(rec.Moves, player.FormatMove(m, g.Size()))
		logger.Debug().Str("player", mover.Name()).Str("color", color.String()).Str("move", move).Msg("move")

		if err := other.PlayMove(move); err != nil {
			rec.Forfeit = errors.Wrapf(err, "%s rejected %q", other.Name(), move).Error()
			forfeit = -color
			break
		}
		if r.show != nil {
			render(r.show, g)
		}
	}

	winner := g.Result()
	if forfeit != weiqi.Empty {
		winner = -forfeit
		logger.Warn().Str("color", forfeit.String()).Str("reason", rec.Forfeit).Msg("forfeit")
	}
	rec.Winner = winnerName(winner)
	rec.Score = g.FinalGoScore()
	black.EndGame(winner)
	white.EndGame(winner)

	logger.Info().
		Str("black", rec.Black).
		Str("white", rec.White).
		Int("moves", len(rec.Moves)).
		Str("winner", rec.Winner).
		Str("score", rec.Score).
		Msg("game-finished")
	return rec, nil
}

func colorSlot(c weiqi.Color) int {
	if c == weiqi.Black {
		return 0
	}
	return 1
}

func winnerName(c weiqi.Color) string {
	if c == weiqi.Draw {
		return "draw"
	}
	return c.String()
}
