package gtp

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/dodgebc/weiqi-agents/weiqi"
)

// Engine is the part of the protocol a player needs
type Engine interface {
	BoardSize(n int) error
	ClearBoard() error
	Komi(komi float64) error
	Play(c weiqi.Color, vertex string) error
	GenMove(c weiqi.Color) (string, error)
}

var _ Engine = (*Client)(nil)

func (c *Client) Name() (string, error) {
	return c.Query("name")
}

func (c *Client) Version() (string, error) {
	return c.Query("version")
}

func (c *Client) BoardSize(n int) error {
	_, err := c.Query("boardsize", strconv.Itoa(n))
	return err
}

func (c *Client) ClearBoard() error {
	_, err := c.Query("clear_board")
	return err
}

func (c *Client) Komi(komi float64) error {
	_, err := c.Query("komi", strconv.FormatFloat(komi, 'f', -1, 64))
	return err
}

// Play tells the engine about a move, vertex in GTP syntax
func (c *Client) Play(color weiqi.Color, vertex string) error {
	if color != weiqi.Black && color != weiqi.White {
		return errors.Errorf("gtp: play for %s", color)
	}
	_, err := c.Query("play", color.String(), vertex)
	return err
}

// GenMove asks the engine to move and returns the vertex it played
func (c *Client) GenMove(color weiqi.Color) (string, error) {
	if color != weiqi.Black && color != weiqi.White {
		return "", errors.Errorf("gtp: genmove for %s", color)
	}
	v, err := c.Query("genmove", color.String())
	return strings.TrimSpace(v), err
}

// FinalScore is the engine's own count, e.g. "B+3.5"
func (c *Client) FinalScore() (string, error) {
	return c.Query("final_score")
}

func (c *Client) Quit() error {
	_, err := c.Query("quit")
	return err
}
