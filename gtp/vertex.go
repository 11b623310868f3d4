package gtp

import (
	"errors"
	"strings"
)

// ErrResign is returned when the engine resigns instead of moving
var ErrResign = errors.New("engine resigned")

// ToVertex converts a move name ("D4", "PASS") to GTP syntax
func ToVertex(move string) string {
	move = strings.TrimSpace(move)
	if strings.EqualFold(move, "pass") {
		return "pass"
	}
	return strings.ToUpper(move)
}

// FromVertex converts a GTP vertex back to a move name
func FromVertex(vertex string) (string, error) {
	vertex = strings.TrimSpace(vertex)
	switch strings.ToLower(vertex) {
	case "pass":
		return "PASS", nil
	case "resign":
		return "", ErrResign
	case "":
		return "", errors.New("gtp: empty vertex")
	}
	return strings.ToUpper(vertex), nil
}
