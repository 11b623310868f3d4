package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/dodgebc/weiqi-agents/player"
	"github.com/dodgebc/weiqi-agents/weiqi"
)

// render prints the board with colored stones. termenv drops the colors
// when w is not a terminal.
func render(w io.Writer, g *weiqi.Game) {
	out := termenv.NewOutput(w)
	black := out.String(string(weiqi.Black.Symbol())).Foreground(out.Color("12")).Bold().String()
	white := out.String(string(weiqi.White.Symbol())).Foreground(out.Color("15")).Bold().String()

	last := ""
	if m, ok := g.LastMove(); ok {
		last = player.FormatMove(m, g.Size())
	}
	fmt.Fprintf(w, "move %d (%s)  captures X:%d O:%d\n", g.MoveCount(), last, g.Captures(weiqi.Black), g.Captures(weiqi.White))

	var sb strings.Builder
	for _, line := range strings.SplitAfter(g.String(), "\n") {
		// column headers may contain the letter O
		if strings.HasPrefix(line, "   ") {
			sb.WriteString(line)
			continue
		}
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case weiqi.Black.Symbol():
				sb.WriteString(black)
			case weiqi.White.Symbol():
				sb.WriteString(white)
			default:
				sb.WriteByte(line[i])
			}
		}
	}
	fmt.Fprint(w, sb.String())
}
