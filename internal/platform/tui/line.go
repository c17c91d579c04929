package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/gravity-tiles/internal/solver"
)

// LineDecider asks the curator on a plain line-oriented stream. It is used
// when stdin is not a terminal.
type LineDecider struct {
	in     *bufio.Reader
	out    io.Writer
	lookup Lookup
}

// NewLineDecider creates a decider reading answers from in. lookup may be nil.
func NewLineDecider(in io.Reader, out io.Writer, lookup Lookup) *LineDecider {
	return &LineDecider{in: bufio.NewReader(in), out: out, lookup: lookup}
}

// Decide implements solver.Decider. It asks again until it reads y, n or q.
// End of input is an error: the run cannot continue without an answer.
func (d *LineDecider) Decide(ctx context.Context, p solver.Prompt) (solver.Decision, error) {
	if p.Board != nil {
		fmt.Fprintf(d.out, "\n%s\n", indent(p.Board.String()))
	}
	soFar := "(start)"
	if len(p.Context) > 0 {
		soFar = strings.Join(p.Context, " ")
	}
	fmt.Fprintf(d.out, "[%s] so far: %s\n", p.Level, soFar)

	for {
		if err := ctx.Err(); err != nil {
			return solver.Reject, err
		}

		fmt.Fprintf(d.out, "Is %s a word? [y]es [n]o [l]ook up [q]uit: ", p.Word)
		line, err := d.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if err != nil && answer == "" {
			return solver.Reject, fmt.Errorf("read answer: %w", err)
		}

		switch answer {
		case "y", "yes":
			return solver.Approve, nil
		case "n", "no":
			return solver.Reject, nil
		case "q", "quit":
			return solver.Reject, solver.ErrAborted
		case "l", "lookup":
			if d.lookup == nil {
				fmt.Fprintln(d.out, "No lookup URL configured.")
			} else if err := d.lookup(p.Word); err != nil {
				fmt.Fprintf(d.out, "Lookup failed: %v\n", err)
			}
		}
	}
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
