package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/gravity-tiles/internal/solver"
)

func TestLineDeciderAnswers(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected solver.Decision
		err      bool
	}{
		{"yes", "y\n", solver.Approve, false},
		{"long yes", "Yes\n", solver.Approve, false},
		{"no", "n\n", solver.Reject, false},
		{"asks again", "maybe\n\nN\n", solver.Reject, false},
		{"no newline", "y", solver.Approve, false},
		{"end of input", "", solver.Reject, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			d := NewLineDecider(strings.NewReader(tc.input), &out, nil)

			got, err := d.Decide(context.Background(), testPrompt(t))
			if tc.err {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestLineDeciderQuit(t *testing.T) {
	d := NewLineDecider(strings.NewReader("q\n"), &bytes.Buffer{}, nil)

	if _, err := d.Decide(context.Background(), testPrompt(t)); !errors.Is(err, solver.ErrAborted) {
		t.Errorf("expected ErrAborted, got %v", err)
	}
}

func TestLineDeciderLookup(t *testing.T) {
	var looked []string
	lookup := func(word string) error {
		looked = append(looked, word)
		return nil
	}

	var out bytes.Buffer
	d := NewLineDecider(strings.NewReader("l\nn\n"), &out, lookup)
	got, err := d.Decide(context.Background(), testPrompt(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != solver.Reject {
		t.Errorf("expected reject, got %v", got)
	}
	if len(looked) != 1 || looked[0] != "AT" {
		t.Errorf("expected lookup of AT, got %v", looked)
	}
	if strings.Count(out.String(), "Is AT a word?") != 2 {
		t.Errorf("expected the question twice, got %q", out.String())
	}
}

func TestLineDeciderShowsContext(t *testing.T) {
	var out bytes.Buffer
	d := NewLineDecider(strings.NewReader("n\n"), &out, nil)
	d.Decide(context.Background(), testPrompt(t))

	for _, want := range []string{"  CA\n  AT", "[classic-1] so far: DOG"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q, got %q", want, out.String())
		}
	}
}

func TestLineDeciderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewLineDecider(strings.NewReader("y\n"), &bytes.Buffer{}, nil)
	if _, err := d.Decide(ctx, testPrompt(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
