package chemstat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ThresholdProvider gives the threshold used to obtain tao from an autocorrelation function.
type ThresholdProvider interface {
	Threshold(ac []float64) (float64, error)
}

// FixedThreshold always gives the same threshold, regardless of the autocorrelation function.
type FixedThreshold float64

// Threshold returns F.
func (F FixedThreshold) Threshold(ac []float64) (float64, error) {
	return float64(F), nil
}

// InteractiveThreshold lets a human choose the threshold after looking at the
// autocorrelation function. Render shows it (it can be nil), Prompt asks for the value.
type InteractiveThreshold struct {
	Render func(ac []float64) error
	Prompt func() (float64, error)
}

// Threshold renders ac, if a renderer was given, and then prompts for the threshold.
func (I InteractiveThreshold) Threshold(ac []float64) (float64, error) {
	if I.Prompt == nil {
		return 0, fmt.Errorf("chemstat: interactive threshold without a prompt")
	}
	if I.Render != nil {
		if err := I.Render(ac); err != nil {
			return 0, fmt.Errorf("chemstat: can't render the autocorrelation function: %w", err)
		}
	}
	return I.Prompt()
}

// PromptFrom returns a prompt that writes "Threshold?" to w and reads
// one value per line from r. Empty lines are skipped.
func PromptFrom(r io.Reader, w io.Writer) func() (float64, error) {
	in := bufio.NewScanner(r)
	return func() (float64, error) {
		for {
			fmt.Fprint(w, "Threshold?\t")
			if !in.Scan() {
				if err := in.Err(); err != nil {
					return 0, err
				}
				return 0, io.ErrUnexpectedEOF
			}
			line := strings.TrimSpace(in.Text())
			if line == "" {
				continue
			}
			t, err := strconv.ParseFloat(line, 64)
			if err != nil {
				return 0, fmt.Errorf("chemstat: can't read threshold from %q: %w", line, err)
			}
			return t, nil
		}
	}
}
