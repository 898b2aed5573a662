package chemstat

import (
	"bufio"
	"fmt"
	"io"
)

// WriteACF writes ac to w as a two-column table, lag and value, with a commented header.
// Lags are given in frames.
func WriteACF(w io.Writer, ac []float64) error {
	b := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(b, "# lag autocorrelation"); err != nil {
		return err
	}
	for k, v := range ac {
		if _, err := fmt.Fprintf(b, "%d %.10e\n", k, v); err != nil {
			return err
		}
	}
	return b.Flush()
}
