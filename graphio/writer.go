package graphio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/maxmatch/core"
)

// WritePairs emits every matched edge as one `u v` line with u < v,
// ascending by u. This is the diagnostic dump printed even when
// validation fails, so it must never depend on matching validity.
func WritePairs(w io.Writer, m *core.Matching) error {
	bw := bufio.NewWriter(w)
	for _, p := range m.Pairs() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", p.U, p.V); err != nil {
			return fmt.Errorf("graphio: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write: %w", err)
	}

	return nil
}
