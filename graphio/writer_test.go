package graphio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxmatch/core"
	"github.com/katalvlaran/maxmatch/graphio"
)

// TestWritePairs_Empty writes nothing for an empty matching.
func TestWritePairs_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, graphio.WritePairs(&sb, core.NewMatching(3)))
	require.Zero(t, sb.Len())
}
