package colmem

import (
	"testing"

	"github.com/hupe1980/colmem/segment"
	"github.com/stretchr/testify/require"
)

func segmentExpected(n int) segment.Option {
	return segment.WithExpectedEntries(n)
}

type budgetedColumn struct {
	group *Group
	col   *segment.Int8
}

// segmentWithinTinyBudget returns a group whose limit is reached by 64 int8
// values: the limit equals the column's retained size at 64 entries.
func segmentWithinTinyBudget(t *testing.T, logger *Logger) budgetedColumn {
	t.Helper()

	probe := segment.NewInt8(segment.WithExpectedEntries(64))
	require.NoError(t, probe.Append(0))

	g := NewGroup(WithLogger(logger), WithMemoryLimit(probe.RetainedSize()), WithExpectedEntries(64))
	col, err := AddColumn[int8](g, "c")
	require.NoError(t, err)
	return budgetedColumn{group: g, col: col}
}
