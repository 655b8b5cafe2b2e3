package aggregate

import (
	"testing"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/stretchr/testify/require"
)

func mustPrepare(t *testing.T, records ...domain.SessionRecord) []Entry {
	t.Helper()
	entries, err := Prepare(records)
	require.NoError(t, err)
	return entries
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
