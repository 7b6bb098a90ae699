package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecords(t *testing.T) {
	got := Records()
	require.Len(t, got, 2)
	require.Equal(t, []string{"Brooklyn", "Manhattan"}, Names())

	for _, r := range got {
		require.Len(t, r.Y, len(r.X), r.Name)
		require.Equal(t, "scatter", r.Type)
		require.NotEmpty(t, r.Marker.Color)
	}
}

func TestRecords_ReturnsCopies(t *testing.T) {
	first := Records()
	first[0].Y[0] = -1
	first[0].X[0] = "changed"
	first[1].Name = "Queens"

	second := Records()
	require.NotEqual(t, -1.0, second[0].Y[0])
	require.Equal(t, "00:00", second[0].X[0])
	require.Equal(t, "Manhattan", second[1].Name)
	require.Equal(t, second, Records())
}

func TestSeries(t *testing.T) {
	r, ok := Series("Manhattan")
	require.True(t, ok)
	require.Equal(t, "Manhattan", r.Name)
	require.Equal(t, Records()[1], r)

	_, ok = Series("Queens")
	require.False(t, ok)
}
