package elevation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A 3x3 grid with the lower-left corner at (10, 20) and 1 degree cells.
// The top-left cell is at lat 23, long 10.
const sampleGrid = `ncols 3
nrows 3
xllcorner 10.0
yllcorner 20.0
cellsize 1.0
NODATA_value -9999
1 2 3
4 -9999 6
7 8 9
`

func TestParse(t *testing.T) {
	t.Run("parses a complete grid", func(t *testing.T) {
		g, err := Parse(strings.NewReader(sampleGrid))
		require.NoError(t, err)

		h, ok := g.HeightAt(22.9, 10.1)
		require.True(t, ok)
		assert.Equal(t, 1.0, h)
	})

	t.Run("header keys in any order", func(t *testing.T) {
		reordered := `NODATA_value -9999
cellsize 1.0
yllcorner 20.0
xllcorner 10.0
nrows 1
ncols 2
5 6
`
		g, err := Parse(strings.NewReader(reordered))
		require.NoError(t, err)

		h, ok := g.HeightAt(21.0, 11.0)
		require.True(t, ok)
		assert.Equal(t, 6.0, h)
	})

	t.Run("truncated header", func(t *testing.T) {
		_, err := Parse(strings.NewReader("ncols 3\nnrows 3\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "header ended early")
	})

	t.Run("unknown header key", func(t *testing.T) {
		_, err := Parse(strings.NewReader("bogus 3\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid header key")
	})

	t.Run("header line without a value", func(t *testing.T) {
		_, err := Parse(strings.NewReader("ncols\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing header value")
	})

	t.Run("header line with extra fields", func(t *testing.T) {
		_, err := Parse(strings.NewReader("ncols 3 4\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too much data")
	})

	t.Run("non-numeric header value", func(t *testing.T) {
		_, err := Parse(strings.NewReader("nrows abc\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid header value for nrows")
	})

	t.Run("non-numeric height", func(t *testing.T) {
		bad := strings.Replace(sampleGrid, "6", "x", 1)
		_, err := Parse(strings.NewReader(bad))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid height value")
	})

	t.Run("wrong number of heights", func(t *testing.T) {
		short := strings.TrimSuffix(sampleGrid, "7 8 9\n")
		_, err := Parse(strings.NewReader(short))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "header promised")
	})
}

func TestHeightAt(t *testing.T) {
	g, err := Parse(strings.NewReader(sampleGrid))
	require.NoError(t, err)

	t.Run("rounds to the nearest cell", func(t *testing.T) {
		// Cell centers are at whole degrees starting from the top-left
		// corner (23, 10).
		cases := []struct {
			lat, long float64
			want      float64
		}{
			{23.0, 10.0, 1},
			{23.0, 12.0, 3},
			{22.6, 10.4, 1},
			{22.0, 12.0, 6},
			{20.9, 11.9, 9},
		}
		for _, tc := range cases {
			h, ok := g.HeightAt(tc.lat, tc.long)
			require.True(t, ok, "lat=%v long=%v", tc.lat, tc.long)
			assert.Equal(t, tc.want, h, "lat=%v long=%v", tc.lat, tc.long)
		}
	})

	t.Run("nodata cells have no height", func(t *testing.T) {
		_, ok := g.HeightAt(22.0, 11.0)
		assert.False(t, ok)
	})

	t.Run("outside the grid", func(t *testing.T) {
		for _, p := range [][2]float64{
			{25.0, 11.0}, // north of the grid
			{22.0, 5.0},  // west of the grid
			{22.0, 14.0}, // east of the grid
			{15.0, 11.0}, // south of the grid
		} {
			_, ok := g.HeightAt(p[0], p[1])
			assert.False(t, ok, "lat=%v long=%v", p[0], p[1])
		}
	})
}
