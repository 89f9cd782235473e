package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/osmnav/wayplanner/pkg/geo"
	"github.com/osmnav/wayplanner/pkg/graph"
	"github.com/osmnav/wayplanner/pkg/picker"
)

var testSize = geo.Size{Width: 100, Height: 100}

// splitRasterizer reports way 0 for tile centers south of lat 0.5 and way 1
// north of it, always in the tile center cell.
type splitRasterizer struct{}

func (splitRasterizer) RenderWayIDs(_ float64, center geo.GeoCoord) []int32 {
	pixels := make([]int32, picker.TileResolution*picker.TileResolution)
	for i := range pixels {
		pixels[i] = graph.NoWay
	}

	mid := picker.TileResolution / 2
	if center.Lat < 0.5 {
		pixels[mid*picker.TileResolution+mid] = 0
	} else {
		pixels[mid*picker.TileResolution+mid] = 1
	}
	return pixels
}

func node(lat, long float64) graph.Node {
	return graph.Node{
		Lat:  int32(math.Round(lat * 1e7)),
		Long: int32(math.Round(long * 1e7)),
	}
}

// testData is a unit square: a south way, a north way and a connector.
// The bounds midpoint, and so the initial view center, is (0.5, 0.5).
func testData() *graph.Data {
	return &graph.Data{
		Nodes: []graph.Node{
			node(0, 0), node(0, 1), // way 0, south
			node(1, 0), node(1, 1), // way 1, north
		},
		Ways: []graph.Way{
			{Tags: []string{"highway/residential", "name/South Road"}, Nodes: []int{0, 1}},
			{Tags: []string{"highway/primary"}, Nodes: []int{2, 3}},
			{Tags: []string{"highway/service"}, Nodes: []int{1, 3}},
		},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	return New(zap.NewNop(), testData(), splitRasterizer{})
}

// southPixel and northPixel sit below and above the view center, which maps
// to geo (0.5, 0.5) at startup.
var (
	southPixel = geo.PixelCoord{X: 50, Y: 80}
	northPixel = geo.PixelCoord{X: 50, Y: 20}
)

func TestUpdateCursorPosHover(t *testing.T) {
	a := newTestApp(t)

	require.False(t, a.Hover().Valid(), "nothing hovered at startup")

	a.UpdateCursorPos(&southPixel, testSize)
	assert.Equal(t, int32(0), a.Hover().WayID)

	a.UpdateCursorPos(&northPixel, testSize)
	assert.Equal(t, int32(1), a.Hover().WayID)
}

func TestUpdateCursorPosPointerLeft(t *testing.T) {
	a := newTestApp(t)

	a.UpdateCursorPos(&southPixel, testSize)
	a.StartPathPlan()
	a.UpdateCursorPos(&northPixel, testSize)
	require.NotEmpty(t, a.PlannedPath())

	a.UpdateCursorPos(nil, testSize)

	assert.False(t, a.Hover().Valid())
	assert.Empty(t, a.PlannedPath())
	assert.True(t, a.PathStart().Valid(), "the start survives the pointer leaving")
}

func TestPathPlanningFlow(t *testing.T) {
	a := newTestApp(t)
	data := testData()

	a.UpdateCursorPos(&southPixel, testSize)
	a.StartPathPlan()
	require.Equal(t, int32(0), a.PathStart().WayID)

	a.UpdateCursorPos(&northPixel, testSize)

	path := a.PlannedPath()
	require.Len(t, path, 4, "south node to north node crosses the connector")

	t.Run("path runs end to start", func(t *testing.T) {
		assert.Equal(t, data.Nodes[2].GeoCoord(), path[0])
		assert.Equal(t, data.Nodes[0].GeoCoord(), path[len(path)-1])
	})

	t.Run("clearing the start clears the route", func(t *testing.T) {
		a.ClearPathPlan()
		assert.False(t, a.PathStart().Valid())

		a.UpdateCursorPos(&northPixel, testSize)
		assert.Empty(t, a.PlannedPath())
	})
}

func TestDebugModePlansExploredSet(t *testing.T) {
	a := newTestApp(t)
	a.SetDebugMode(true)

	a.UpdateCursorPos(&southPixel, testSize)
	a.StartPathPlan()
	a.UpdateCursorPos(&southPixel, testSize)

	// Start and end are the same node; only that node is ever reached.
	require.Len(t, a.PlannedPath(), 1)
}

func TestZoomReplaysCursor(t *testing.T) {
	a := newTestApp(t)

	a.UpdateCursorPos(&southPixel, testSize)
	require.Equal(t, int32(0), a.Hover().WayID)

	a.Zoom(2.0, geo.PixelCoord{X: 50, Y: 50}, testSize)

	scale, _ := a.Viewport()
	assert.InDelta(t, 20.0, scale, 1e-9)
	assert.True(t, a.Hover().Valid(), "hover is recomputed after zooming")
}

func TestMoveMap(t *testing.T) {
	a := newTestApp(t)
	_, before := a.Viewport()

	a.MoveMap(geo.PixelOffset{X: 0, Y: -25}, testSize)

	_, after := a.Viewport()
	assert.InDelta(t, before.Long, after.Long, 1e-9)
	assert.Greater(t, after.Lat, before.Lat, "dragging up pans north")
}

func TestSelectedTags(t *testing.T) {
	a := newTestApp(t)

	assert.Empty(t, a.SelectedTags())

	a.UpdateCursorPos(&southPixel, testSize)
	assert.Equal(t, []string{"highway/residential", "name/South Road"}, a.SelectedTags())
}

func TestSelectedPosition(t *testing.T) {
	a := newTestApp(t)

	_, ok := a.SelectedPosition()
	require.False(t, ok)

	a.UpdateCursorPos(&southPixel, testSize)
	coord, ok := a.SelectedPosition()
	require.True(t, ok)
	assert.InDelta(t, 0.0, coord.Lat, 1e-9)
	assert.GreaterOrEqual(t, coord.Long, 0.0)
	assert.LessOrEqual(t, coord.Long, 1.0)
}

func TestHighlights(t *testing.T) {
	a := newTestApp(t)

	red := geo.ColorFromRGB(1, 0, 0)
	blue := geo.ColorFromRGB(0, 0, 1)

	t.Run("ways start neutral", func(t *testing.T) {
		assert.Equal(t, neutralColor, a.WayColor(0))
	})

	t.Run("first matching pattern wins", func(t *testing.T) {
		require.NoError(t, a.SetHighlightList([]Highlight{
			{Pattern: "highway/.*", Color: red},
			{Pattern: "name/.*", Color: blue},
		}))

		assert.Equal(t, red, a.WayColor(0))
		assert.Equal(t, red, a.WayColor(1))
	})

	t.Run("unmatched ways stay neutral", func(t *testing.T) {
		require.NoError(t, a.SetHighlightList([]Highlight{
			{Pattern: "name/.*", Color: blue},
		}))

		assert.Equal(t, blue, a.WayColor(0))
		assert.Equal(t, neutralColor, a.WayColor(1))
	})

	t.Run("a bad pattern keeps the previous list", func(t *testing.T) {
		err := a.SetHighlightList([]Highlight{
			{Pattern: "name/.*", Color: red},
			{Pattern: "four(", Color: blue},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "four(")

		assert.Equal(t, blue, a.WayColor(0), "previous list still applies")
	})
}
