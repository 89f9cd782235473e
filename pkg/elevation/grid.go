// Package elevation reads Arc/Info ASCII elevation grids and answers
// point height lookups against them.
package elevation

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Grid is a regular lattice of heights in meters. Rows run north to south
// starting at the top-left corner; cells are Step degrees apart.
type Grid struct {
	step      float64
	rowLength int
	tlLong    float64
	tlLat     float64
	nodata    float64
	data      []float64
}

type header struct {
	rows, cols                   int
	xllCorner, yllCorner         float64
	cellSize, nodata             float64
	hasRows, hasCols, hasX, hasY bool
	hasCell, hasNodata           bool
}

func (h *header) ready() bool {
	return h.hasRows && h.hasCols && h.hasX && h.hasY && h.hasCell && h.hasNodata
}

// Parse reads the six-line grid header (ncols, nrows, xllcorner, yllcorner,
// cellsize, nodata_value, in any order) followed by nrows rows of ncols
// heights.
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	var h header
	line := 0
	for !h.ready() {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read grid header: %w", err)
			}
			return nil, fmt.Errorf("grid header ended early at line %d", line)
		}
		line++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			return nil, fmt.Errorf("missing header key, line %d", line)
		}
		if len(fields) == 1 {
			return nil, fmt.Errorf("missing header value, line %d", line)
		}
		if len(fields) > 2 {
			return nil, fmt.Errorf("header contained too much data, line %d", line)
		}

		if err := h.set(fields[0], fields[1]); err != nil {
			return nil, err
		}
	}

	grid := &Grid{
		step:      h.cellSize,
		rowLength: h.cols,
		tlLong:    h.xllCorner,
		tlLat:     h.yllCorner + float64(h.rows)*h.cellSize,
		nodata:    h.nodata,
		data:      make([]float64, 0, h.rows*h.cols),
	}

	for scanner.Scan() {
		for _, field := range strings.Fields(scanner.Text()) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid height value %q: %w", field, err)
			}
			grid.data = append(grid.data, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grid data: %w", err)
	}

	if len(grid.data) != h.rows*h.cols {
		return nil, fmt.Errorf("grid data has %d values, header promised %d",
			len(grid.data), h.rows*h.cols)
	}

	return grid, nil
}

func (h *header) set(key, value string) error {
	switch strings.ToLower(key) {
	case "nrows":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid header value for nrows: %w", err)
		}
		h.rows, h.hasRows = v, true
	case "ncols":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid header value for ncols: %w", err)
		}
		h.cols, h.hasCols = v, true
	case "xllcorner":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid header value for xllcorner: %w", err)
		}
		h.xllCorner, h.hasX = v, true
	case "yllcorner":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid header value for yllcorner: %w", err)
		}
		h.yllCorner, h.hasY = v, true
	case "cellsize":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid header value for cellsize: %w", err)
		}
		h.cellSize, h.hasCell = v, true
	case "nodata_value":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid header value for nodata_value: %w", err)
		}
		h.nodata, h.hasNodata = v, true
	default:
		return fmt.Errorf("invalid header key: %s", key)
	}
	return nil
}

// HeightAt returns the height at the cell nearest to the coordinate, or
// false when the point is outside the grid or the cell holds no data.
func (g *Grid) HeightAt(lat, long float64) (float64, bool) {
	latRelTL := g.tlLat - lat
	longRelTL := long - g.tlLong

	if latRelTL < 0 || longRelTL < 0 {
		return 0, false
	}

	xIdx := int((longRelTL + g.step/2.0) / g.step)
	yIdx := int((latRelTL + g.step/2.0) / g.step)

	if xIdx >= g.rowLength {
		return 0, false
	}

	idx := yIdx*g.rowLength + xIdx
	if idx >= len(g.data) {
		return 0, false
	}

	height := g.data[idx]
	if math.Abs(height-g.nodata) < 0.001 {
		return 0, false
	}

	return height, true
}
