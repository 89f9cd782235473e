// Package osmparse ingests OSM PBF extracts into the healed graph
// interchange form: dense 0-based node indices and "key/value" tag strings.
package osmparse

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"

	"github.com/osmnav/wayplanner/pkg/elevation"
	"github.com/osmnav/wayplanner/pkg/graph"
)

type rawWay struct {
	tags []string
	refs []osm.NodeID
}

// Parse reads every node and tagged way from the PBF file and heals the
// node references: nodes unreferenced by any kept way are dropped and the
// rest are remapped to positions in a dense array, in first-use order over
// the ways. Ways referencing nodes absent from the extract are skipped.
func Parse(mapFile string) (*graph.Data, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file: %w", err)
	}
	defer f.Close()

	bar := progressbar.NewOptions(3,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/2]Parsing osm objects..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	bar.Add(1)

	nodes := make(map[osm.NodeID]graph.Node)
	rawWays := []rawWay{}

	scanner := osmpbf.New(context.Background(), f, 1)
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			nodes[o.ID] = graph.Node{
				Lat:  int32(math.Round(o.Lat * 1e7)),
				Long: int32(math.Round(o.Lon * 1e7)),
			}
		case *osm.Way:
			if len(o.Tags) == 0 {
				continue
			}

			tags := make([]string, 0, len(o.Tags))
			for _, tag := range o.Tags {
				tags = append(tags, tag.Key+"/"+tag.Value)
			}

			refs := make([]osm.NodeID, 0, len(o.Nodes))
			for _, wayNode := range o.Nodes {
				refs = append(refs, wayNode.ID)
			}

			rawWays = append(rawWays, rawWay{tags: tags, refs: refs})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pbf: %w", err)
	}
	bar.Add(1)

	data := healNodes(nodes, rawWays)
	bar.Add(1)

	return data, nil
}

// healNodes compacts the sparse OSM node ids into a dense linear array and
// rewrites way references to indices into it. Index assignment follows
// first use across the ways so the output is stable for a given input.
func healNodes(nodes map[osm.NodeID]graph.Node, rawWays []rawWay) *graph.Data {
	mapping := make(map[osm.NodeID]int)
	healed := make([]graph.Node, 0, len(nodes))
	ways := make([]graph.Way, 0, len(rawWays))

	for _, raw := range rawWays {
		complete := true
		for _, ref := range raw.refs {
			if _, known := nodes[ref]; !known {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}

		wayNodes := make([]int, 0, len(raw.refs))
		for _, ref := range raw.refs {
			idx, seen := mapping[ref]
			if !seen {
				idx = len(healed)
				mapping[ref] = idx
				healed = append(healed, nodes[ref])
			}
			wayNodes = append(wayNodes, idx)
		}

		ways = append(ways, graph.Way{Tags: raw.tags, Nodes: wayNodes})
	}

	return &graph.Data{Nodes: healed, Ways: ways}
}

// AttachHeights fills node heights from an elevation grid. Nodes outside
// the grid are left without a height.
func AttachHeights(data *graph.Data, grid *elevation.Grid) int {
	matched := 0
	for i := range data.Nodes {
		coord := data.Nodes[i].GeoCoord()
		if h, ok := grid.HeightAt(coord.Lat, coord.Long); ok {
			height := h
			data.Nodes[i].Height = &height
			matched++
		}
	}
	return matched
}
