package graph

import "math"

// GeoGraph is an immutable adjacency view over Data. Every node is linked
// to its immediate predecessor and successor in every way that references
// it, in both directions.
type GeoGraph struct {
	data      *Data
	neighbors [][]int
}

func NewGeoGraph(data *Data) *GeoGraph {
	neighborSets := make([]map[int]struct{}, len(data.Nodes))
	for i := range neighborSets {
		neighborSets[i] = make(map[int]struct{})
	}

	for w := range data.Ways {
		wayNodes := data.Ways[w].Nodes
		for i, nodeID := range wayNodes {
			if i+1 < len(wayNodes) {
				neighborSets[nodeID][wayNodes[i+1]] = struct{}{}
			}
			if i > 0 {
				neighborSets[nodeID][wayNodes[i-1]] = struct{}{}
			}
		}
	}

	neighbors := make([][]int, len(neighborSets))
	for i, set := range neighborSets {
		list := make([]int, 0, len(set))
		for id := range set {
			list = append(list, id)
		}
		neighbors[i] = list
	}

	return &GeoGraph{data: data, neighbors: neighbors}
}

func (g *GeoGraph) Neighbors(nodeID int) []int {
	return g.neighbors[nodeID]
}

func (g *GeoGraph) NodeCount() int {
	return len(g.neighbors)
}

// Distance is an equirectangular approximation of the distance between two
// nodes, in degree units. The longitude delta is scaled by the cosine of
// node b's latitude, so Distance(a, b) != Distance(b, a) for nodes at
// different latitudes. Callers rely on this exact formulation; do not
// symmetrize it.
func (g *GeoGraph) Distance(a, b int) float64 {
	na := &g.data.Nodes[a]
	nb := &g.data.Nodes[b]

	longDist := float64(nb.Long-na.Long) *
		math.Cos(float64(nb.Lat)/1e7*math.Pi/180.0) / 1e7
	latDist := float64(nb.Lat-na.Lat) / 1e7

	return math.Sqrt(longDist*longDist + latDist*latDist)
}
