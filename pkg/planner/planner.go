// Package planner computes shortest routes over the road graph with A*.
package planner

import (
	"container/heap"
	"math"

	"github.com/osmnav/wayplanner/pkg/datastructure"
	"github.com/osmnav/wayplanner/pkg/geo"
	"github.com/osmnav/wayplanner/pkg/graph"
)

// maxIterations bounds a single search so pathological or disconnected
// graphs terminate. Hitting the cap degrades to the not-found result.
const maxIterations = 10_000_000

type PathPlanner struct {
	data  *graph.Data
	graph *graph.GeoGraph
}

func New(data *graph.Data, g *graph.GeoGraph) *PathPlanner {
	return &PathPlanner{data: data, graph: g}
}

type scores struct {
	gScore float64
	fScore float64
}

// PlanPath runs A* from startNode to endNode and returns the route
// coordinates in end-to-start order. The heuristic is the straight-line
// graph distance to endNode. No route means an empty result, never an
// error: disconnected islands are a normal outcome on road data.
//
// In debug mode the search terminates the same way but returns the
// coordinate of every node reached so far (finite f-score) instead of a
// path, as an explored-set visualization.
//
// Exact f-score ties pop in ascending node id order, so repeated runs over
// the same graph produce the same route.
func (p *PathPlanner) PlanPath(startNode, endNode int, debug bool) []geo.GeoCoord {
	openSet := datastructure.NewMinPriorityQueue[int, float64]()
	heap.Init(openSet)
	heap.Push(openSet, datastructure.NewPriorityQueueNode(0.0, startNode))

	cameFrom := make(map[int]int)
	nodeScores := make([]scores, len(p.data.Nodes))
	for i := range nodeScores {
		nodeScores[i] = scores{gScore: math.Inf(1), fScore: math.Inf(1)}
	}
	nodeScores[startNode].gScore = 0
	nodeScores[startNode].fScore = p.graph.Distance(startNode, endNode)

	found := false
	for i := 0; openSet.Len() > 0; {
		i++
		if i >= maxIterations {
			break
		}

		item := heap.Pop(openSet).(*datastructure.PriorityQueueNode[int, float64]).Item()

		if item == endNode {
			found = true
			break
		}

		for _, neighbor := range p.graph.Neighbors(item) {
			tentativeGScore := nodeScores[item].gScore + p.graph.Distance(item, neighbor)

			if tentativeGScore < nodeScores[neighbor].gScore {
				cameFrom[neighbor] = item
				nodeScores[neighbor].gScore = tentativeGScore
				nodeScores[neighbor].fScore = tentativeGScore +
					p.graph.Distance(neighbor, endNode)

				heap.Push(openSet, datastructure.NewPriorityQueueNode(
					nodeScores[neighbor].fScore, neighbor))
			}
		}
	}

	if debug {
		explored := make([]geo.GeoCoord, 0)
		for i := range nodeScores {
			if nodeScores[i].fScore < math.Inf(1) {
				explored = append(explored, p.data.Nodes[i].GeoCoord())
			}
		}
		return explored
	}

	if !found {
		return []geo.GeoCoord{}
	}
	return p.reconstructPath(cameFrom, endNode)
}

func (p *PathPlanner) reconstructPath(cameFrom map[int]int, current int) []geo.GeoCoord {
	totalPath := []geo.GeoCoord{p.data.Nodes[current].GeoCoord()}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		current = prev
		totalPath = append(totalPath, p.data.Nodes[current].GeoCoord())
	}
	return totalPath
}
