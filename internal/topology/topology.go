// Package topology checks that a set of directed road edges forms a single
// closed loop and derives the routes and rerouters that keep vehicles
// circulating on it.
package topology

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Edge is a directed road edge between two named junctions.
type Edge struct {
	ID   string
	From string
	To   string
}

// Route is a loop traversal over edge ids.
type Route struct {
	ID    string
	Edges []string
}

// Rerouter sends every vehicle on Edge onto Route.
type Rerouter struct {
	ID    string
	Edge  string
	Route string
}

// Loop is a validated ring topology.
type Loop struct {
	// Edges in input order.
	Edges     []Edge
	Routes    []Route
	Rerouters []Rerouter
}

var (
	ErrEmpty    = errors.New("topology has no edges")
	ErrNotALoop = errors.New("edges do not form a single closed loop")
)

// NewLoop builds a directed graph from the edges, verifies it is exactly one
// cycle visiting every junction once, and derives the loop routes.
//
// Route rK starts on the edge following edge K and walks the whole loop. The
// rerouter of edge K points at the route starting on edge K.
func NewLoop(edges []Edge) (*Loop, error) {
	if len(edges) == 0 {
		return nil, ErrEmpty
	}

	g := simple.NewDirectedGraph()
	ids := make(map[string]int64)
	nodeFor := func(name string) graph.Node {
		id, ok := ids[name]
		if !ok {
			id = int64(len(ids))
			ids[name] = id
			g.AddNode(simple.Node(id))
		}
		return g.Node(id)
	}

	// next maps a junction to the edge leaving it.
	next := make(map[string]int, len(edges))
	seen := make(map[string]struct{}, len(edges))
	for i, e := range edges {
		if e.ID == "" {
			return nil, fmt.Errorf("edge %d has no id", i)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("duplicate edge id %q", e.ID)
		}
		seen[e.ID] = struct{}{}

		if e.From == e.To {
			return nil, fmt.Errorf("%w: edge %q is a self-loop", ErrNotALoop, e.ID)
		}
		if _, ok := next[e.From]; ok {
			return nil, fmt.Errorf("%w: junction %q has more than one outgoing edge", ErrNotALoop, e.From)
		}
		next[e.From] = i

		from, to := nodeFor(e.From), nodeFor(e.To)
		g.SetEdge(g.NewEdge(from, to))
	}

	if len(ids) != len(edges) {
		return nil, fmt.Errorf("%w: %d junctions for %d edges", ErrNotALoop, len(ids), len(edges))
	}
	cycles := topo.DirectedCyclesIn(g)
	if len(cycles) != 1 {
		return nil, fmt.Errorf("%w: found %d cycles", ErrNotALoop, len(cycles))
	}
	// Cycles are reported closed, so a full loop has one extra node.
	if len(cycles[0]) != len(ids)+1 {
		return nil, fmt.Errorf("%w: cycle visits %d of %d junctions", ErrNotALoop, len(cycles[0])-1, len(ids))
	}

	successor := func(i int) int { return next[edges[i].To] }

	loop := &Loop{Edges: edges}
	startOf := make(map[int]string, len(edges))
	for k := range edges {
		start := successor(k)
		route := Route{ID: fmt.Sprintf("r%d", k+1)}
		for j, n := start, 0; n < len(edges); j, n = successor(j), n+1 {
			route.Edges = append(route.Edges, edges[j].ID)
		}
		startOf[start] = route.ID
		loop.Routes = append(loop.Routes, route)
	}
	for k, e := range edges {
		loop.Rerouters = append(loop.Rerouters, Rerouter{
			ID:    fmt.Sprintf("rerouter%d", k+1),
			Edge:  e.ID,
			Route: startOf[k],
		})
	}

	return loop, nil
}
