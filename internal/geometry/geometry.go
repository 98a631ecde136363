// Package geometry builds the two polylines approximating a ring road. The
// ring is split at its north and south points; each half becomes one
// directional edge of the network.
package geometry

import (
	"math"

	"github.com/specialistvlad/ringgen/internal/ring"
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a coordinate in metres.
type Point = r2.Vec

// Direction is the travel direction of an arc around the ring centre.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	if d == Clockwise {
		return "clockwise"
	}
	return "counterclockwise"
}

// Node is a named junction between the two arcs.
type Node struct {
	ID       string
	Position Point
}

// Arc is one half of the ring.
type Arc struct {
	EdgeID    string
	Direction Direction
	From      string
	To        string
	// Vertices starts and ends on the boundary points shared with the other arc.
	Vertices []Point
	// Shape is the edge geometry written to the network: the From node,
	// Vertices without the first boundary point, then the To node.
	Shape []Point
	// Length is the nominal chord length of the arc.
	Length float64
}

// Ring is the complete geometry of a circular road.
type Ring struct {
	Radius float64
	North  Point
	South  Point
	Nodes  [2]Node
	Arcs   [2]Arc
	// Length is the nominal length of the whole ring.
	Length float64
}

// Build computes the ring geometry for an already validated parameter set.
func Build(p ring.Params) Ring {
	r := p.Radius
	north := Point{X: 0, Y: r}
	south := Point{X: 0, Y: -r}

	// Odd edge counts lose one chord here; both halves share the same count.
	half := p.Edges / 2

	east := []Point{north}
	west := []Point{south}
	for i := 1; i < half; i++ {
		theta := float64(i)/float64(half)*math.Pi + math.Pi/2
		east = append(east, Point{X: -math.Cos(theta) * r, Y: math.Sin(theta) * r})
		phi := float64(half-i)/float64(half)*math.Pi + math.Pi/2
		west = append(west, Point{X: math.Cos(phi) * r, Y: math.Sin(phi) * r})
	}
	east = append(east, south)
	west = append(west, north)

	// Junctions sit between the first two vertices, not on the boundary
	// points, so the first segment of each edge is never zero length.
	node1 := Node{ID: "node1", Position: midpoint(east[0], east[1])}
	node2 := Node{ID: "node2", Position: midpoint(west[0], west[1])}

	edgeLength := p.EdgeLength()
	return Ring{
		Radius: r,
		North:  north,
		South:  south,
		Nodes:  [2]Node{node1, node2},
		Arcs: [2]Arc{
			{
				EdgeID:    "edg1",
				Direction: orientation(east),
				From:      node1.ID,
				To:        node2.ID,
				Vertices:  east,
				Shape:     shape(node1, east, node2),
				Length:    edgeLength,
			},
			{
				EdgeID:    "edg2",
				Direction: orientation(west),
				From:      node2.ID,
				To:        node1.ID,
				Vertices:  west,
				Shape:     shape(node2, west, node1),
				Length:    edgeLength,
			},
		},
		Length: p.TotalLength(),
	}
}

func midpoint(a, b Point) Point {
	return r2.Scale(0.5, r2.Add(a, b))
}

// orientation reports the turning direction of a polyline around the origin.
// Degenerate polylines count as clockwise.
func orientation(pts []Point) Direction {
	var area float64
	for i := 1; i < len(pts); i++ {
		area += r2.Cross(pts[i-1], pts[i])
	}
	if area > 0 {
		return CounterClockwise
	}
	return Clockwise
}

func shape(from Node, vertices []Point, to Node) []Point {
	pts := make([]Point, 0, len(vertices)+1)
	pts = append(pts, from.Position)
	pts = append(pts, vertices[1:]...)
	pts = append(pts, to.Position)
	return pts
}
