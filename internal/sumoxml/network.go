package sumoxml

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/specialistvlad/ringgen/internal/geometry"
	"github.com/specialistvlad/ringgen/internal/ring"
)

// Nodes renders the junctions of the ring.
func Nodes(g geometry.Ring, invocation string) *etree.Document {
	doc := newDocument(invocation)
	root := doc.CreateElement("nodes")
	for _, n := range g.Nodes {
		el := root.CreateElement("node")
		el.CreateAttr("id", n.ID)
		el.CreateAttr("x", coord(n.Position.X))
		el.CreateAttr("y", coord(n.Position.Y))
	}
	doc.Indent(indentSpaces)
	return doc
}

// Edges renders the two directional halves of the ring.
func Edges(g geometry.Ring, p ring.Params, invocation string) *etree.Document {
	doc := newDocument(invocation)
	root := doc.CreateElement("edges")
	for _, a := range g.Arcs {
		el := root.CreateElement("edge")
		el.CreateAttr("id", a.EdgeID)
		el.CreateAttr("from", a.From)
		el.CreateAttr("to", a.To)
		el.CreateAttr("numLanes", strconv.Itoa(p.Lanes))
		el.CreateAttr("speed", decimal(p.Speed))
		el.CreateAttr("length", decimal(a.Length))
		el.CreateAttr("shape", shapeAttr(a.Shape))
	}
	doc.Indent(indentSpaces)
	return doc
}
