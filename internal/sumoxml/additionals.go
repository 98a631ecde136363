package sumoxml

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/specialistvlad/ringgen/internal/topology"
)

// UnboundedEnd is the interval end used to keep rerouters active for the
// whole simulation.
const UnboundedEnd = "1e9"

// Additionals renders the loop routes and one rerouter per edge.
func Additionals(loop *topology.Loop, invocation string) *etree.Document {
	doc := newDocument(invocation)
	root := doc.CreateElement("additionals")
	for _, r := range loop.Routes {
		el := root.CreateElement("route")
		el.CreateAttr("id", r.ID)
		el.CreateAttr("edges", strings.Join(r.Edges, " "))
	}
	for _, rr := range loop.Rerouters {
		el := root.CreateElement("rerouter")
		el.CreateAttr("id", rr.ID)
		el.CreateAttr("edges", rr.Edge)
		interval := el.CreateElement("interval")
		interval.CreateAttr("end", UnboundedEnd)
		interval.CreateElement("routeProbReroute").CreateAttr("id", rr.Route)
	}
	doc.Indent(indentSpaces)
	return doc
}
