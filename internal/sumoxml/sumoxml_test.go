package sumoxml

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/specialistvlad/ringgen/internal/geometry"
	"github.com/specialistvlad/ringgen/internal/ring"
	"github.com/specialistvlad/ringgen/internal/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invocation = "ringgen -r 100 -e 10"

func defaultRing(t *testing.T) (ring.Params, geometry.Ring) {
	t.Helper()
	p, err := ring.Resolve(ring.DefaultInput())
	require.NoError(t, err)
	return p, geometry.Build(p)
}

func defaultLoop(t *testing.T, g geometry.Ring) *topology.Loop {
	t.Helper()
	edges := make([]topology.Edge, 0, len(g.Arcs))
	for _, a := range g.Arcs {
		edges = append(edges, topology.Edge{ID: a.EdgeID, From: a.From, To: a.To})
	}
	loop, err := topology.NewLoop(edges)
	require.NoError(t, err)
	return loop
}

// reparse serializes the document and parses it back, proving well-formedness.
func reparse(t *testing.T, doc *etree.Document) (*etree.Document, string) {
	t.Helper()
	out, err := doc.WriteToString()
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromString(out))
	return parsed, out
}

func TestNodes(t *testing.T) {
	_, g := defaultRing(t)

	doc, out := reparse(t, Nodes(g, invocation))

	assert.True(t, strings.HasPrefix(out, "<!-- Generated with ringgen -r 100 -e 10 -->\n<nodes>\n"), out)
	assert.Contains(t, out, "\n    <node id=\"node1\" x=\"29.39\" y=\"90.45\"/>\n")

	nodes := doc.SelectElement("nodes").SelectElements("node")
	require.Len(t, nodes, 2)
	assert.Equal(t, "node2", nodes[1].SelectAttrValue("id", ""))
	assert.Equal(t, "-29.39", nodes[1].SelectAttrValue("x", ""))
	assert.Equal(t, "-90.45", nodes[1].SelectAttrValue("y", ""))
}

func TestEdges(t *testing.T) {
	p, g := defaultRing(t)

	doc, _ := reparse(t, Edges(g, p, invocation))

	edges := doc.SelectElement("edges").SelectElements("edge")
	require.Len(t, edges, 2)

	e1, e2 := edges[0], edges[1]
	assert.Equal(t, "edg1", e1.SelectAttrValue("id", ""))
	assert.Equal(t, "node1", e1.SelectAttrValue("from", ""))
	assert.Equal(t, "node2", e1.SelectAttrValue("to", ""))
	assert.Equal(t, "1", e1.SelectAttrValue("numLanes", ""))
	assert.Equal(t, "13.900000", e1.SelectAttrValue("speed", ""))
	assert.Equal(t, "309.016994", e1.SelectAttrValue("length", ""))

	assert.Equal(t, "edg2", e2.SelectAttrValue("id", ""))
	assert.Equal(t, "node2", e2.SelectAttrValue("from", ""))
	assert.Equal(t, "node1", e2.SelectAttrValue("to", ""))

	shape1 := strings.Split(e1.SelectAttrValue("shape", ""), " ")
	require.Len(t, shape1, 7)
	assert.Equal(t, "29.39,90.45", shape1[0])
	assert.Equal(t, "58.78,80.90", shape1[1])
	assert.Equal(t, "0.00,-100.00", shape1[5])
	assert.Equal(t, "-29.39,-90.45", shape1[6])

	shape2 := strings.Split(e2.SelectAttrValue("shape", ""), " ")
	require.Len(t, shape2, 7)
	assert.Equal(t, shape1[0], shape2[6])
	assert.Equal(t, shape1[6], shape2[0])
	assert.Equal(t, "0.00,100.00", shape2[5])
}

func TestEdges_LanesAndSpeed(t *testing.T) {
	in := ring.DefaultInput()
	in.Lanes = 3
	in.Speed = 27.5
	p, err := ring.Resolve(in)
	require.NoError(t, err)

	doc, _ := reparse(t, Edges(geometry.Build(p), p, invocation))

	for _, e := range doc.FindElements("//edge") {
		assert.Equal(t, "3", e.SelectAttrValue("numLanes", ""))
		assert.Equal(t, "27.500000", e.SelectAttrValue("speed", ""))
	}
}

func TestAdditionals(t *testing.T) {
	_, g := defaultRing(t)

	doc, out := reparse(t, Additionals(defaultLoop(t, g), invocation))

	assert.Contains(t, out, "<route id=\"r1\" edges=\"edg2 edg1\"/>")
	assert.Contains(t, out, "<route id=\"r2\" edges=\"edg1 edg2\"/>")

	rerouters := doc.FindElements("//rerouter")
	require.Len(t, rerouters, 2)

	assert.Equal(t, "rerouter1", rerouters[0].SelectAttrValue("id", ""))
	assert.Equal(t, "edg1", rerouters[0].SelectAttrValue("edges", ""))
	interval := rerouters[0].SelectElement("interval")
	require.NotNil(t, interval)
	assert.Equal(t, "1e9", interval.SelectAttrValue("end", ""))
	assert.Equal(t, "r2", interval.SelectElement("routeProbReroute").SelectAttrValue("id", ""))

	assert.Equal(t, "rerouter2", rerouters[1].SelectAttrValue("id", ""))
	assert.Equal(t, "edg2", rerouters[1].SelectAttrValue("edges", ""))
	assert.Equal(t, "r1", rerouters[1].FindElement("interval/routeProbReroute").SelectAttrValue("id", ""))
}

func TestGeneratedComment(t *testing.T) {
	testCases := map[string]string{
		"ringgen -r 50":               "Generated with ringgen -r 50",
		"ringgen --radius 50":         "Generated with ringgen - -radius 50",
		"ringgen ---weird --name=x":   "Generated with ringgen - - -weird - -name=x",
		"ringgen --name=a--b --lanes": "Generated with ringgen - -name=a- -b - -lanes",
	}
	for in, want := range testCases {
		got := GeneratedComment(in)
		assert.Equal(t, want, got)
		assert.NotContains(t, got, "--")
	}
}

func TestDoubleDashInvocationStaysWellFormed(t *testing.T) {
	_, g := defaultRing(t)

	_, out := reparse(t, Nodes(g, "ringgen --radius 100 --edges 10"))
	assert.True(t, strings.HasPrefix(out, "<!-- Generated with ringgen - -radius 100 - -edges 10 -->"), out)
}

func TestWriteFile_Idempotent(t *testing.T) {
	p, g := defaultRing(t)
	dir := t.TempDir()

	render := func(invocation string) [][]byte {
		paths := PathsFor(filepath.Join(dir, "out", "circle"))
		docs := map[string]*etree.Document{
			paths.Nodes:       Nodes(g, invocation),
			paths.Edges:       Edges(g, p, invocation),
			paths.Additionals: Additionals(defaultLoop(t, g), invocation),
		}
		var contents [][]byte
		for _, path := range []string{paths.Nodes, paths.Edges, paths.Additionals} {
			require.NoError(t, WriteFile(docs[path], path))
			b, err := os.ReadFile(path)
			require.NoError(t, err)
			contents = append(contents, b)
		}
		return contents
	}

	first := render("ringgen -r 100")
	second := render("ringgen -e 10 -r 100")

	for i := range first {
		firstBody := first[i][bytes.IndexByte(first[i], '\n'):]
		secondBody := second[i][bytes.IndexByte(second[i], '\n'):]
		assert.Equal(t, string(firstBody), string(secondBody))
		assert.NotEqual(t, string(first[i]), string(second[i]))
	}
}

func TestPathsFor(t *testing.T) {
	assert.Equal(t, Paths{
		Nodes:       "nets/ring.nod.xml",
		Edges:       "nets/ring.edg.xml",
		Network:     "nets/ring.net.xml",
		Additionals: "nets/ring.add.xml",
	}, PathsFor("nets/ring"))
}

func TestWriteFile_Error(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, g := defaultRing(t)
	err := WriteFile(Nodes(g, invocation), filepath.Join(blocker, "ring.nod.xml"))
	assert.Error(t, err)
}
