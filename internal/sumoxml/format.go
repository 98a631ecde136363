package sumoxml

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/specialistvlad/ringgen/internal/geometry"
)

const indentSpaces = 4

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// decimal matches printf's %f.
func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func shapeAttr(pts []geometry.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = coord(p.X) + "," + coord(p.Y)
	}
	return strings.Join(parts, " ")
}

// newDocument starts a document with the generator comment.
func newDocument(invocation string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateComment(" " + GeneratedComment(invocation) + " ")
	return doc
}

// GeneratedComment returns the comment text recording how a file was made.
// XML forbids "--" inside comments, so flag prefixes are split apart.
func GeneratedComment(invocation string) string {
	for strings.Contains(invocation, "--") {
		invocation = strings.ReplaceAll(invocation, "--", "- -")
	}
	return "Generated with " + invocation
}
