package sumoxml

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/specialistvlad/ringgen/internal/fsutil"
)

// File name suffixes of the generated artifacts.
const (
	NodesExt       = ".nod.xml"
	EdgesExt       = ".edg.xml"
	NetworkExt     = ".net.xml"
	AdditionalsExt = ".add.xml"
)

// Paths are the artifact paths derived from an output name.
type Paths struct {
	Nodes       string
	Edges       string
	Network     string
	Additionals string
}

// PathsFor returns the artifact paths for the given output name. The name may
// contain directories.
func PathsFor(name string) Paths {
	return Paths{
		Nodes:       name + NodesExt,
		Edges:       name + EdgesExt,
		Network:     name + NetworkExt,
		Additionals: name + AdditionalsExt,
	}
}

// WriteFile writes the document to path, creating missing parent
// directories. A failed write may leave a partial file behind.
func WriteFile(doc *etree.Document, path string) error {
	if err := fsutil.EnsureParentDir(path); err != nil {
		return err
	}
	if err := doc.WriteToFile(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
