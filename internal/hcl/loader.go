package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/ringgen/internal/config"
	"github.com/specialistvlad/ringgen/internal/ctxlog"
	"github.com/specialistvlad/ringgen/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes every top-level block a parameter file may hold.
type fileRoot struct {
	Rings      []*ringBlock       `hcl:"ring,block"`
	Netconvert []*netconvertBlock `hcl:"netconvert,block"`
}

// ringBlock is a `ring "<output name>" { ... }` block.
type ringBlock struct {
	Name      string   `hcl:"name,label"`
	Radius    *float64 `hcl:"radius,optional"`
	Dimension *float64 `hcl:"dimension,optional"`
	Edges     *int     `hcl:"edges,optional"`
	Lanes     *int     `hcl:"lanes,optional"`
	Speed     *float64 `hcl:"speed,optional"`
}

// netconvertBlock configures the external compiler.
type netconvertBlock struct {
	Binary *string  `hcl:"binary,optional"`
	Args   []string `hcl:"args,optional"`
}

// Load parses every .hcl file found at the given paths and merges them, in
// order, into one model. Only a single ring block is allowed overall.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error accessing config path %s: %w", path, err)
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no .hcl files found at %s", path)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext()
	model := &config.Model{}
	var ringFile string

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, rb := range root.Rings {
			if ringFile != "" || len(root.Rings) > 1 {
				return nil, fmt.Errorf("only one ring block is allowed, found another in %s", file)
			}
			ringFile = file
			model.Merge(&config.Model{Ring: translateRing(rb)})
		}
		for _, nb := range root.Netconvert {
			model.Merge(&config.Model{Netconvert: translateNetconvert(nb)})
		}
	}

	logger.Debug("HCL loading complete.", "files", len(files), "has_ring", model.Ring != nil)
	return model, nil
}

func translateRing(b *ringBlock) *config.Ring {
	name := b.Name
	return &config.Ring{
		Name:      &name,
		Radius:    b.Radius,
		Dimension: b.Dimension,
		Edges:     b.Edges,
		Lanes:     b.Lanes,
		Speed:     b.Speed,
	}
}

func translateNetconvert(b *netconvertBlock) *config.Netconvert {
	return &config.Netconvert{
		Binary: b.Binary,
		Args:   b.Args,
	}
}

var _ config.Loader = (*Loader)(nil)

// Diagnostics is re-exported so callers can inspect HCL errors without
// importing the HCL module themselves.
type Diagnostics = hcl.Diagnostics
