package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/specialistvlad/ringgen/internal/config"
	"github.com/specialistvlad/ringgen/internal/ctxlog"
	"github.com/specialistvlad/ringgen/internal/geometry"
	"github.com/specialistvlad/ringgen/internal/netconvert"
	"github.com/specialistvlad/ringgen/internal/ring"
	"github.com/specialistvlad/ringgen/internal/sumoxml"
	"github.com/specialistvlad/ringgen/internal/topology"
)

// CompileError reports that the network could not be compiled. The plain
// XML files and the additionals have been written regardless.
type CompileError struct {
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("Error in network creation: %v", e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Run executes the ring generation pipeline once.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	fileModel, err := a.loadFile(ctx)
	if err != nil {
		return err
	}

	input := ring.DefaultInput()
	fileModel.Ring.Apply(&input)
	a.config.Flags.Ring.Apply(&input)

	params, err := ring.Resolve(input)
	if err != nil {
		return err
	}
	a.logger.Debug("Parameters resolved.",
		"radius", params.Radius, "edges", params.Edges, "lanes", params.Lanes,
		"speed", params.Speed, "side", params.Side, "from_dimension", params.FromDimension)

	g := geometry.Build(params)
	loop, err := topology.NewLoop(loopEdges(g))
	if err != nil {
		return fmt.Errorf("invalid ring topology: %w", err)
	}

	paths := sumoxml.PathsFor(params.Name)
	invocation := a.config.Invocation

	if err := a.write(ctx, "nodes", paths.Nodes, sumoxml.Nodes(g, invocation)); err != nil {
		return err
	}
	if err := a.write(ctx, "edges", paths.Edges, sumoxml.Edges(g, params, invocation)); err != nil {
		return err
	}

	compileErr := a.compile(ctxlog.WithStage(ctx, "netconvert"), fileModel, paths)

	// Additionals do not depend on the compiled network and are written even
	// when compilation failed.
	if err := a.write(ctx, "additionals", paths.Additionals, sumoxml.Additionals(loop, invocation)); err != nil {
		return err
	}

	if compileErr != nil {
		return &CompileError{Err: compileErr}
	}

	fmt.Fprintf(a.outW, "Network length -> %.2f\n", g.Length)
	fmt.Fprintln(a.outW, "Success.")
	a.logger.Debug("App.Run method finished.")
	return nil
}

// loadFile reads the optional parameter file. Without one an empty model is
// returned.
func (a *App) loadFile(ctx context.Context) (*config.Model, error) {
	if a.config.ConfigPath == "" {
		return &config.Model{}, nil
	}
	model, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Debug("Configuration file loaded.", "path", a.config.ConfigPath)
	return model, nil
}

func (a *App) write(ctx context.Context, kind, path string, doc *etree.Document) error {
	logger := ctxlog.FromContext(ctxlog.WithStage(ctx, "serialize"))
	logger.Debug("Creating file.", "kind", kind, "path", path)
	if err := sumoxml.WriteFile(doc, path); err != nil {
		return fmt.Errorf("failed to create %s file: %w", kind, err)
	}
	logger.Info("File written.", "kind", kind, "path", path)
	return nil
}

func (a *App) compile(ctx context.Context, fileModel *config.Model, paths sumoxml.Paths) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Building net file...", "output", paths.Network)

	err := a.compilerFor(fileModel).Compile(ctx, netconvert.Job{
		EdgeFile:   paths.Edges,
		NodeFile:   paths.Nodes,
		OutputFile: paths.Network,
	})
	if err != nil {
		var launchErr *netconvert.LaunchError
		if errors.As(err, &launchErr) {
			logger.Error(netconvert.Hint, "error", err)
		} else {
			logger.Error("Error in network creation.", "error", err)
		}
		return err
	}

	logger.Info("Net file written.", "path", paths.Network)
	return nil
}

// compilerFor returns the injected compiler, or a netconvert runner whose
// binary is chosen by precedence: parameter file < environment < flags.
func (a *App) compilerFor(fileModel *config.Model) Compiler {
	if a.compiler != nil {
		return a.compiler
	}

	runner := netconvert.NewRunner(a.outW, a.outW)
	if nc := fileModel.Netconvert; nc != nil {
		if nc.Binary != nil && os.Getenv(netconvert.BinaryEnv) == "" {
			runner.Binary = *nc.Binary
		}
		runner.ExtraArgs = append(runner.ExtraArgs, nc.Args...)
	}
	if nc := a.config.Flags.Netconvert; nc != nil {
		if nc.Binary != nil {
			runner.Binary = *nc.Binary
		}
		runner.ExtraArgs = append(runner.ExtraArgs, nc.Args...)
	}
	return runner
}

func loopEdges(g geometry.Ring) []topology.Edge {
	edges := make([]topology.Edge, 0, len(g.Arcs))
	for _, arc := range g.Arcs {
		edges = append(edges, topology.Edge{ID: arc.EdgeID, From: arc.From, To: arc.To})
	}
	return edges
}
