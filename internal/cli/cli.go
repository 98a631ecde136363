package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/ringgen/internal/app"
	"github.com/specialistvlad/ringgen/internal/config"
	"github.com/specialistvlad/ringgen/internal/netconvert"
	"github.com/specialistvlad/ringgen/internal/ring"
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitValidation = 1
	ExitCompile    = 2
)

// ProgramName is recorded as the first word of the invocation.
const ProgramName = "ringgen"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet(ProgramName, flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
ringgen - Create a circular road to be used in SUMO.

Generates <name>.nod.xml and <name>.edg.xml, compiles them into <name>.net.xml
with netconvert and writes routes and rerouters to <name>.add.xml. Vehicle
definitions must be written by hand.

Usage:
  ringgen [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	var (
		radius    = ring.DefaultRadius
		name      = ring.DefaultName
		edges     = ring.DefaultEdges
		lanes     = ring.DefaultLanes
		speed     = ring.DefaultSpeed
		dimension float64
		cfgPath   string
	)
	flagSet.Float64Var(&radius, "radius", radius, "Radius of the circle in metres (min 10).")
	flagSet.Float64Var(&radius, "r", radius, "Radius (shorthand).")
	flagSet.StringVar(&name, "name", name, "Name of the output files.")
	flagSet.StringVar(&name, "n", name, "Name (shorthand).")
	flagSet.IntVar(&edges, "edges", edges, "Number of edges.")
	flagSet.IntVar(&edges, "e", edges, "Number of edges (shorthand).")
	flagSet.IntVar(&lanes, "lanes", lanes, "Number of lanes.")
	flagSet.IntVar(&lanes, "l", lanes, "Number of lanes (shorthand).")
	flagSet.Float64Var(&speed, "speed", speed, "Maximum speed allowed in m/s.")
	flagSet.Float64Var(&speed, "s", speed, "Maximum speed (shorthand).")
	flagSet.Float64Var(&dimension, "dimension", 0, "Total length of the ring. If present overrides radius.")
	flagSet.Float64Var(&dimension, "d", 0, "Total length (shorthand).")
	flagSet.StringVar(&cfgPath, "config", "", "Path to an .hcl parameter file or a directory of them.")
	flagSet.StringVar(&cfgPath, "c", "", "Parameter file (shorthand).")
	netconvertFlag := flagSet.String("netconvert", "", "netconvert binary name or path. Defaults to $"+netconvert.BinaryEnv+" or 'netconvert'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitValidation, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{
			Code:    ExitValidation,
			Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0)),
		}
	}

	// Only explicitly set flags override the parameter file.
	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	isSet := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}

	r := &config.Ring{}
	if isSet("radius", "r") {
		r.Radius = &radius
	}
	if isSet("name", "n") {
		r.Name = &name
	}
	if isSet("edges", "e") {
		r.Edges = &edges
	}
	if isSet("lanes", "l") {
		r.Lanes = &lanes
	}
	if isSet("speed", "s") {
		r.Speed = &speed
	}
	if isSet("dimension", "d") {
		r.Dimension = &dimension
	}
	flags := config.Model{Ring: r}
	if isSet("netconvert") {
		flags.Netconvert = &config.Netconvert{Binary: netconvertFlag}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitValidation, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitValidation, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		ConfigPath: cfgPath,
		Flags:      flags,
		Invocation: Invocation(args),
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitValidation, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config_path", cfgPath)
	return cfg, false, nil
}

// Invocation renders the command line recorded in generated files.
func Invocation(args []string) string {
	return strings.Join(append([]string{ProgramName}, args...), " ")
}

// FromRunError maps a pipeline error onto the process exit code contract:
// validation failures exit 1, compilation failures exit 2 and everything
// else exits 1.
func FromRunError(err error) *ExitError {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	var verr *ring.ValidationError
	if errors.As(err, &verr) {
		return &ExitError{Code: ExitValidation, Message: verr.Message}
	}
	var compileErr *app.CompileError
	if errors.As(err, &compileErr) {
		return &ExitError{Code: ExitCompile, Message: "Error in network creation"}
	}
	return &ExitError{Code: ExitValidation, Message: err.Error()}
}
