// Command arflow inspects and exercises the AR painting workflows: it draws
// their state diagrams, validates and exports their transition graphs, and
// runs interactive or scripted sessions against them.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/amp-labs/arflow/cli"
	"github.com/amp-labs/arflow/config"
	"github.com/amp-labs/arflow/envutil"
	"github.com/amp-labs/arflow/logger"
	"github.com/amp-labs/arflow/script"
	"github.com/amp-labs/arflow/statemachine"
	"github.com/amp-labs/arflow/statemachine/validator"
	"github.com/amp-labs/arflow/statemachine/visualizer"
)

const (
	defaultCaptureDelay = 1500 * time.Millisecond

	// EnvNoBanner suppresses the banner printed before subcommands.
	EnvNoBanner = "ARFLOW_NO_BANNER"
)

const usage = `usage: arflow <command> [flags] [workflow]

commands:
  list                 show the registered workflows
  diagram <workflow>   print a Mermaid state diagram
  validate [workflow]  check workflow graphs, or a graph file with -file
  export <workflow>    print the transition graph as YAML or JSON
  simulate <workflow>  run a session, interactively or with -steps
`

// ErrUsage is returned when the command line cannot be understood.
var ErrUsage = errors.New("usage error")

type app struct {
	out     io.Writer
	term    cli.Terminal
	tracing bool
}

func main() {
	script.New("arflow", script.WithEnvFiles(".env")).Run(func(ctx context.Context, args []string) error {
		a := &app{
			out:     os.Stdout,
			term:    cli.Std,
			tracing: script.Telemetry(ctx).TracingEnabled(),
		}

		return a.run(ctx, args)
	})
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		_, _ = fmt.Fprint(a.out, usage)

		return script.Exit(2) //nolint:mnd
	}

	cfg, err := config.LoadFromEnv(ctx)
	if err != nil {
		return err
	}

	ctx = config.WithConfig(ctx, cfg)
	cmd, rest := args[0], args[1:]

	logger.Get(ctx).Debug("running command", "command", cmd, "args", rest)

	switch cmd {
	case "list":
		return a.list(ctx)
	case "diagram":
		return a.diagram(ctx, rest)
	case "validate":
		return a.validate(ctx, rest)
	case "export":
		return a.export(ctx, rest)
	case "simulate":
		return a.simulateCmd(ctx, rest)
	case "help", "-h", "--help":
		_, _ = fmt.Fprint(a.out, usage)

		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)

	return fs
}

// oneWorkflow expects exactly one positional workflow name.
func oneWorkflow(fs *flag.FlagSet) (workflow, error) {
	if fs.NArg() != 1 {
		return workflow{}, fmt.Errorf("%w: %s needs exactly one workflow", ErrUsage, fs.Name())
	}

	return lookup(fs.Arg(0))
}

func (a *app) list(ctx context.Context) error {
	cfg := config.FromCtx(ctx)

	for _, name := range workflowNames() {
		wf := registry[name]

		graph, err := wf.graph(cfg)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(a.out, "%-12s %2d states %2d events %3d transitions  %s\n",
			name, len(graph.States), len(graph.Events), len(graph.Edges), wf.summary)
	}

	return nil
}

func (a *app) diagram(ctx context.Context, args []string) error {
	fs := a.flags("diagram")
	direction := fs.String("direction", "TB", "diagram direction: TB, BT, LR or RL")
	theme := fs.String("theme", "default", "mermaid theme")
	hideReset := fs.Bool("hide-reset", false, "leave out reset transitions")
	noCommands := fs.Bool("no-commands", false, "leave commands out of edge labels")
	noSelfLoops := fs.Bool("no-self-loops", false, "leave out transitions that keep the state")
	highlight := fs.String("highlight", "", "comma separated path of states to highlight")

	if err := fs.Parse(args); err != nil {
		return err
	}

	wf, err := oneWorkflow(fs)
	if err != nil {
		return err
	}

	graph, err := wf.graph(config.FromCtx(ctx))
	if err != nil {
		return err
	}

	opts := visualizer.DefaultOptions().
		WithDirection(*direction).
		WithTheme(*theme).
		WithShowCommands(!*noCommands).
		WithShowSelfLoops(!*noSelfLoops)

	if *hideReset {
		opts = opts.WithHideEvents(validator.ResetEvent)
	}

	if *highlight != "" {
		opts = opts.WithHighlightPath(strings.Split(*highlight, ","))
	}

	diagram, err := visualizer.GenerateMermaidFromGraph(graph, opts)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(a.out, diagram)

	return nil
}

func (a *app) validate(ctx context.Context, args []string) error {
	fs := a.flags("validate")
	file := fs.String("file", "", "validate an exported graph file instead of a registered workflow")
	strict := fs.Bool("strict", false, "treat warnings as errors")

	if err := fs.Parse(args); err != nil {
		return err
	}

	graphs, err := a.graphsToValidate(ctx, fs, *file)
	if err != nil {
		return err
	}

	failed := 0

	for _, graph := range graphs {
		result := validator.ValidateGraph(graph, validator.DefaultRules())
		if *strict {
			result = result.Strict()
		}

		_, _ = fmt.Fprintf(a.out, "%s: %s\n", graph.Workflow, result.String())

		if result.HasErrors() {
			failed++
		}
	}

	if failed > 0 {
		return script.ExitWithErrorMessage("%d of %d workflows failed validation", failed, len(graphs))
	}

	return nil
}

func (a *app) graphsToValidate(ctx context.Context, fs *flag.FlagSet, file string) ([]statemachine.Graph, error) {
	if file != "" {
		if fs.NArg() > 0 {
			return nil, fmt.Errorf("%w: -file and a workflow name are exclusive", ErrUsage)
		}

		graph, err := statemachine.LoadGraph(file)
		if err != nil {
			return nil, err
		}

		return []statemachine.Graph{graph}, nil
	}

	names := fs.Args()
	if len(names) == 0 {
		names = workflowNames()
	}

	graphs := make([]statemachine.Graph, 0, len(names))

	for _, name := range names {
		wf, err := lookup(name)
		if err != nil {
			return nil, err
		}

		graph, err := wf.graph(config.FromCtx(ctx))
		if err != nil {
			return nil, err
		}

		graphs = append(graphs, graph)
	}

	return graphs, nil
}

func (a *app) export(ctx context.Context, args []string) error {
	fs := a.flags("export")
	format := fs.String("format", "yaml", "output format: yaml or json")

	if err := fs.Parse(args); err != nil {
		return err
	}

	wf, err := oneWorkflow(fs)
	if err != nil {
		return err
	}

	graph, err := wf.graph(config.FromCtx(ctx))
	if err != nil {
		return err
	}

	var data []byte

	switch *format {
	case "yaml", "yml":
		data, err = statemachine.MarshalGraph(graph)
	case "json":
		data, err = json.MarshalIndent(graph.Document(), "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("%w: unknown format %q", ErrUsage, *format)
	}

	if err != nil {
		return err
	}

	_, err = a.out.Write(data)

	return err
}

func (a *app) simulateCmd(ctx context.Context, args []string) error {
	fs := a.flags("simulate")
	steps := fs.String("steps", "", "comma separated steps to run instead of prompting, e.g. tutorial_done,reset")
	delay := fs.Duration("capture-delay", defaultCaptureDelay, "how long simulated sensor captures take")
	session := fs.String("session", "", "analytics session id (random when empty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	wf, err := oneWorkflow(fs)
	if err != nil {
		return err
	}

	if !envutil.Bool(ctx, EnvNoBanner, envutil.Default(false)).ValueOrElse(false) {
		_, _ = fmt.Fprintln(a.out, cli.Banner(cli.DefaultWidth, "arflow simulator", wf.name+": "+wf.summary))
	}

	opts := simOptions{delay: *delay, session: *session}

	for _, step := range strings.Split(*steps, ",") {
		if step = strings.TrimSpace(step); step != "" {
			opts.steps = append(opts.steps, step)
		}
	}

	return a.simulate(ctx, wf, config.FromCtx(ctx), opts)
}
