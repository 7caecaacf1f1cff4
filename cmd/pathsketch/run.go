package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pathsketch/grid"
	"github.com/katalvlaran/pathsketch/scene"
	"github.com/sirupsen/logrus"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitUnreachable = 3
)

// errUnreachable marks a check that found no route; it exits with its own code.
var errUnreachable = errors.New("end is not reachable from start")

// env carries the process streams so commands can be driven from tests.
type env struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	log            *logrus.Logger
}

type command struct {
	name, summary string
	run           func(e *env, g *grid.Grid, fs *flag.FlagSet) error
	flags         func(fs *flag.FlagSet)
}

var commands = []command{
	{name: "problem", summary: "print the solver problem as JSON", run: runProblem},
	{name: "solve", summary: "apply solver output and show the paths", run: runSolve, flags: solveFlags},
	{name: "check", summary: "report whether end is reachable from start", run: runCheck},
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: pathsketch <command> -scene file.toml [options]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	var cmd *command
	for i := range commands {
		if commands[i].name == args[0] {
			cmd = &commands[i]
		}
	}
	if cmd == nil {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", args[0])
		usage(stderr)
		return exitUsage
	}

	fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenePath := fs.String("scene", "", "scene file (TOML)")
	level := fs.String("log-level", "", "override settings.log_level")
	if cmd.flags != nil {
		cmd.flags(fs)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return exitUsage
	}
	if *scenePath == "" {
		fmt.Fprintf(stderr, "Error: -scene is required\n")
		fs.Usage()
		return exitUsage
	}

	e := &env{stdin: stdin, stdout: stdout, stderr: stderr, log: logrus.New()}
	e.log.SetOutput(stderr)
	e.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	sc, err := scene.Load(*scenePath)
	if err != nil {
		e.log.WithError(err).Error("load scene")
		return exitFailure
	}
	if *level != "" {
		sc.Settings.LogLevel = *level
	}
	lvl, err := sc.Settings.Level()
	if err != nil {
		e.log.WithError(err).Error("log level")
		return exitUsage
	}
	e.log.SetLevel(lvl)

	g, err := sc.Build(grid.WithLogger(e.log))
	if err != nil {
		e.log.WithError(err).Error("build scene")
		return exitFailure
	}
	e.log.WithFields(logrus.Fields{
		"scene":  *scenePath,
		"width":  g.Width(),
		"height": g.Height(),
	}).Debug("scene loaded")

	switch err := cmd.run(e, g, fs); {
	case err == nil:
		return exitOK
	case errors.Is(err, errUnreachable):
		return exitUnreachable
	default:
		e.log.WithError(err).Error(cmd.name)
		return exitFailure
	}
}

func runProblem(e *env, g *grid.Grid, _ *flag.FlagSet) error {
	p, err := g.Problem()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(e.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func solveFlags(fs *flag.FlagSet) {
	fs.String("output", "-", "solver output file, - for stdin")
}

func runSolve(e *env, g *grid.Grid, fs *flag.FlagSet) error {
	var r io.Reader = e.stdin
	if name := fs.Lookup("output").Value.String(); name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read solver output: %w", err)
	}
	if err := g.ApplySolution(string(text)); err != nil {
		return err
	}
	for _, p := range g.Paths() {
		fmt.Fprintf(e.stdout, "path %d (label %d, color %d, %d cells): %v\n", p.ID, p.Label, p.ColorIndex(), p.Len(), p.Cells)
	}
	fmt.Fprintln(e.stdout)
	return render(e.stdout, g)
}

func runCheck(e *env, g *grid.Grid, _ *flag.FlagSet) error {
	ok, err := g.Reachable()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(e.stdout, "unreachable")
		return errUnreachable
	}
	fmt.Fprintln(e.stdout, "reachable")
	return nil
}
