// Command gitdiff compares two trees in a git repository and shows the
// result as a stat summary or an interactive viewer.
//
// Usage:
//
//	gitdiff [flags] [<from> [<to>]] [-- <path>...]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/fwojciec/gitcmd/bubbletea"
	"github.com/fwojciec/gitcmd/chroma"
	"github.com/fwojciec/gitcmd/fs"
	"github.com/fwojciec/gitcmd/gitdiff"
	"github.com/fwojciec/gitcmd/runner"
	"github.com/fwojciec/gitcmd/zerolog"
)

func main() {
	var (
		dir     = flag.String("C", ".", "repository directory")
		raw     = flag.Bool("raw", false, "show raw change kinds instead of the viewer")
		stat    = flag.Bool("stat", false, "show a stat summary instead of the viewer")
		dirstat = flag.Bool("dirstat", false, "include directory-level change percentages")
		verbose = flag.Bool("v", false, "log executed git commands")
	)
	flag.Parse()

	// Optional env file, e.g. for GITCMD_GIT_BIN.
	_ = godotenv.Load(fs.DefaultEnvFile())

	level := "warn"
	if *verbose {
		level = "debug"
	}
	log := zerolog.NewConsole(os.Stderr, level)

	from, to, paths := splitArgs(flag.Args())

	app := &App{
		Runner:  runner.New(runner.WithBinary(os.Getenv("GITCMD_GIT_BIN")), runner.WithLogger(log)),
		Viewer:  bubbletea.NewViewer(gitdiff.NewParser(), chroma.NewTokenizer(), chroma.NewDetector()),
		Out:     os.Stdout,
		Log:     log,
		Dir:     *dir,
		From:    from,
		To:      to,
		Raw:     *raw,
		Stat:    *stat,
		Dirstat: *dirstat,
		Paths:   paths,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx); err != nil {
		if errors.Is(err, ErrNoChanges) {
			fmt.Fprintln(os.Stderr, "no changes")
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "gitdiff:", err)
		os.Exit(1)
	}
}

// splitArgs separates revision arguments from pathspecs after "--".
func splitArgs(args []string) (from, to string, paths []string) {
	revs := args
	for i, a := range args {
		if a == "--" {
			revs = args[:i]
			paths = args[i+1:]
			break
		}
	}
	if len(revs) > 0 {
		from = revs[0]
	}
	if len(revs) > 1 {
		to = revs[1]
	}
	return from, to, paths
}
