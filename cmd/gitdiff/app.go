package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/gitcmd"
)

// ErrNoChanges is returned when the requested comparison is empty.
var ErrNoChanges = errors.New("no changes")

// App wires the gitdiff command's dependencies together.
type App struct {
	Runner gitcmd.Runner
	Viewer gitcmd.Viewer // nil disables the TUI (stat output only)
	Out    io.Writer
	Log    gitcmd.Logger

	Dir     string
	From    string
	To      string
	Raw     bool
	Stat    bool
	Dirstat bool
	Paths   []string
}

// Run executes the requested comparison and either prints a summary or
// opens the interactive viewer.
func (a *App) Run(ctx context.Context) error {
	log := a.Log
	if log == nil {
		log = gitcmd.NopLogger{}
	}
	client := gitcmd.NewClient(a.Runner, a.Dir, gitcmd.WithLogger(log))
	opts := gitcmd.DiffOptions{Dirstat: a.Dirstat, Paths: a.Paths}

	switch {
	case a.Raw:
		diff, err := client.DiffRaw(ctx, a.From, a.To, opts)
		if err != nil {
			return err
		}
		return a.printRaw(diff)
	case a.Stat || a.Viewer == nil:
		diff, err := client.DiffStats(ctx, a.From, a.To, opts)
		if err != nil {
			return err
		}
		return a.printStats(diff)
	default:
		diff, err := client.Diff(ctx, a.From, a.To, opts)
		if err != nil {
			return err
		}
		if len(diff.Files) == 0 {
			return ErrNoChanges
		}
		return a.Viewer.View(ctx, diff)
	}
}

func (a *App) printStats(diff *gitcmd.DiffResult) error {
	if len(diff.Files) == 0 {
		return ErrNoChanges
	}
	for _, f := range diff.Files {
		name := f.Path
		if f.SrcPath != "" {
			name = f.SrcPath + " => " + f.Path
		}
		fmt.Fprintf(a.Out, "%5d %5d  %s\n", f.Insertions, f.Deletions, name)
	}
	fmt.Fprintf(a.Out, "%d files changed, %d insertions(+), %d deletions(-)\n",
		diff.FilesChanged, diff.Insertions, diff.Deletions)
	a.printDirstat(diff)
	return nil
}

func (a *App) printRaw(diff *gitcmd.DiffResult) error {
	if len(diff.Files) == 0 {
		return ErrNoChanges
	}
	for _, f := range diff.Files {
		name := f.Path
		if f.Status == gitcmd.StatusRenamed || f.Status == gitcmd.StatusCopied {
			name = fmt.Sprintf("%s => %s (%d%%)", f.SrcPath, f.Path, f.Similarity)
		}
		fmt.Fprintf(a.Out, "%-12s %s (+%d -%d)\n", f.Status, name, f.Insertions, f.Deletions)
	}
	a.printDirstat(diff)
	return nil
}

func (a *App) printDirstat(diff *gitcmd.DiffResult) {
	if diff.Dirstat == nil {
		return
	}
	for _, e := range diff.Dirstat.Entries {
		fmt.Fprintf(a.Out, "%6.1f%% %s\n", e.Percent, e.Dir)
	}
}
