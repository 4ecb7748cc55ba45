package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/editor"
	"github.com/iw2rmb/scribe/filetype"
)

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

// openBuffer loads path, or starts an empty buffer that will be saved there
// when the file does not exist yet.
func openBuffer(path string, reg *filetype.Registry) (*buffer.Buffer, error) {
	opt := buffer.Options{FileTypes: reg, Path: path}
	if path == "" {
		return buffer.New("", opt), nil
	}
	b, err := buffer.Open(path, opt)
	if errors.Is(err, fs.ErrNotExist) {
		return buffer.New("", opt), nil
	}
	return b, err
}

func run(args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("scribe", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprintln(stderr, "usage: scribe [--version] [file]")
	}
	showVersion := fset.Bool("version", false, "print the version and exit")
	if err := fset.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Fprintln(stdout, scribe.Banner())
		return 0
	}
	if fset.NArg() > 1 {
		fset.Usage()
		return 2
	}
	path := fset.Arg(0)

	lc, err := resolveLogConfig(os.Getenv)
	if err != nil {
		fmt.Fprintf(stderr, "scribe: %v\n", err)
		return 1
	}
	if lc.logFile != nil {
		defer lc.logFile.Close()
	}
	log := lc.logger()

	reg := filetype.Builtin(log)
	if n, err := reg.LoadDir(os.Getenv("SCRIBE_PROFILES")); err != nil {
		log.Warn("profiles not loaded", "err", err)
	} else if n > 0 {
		log.Info("loaded profiles", "count", n)
	}

	buf, err := openBuffer(path, reg)
	if err != nil {
		fmt.Fprintf(stderr, "scribe: %v\n", err)
		return 1
	}
	log.Info("editing", "path", path, "lines", buf.LineCount(), "filetype", buf.FileType())

	lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	m := model{editor: editor.New(buf, editor.Config{
		ShowLineNums: true,
		Style:        editor.DefaultStyle(),
		Logger:       log,
	})}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if path != "" {
		notify := func(msg editor.DiskChangedMsg) { p.Send(msg) }
		if err := watchFile(ctx, path, notify, log); err != nil {
			log.Warn("file watch disabled", "err", err)
		}
	}

	if _, err := p.Run(); err != nil {
		log.Error("program exited", "err", err)
		fmt.Fprintf(stderr, "scribe: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

