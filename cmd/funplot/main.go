package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/funplot/internal/canvas"
	"github.com/funvibe/funplot/internal/config"
	"github.com/funvibe/funplot/internal/pipeline"
	"github.com/funvibe/funplot/internal/ui"
	"github.com/funvibe/funplot/internal/validate"
)

func main() {
	var (
		functionText string
		minText      string
		maxText      string
		themePath    string
		debugPath    string
	)
	flag.StringVar(&functionText, "f", "", "Function of x to plot, e.g. \"x^2+2\". Implies one-shot mode.")
	flag.StringVar(&minText, "min", "", "Minimum x value for one-shot mode.")
	flag.StringVar(&maxText, "max", "", "Maximum x value for one-shot mode.")
	flag.StringVar(&themePath, "theme", "", "Optional YAML theme file (presentation only).")
	flag.StringVar(&debugPath, "debug", "", "Write a debug log to this file.")
	flag.Parse()

	theme := config.DefaultTheme()
	if themePath != "" {
		var err error
		theme, err = config.LoadTheme(themePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	logger, closeLog, err := newLogger(debugPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Any of the three value flags selects one-shot mode; leaving one out is
	// itself a validation outcome worth showing (empty-field errors).
	if functionText != "" || minText != "" || maxText != "" {
		code := runOnce(functionText, minText, maxText, theme, logger)
		closeLog()
		os.Exit(code)
	}

	m := ui.NewModel(theme, logger)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runOnce performs a single validate-and-plot cycle against the flags and
// prints either the rendered curve or the field errors.
func runOnce(functionText, minText, maxText string, theme config.Theme, logger *slog.Logger) int {
	ctx := pipeline.NewPlotContext(functionText, minText, maxText)
	set, report := validate.Process(ctx)

	logger.Debug("plot request",
		"id", ctx.ID,
		"function", functionText,
		"min", minText,
		"max", maxText,
		"ok", report.OK(),
	)

	if set == nil {
		for _, msg := range []string{report.Function, report.Min, report.Max} {
			if msg != "" {
				fmt.Fprintln(os.Stderr, paintError(msg))
			}
		}
		return 1
	}

	c := canvas.New(theme)
	c.Draw(set.X, set.Y, set.Title())
	fmt.Println(c.View())
	return 0
}

// paintError colors a message red when stderr is an interactive terminal.
func paintError(msg string) string {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return "\x1b[31m" + msg + "\x1b[0m"
	}
	return msg
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
