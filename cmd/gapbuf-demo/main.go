package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gapbuf"
	"github.com/iw2rmb/gapbuf/editor"
)

type model struct {
	editor editor.Model
	path   string
	logger *slog.Logger
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

// save writes the raw buffer bytes back to the file the demo was opened with.
func (m model) save() {
	if m.path == "" {
		return
	}
	f, err := os.Create(m.path)
	if err != nil {
		m.logger.Error("save failed", "path", m.path, "err", err)
		return
	}
	n, err := m.editor.Buffer().WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		m.logger.Error("save failed", "path", m.path, "err", err)
		return
	}
	m.logger.Info("saved", "path", m.path, "bytes", n)
}

func run() error {
	configPath := flag.String("config", "", "TOML config file")
	logPath := flag.String("log", "", "write debug log to this file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(gapbuf.VersionTag())
		return nil
	}

	logger := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "gapbuf")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	enc, err := cfg.encoding()
	if err != nil {
		return err
	}
	text, err := cfg.initialText(enc)
	if err != nil {
		return err
	}

	path := flag.Arg(0)
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			// File bytes are already in the buffer encoding.
			text = string(data)
		case errors.Is(err, fs.ErrNotExist):
			text = ""
		default:
			return fmt.Errorf("open %s: %w", path, err)
		}
	}

	ed := editor.New(editor.Config{
		Text:       text,
		Capacity:   cfg.Capacity,
		GapSize:    cfg.GapSize,
		Logger:     logger,
		Encoding:   enc,
		ReadOnly:   cfg.ReadOnly,
		ShowStatus: cfg.showStatus(),
		Style:      editor.DefaultStyle(),
		OnChange: func(ev editor.ChangeEvent) {
			logger.Debug("buffer changed", "version", ev.Version, "point", ev.Point, "len", ev.Len, "edits", len(ev.Edits))
		},
	})
	logger.Info("starting", "version", gapbuf.Version(), "path", path, "encoding", cfg.Encoding)

	p := tea.NewProgram(model{editor: ed, path: path, logger: logger}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
