package linenoise

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	"go.uber.org/multierr"
)

type LineNoise struct {
	*liner.State
	historyFile string
}

// New puts the terminal into line-editing mode. History is loaded from
// historyFile when it is not empty, and saved back to it on Close.
func New(historyFile string) *LineNoise {
	ln := &LineNoise{State: liner.NewLiner(), historyFile: historyFile}
	ln.SetCtrlCAborts(true)
	if historyFile != "" {
		// a missing history file is normal on first run
		_ = ln.HistoryLoad(historyFile)
	}
	return ln
}

func (ln *LineNoise) HistoryLoad(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	_, err = ln.ReadHistory(bytes.NewReader(content))
	return err
}

func (ln *LineNoise) HistorySave(filepath string) error {
	var buf bytes.Buffer
	_, err := ln.WriteHistory(&buf)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, buf.Bytes(), 0644)
}

func (ln *LineNoise) ClearScreen(w io.Writer) error {
	_, err := fmt.Fprint(w, "\x1b[H\x1b[2J")
	return err
}

// Close saves history and restores the terminal.
func (ln *LineNoise) Close() error {
	var err error
	if ln.historyFile != "" {
		err = multierr.Append(err, ln.HistorySave(ln.historyFile))
	}
	return multierr.Append(err, ln.State.Close())
}
