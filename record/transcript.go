// Package record writes a plain-text transcript of a goose game as it is played.
package record

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	unfinished   = "?"
	maxSameStamp = 100
)

// Transcript tracks a game in progress and keeps its file up to date.
type Transcript struct {
	FilePath string
	Date     string
	Seed     int64
	Players  []string
	Result   string
	lines    []string
	file     *os.File
}

// NewTranscript creates a new transcript file in dir and writes the header.
func NewTranscript(dir string, seed int64, players []string) (*Transcript, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	now := time.Now()
	f, path, err := createUnique(dir, now.Format("2006-01-02_150405"))
	if err != nil {
		return nil, err
	}

	tr := &Transcript{
		FilePath: path,
		Date:     now.Format("2006-01-02 15:04:05"),
		Seed:     seed,
		Players:  players,
		Result:   unfinished,
		file:     f,
	}

	if err := tr.flush(); err != nil {
		f.Close()
		return nil, err
	}

	return tr, nil
}

// createUnique creates a new transcript file named after stamp. Files that
// already exist are never reused; a counter is added to the name instead.
func createUnique(dir, stamp string) (*os.File, string, error) {
	for n := 1; n <= maxSameStamp; n++ {
		filename := fmt.Sprintf("%s_oca.txt", stamp)
		if n > 1 {
			filename = fmt.Sprintf("%s_oca-%d.txt", stamp, n)
		}
		path := filepath.Join(dir, filename)
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("create transcript file: %w", err)
		}
	}
	return nil, "", fmt.Errorf("create transcript file: too many transcripts for %s", stamp)
}

// Append adds one log message to the transcript.
func (t *Transcript) Append(msg string) error {
	t.lines = append(t.lines, msg)
	return t.flush()
}

// Finish records the winner.
func (t *Transcript) Finish(winner string) error {
	t.Result = winner
	return t.flush()
}

// Close performs a final flush and closes the file handle.
func (t *Transcript) Close() error {
	if t.file == nil {
		return nil
	}
	err := t.flush()
	if cerr := t.file.Close(); err == nil {
		err = cerr
	}
	t.file = nil
	return err
}

// flush rewrites the complete transcript from scratch.
func (t *Transcript) flush() error {
	if t.file == nil {
		return fmt.Errorf("file already closed")
	}

	var b strings.Builder
	b.WriteString("# El juego de la OCA\n")
	b.WriteString(fmt.Sprintf("# Fecha: %s\n", t.Date))
	b.WriteString(fmt.Sprintf("# Semilla: %d\n", t.Seed))
	b.WriteString(fmt.Sprintf("# Jugadores: %s\n", strings.Join(t.Players, ", ")))
	b.WriteString(fmt.Sprintf("# Ganador: %s\n", t.Result))
	b.WriteString("\n")

	for i, line := range t.lines {
		b.WriteString(fmt.Sprintf("%4d. %s\n", i+1, line))
	}

	if _, err := t.file.Seek(0, 0); err != nil {
		return err
	}
	if err := t.file.Truncate(0); err != nil {
		return err
	}
	if _, err := t.file.WriteString(b.String()); err != nil {
		return err
	}
	return t.file.Sync()
}
