package repl

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/synbuild/cli/cmd"
	"github.com/ardnew/synbuild/log"
)

// TestHistory_WriteWithMode verifies entries persist with their mode and
// duplicates move to the end.
func TestHistory_WriteWithMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), baseHistory)
	h := NewHistory(path)

	for _, e := range []HistoryEntry{
		{`item_enum("a")`, modeEval},
		{"help", modeCtrl},
		{`item_enum("a")`, modeEval},
		{`item_enum("a")`, modeEval},
		{"  ", modeEval},
		{"help", modeEval},
	} {
		_, err := h.WriteWithMode(e.Line, e.Mode)
		require.NoError(t, err)
	}

	want := []HistoryEntry{
		{"help", modeCtrl},
		{`item_enum("a")`, modeEval},
		{"help", modeEval},
	}
	assert.Equal(t, want, h.Entries())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "C:help\nE:item_enum(\"a\")\nE:help\n", string(data))

	loaded := NewHistory(path)
	require.NoError(t, loaded.Load())
	assert.Equal(t, want, loaded.Entries())
}

// TestHistory_Load verifies parsing of mode markers.
func TestHistory_Load(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), baseHistory)
	require.NoError(t, os.WriteFile(path, []byte("E:lit(1)\n\nC:quit\nbare\n"), 0o600))

	h := NewHistory(path)
	require.NoError(t, h.Load())

	assert.Equal(t, []HistoryEntry{
		{"lit(1)", modeEval},
		{"quit", modeCtrl},
		{"bare", modeEval},
	}, h.Entries())
}

// TestHistory_Missing verifies a missing file loads as empty.
func TestHistory_Missing(t *testing.T) {
	t.Parallel()

	h := NewHistory(filepath.Join(t.TempDir(), "none", baseHistory))
	require.NoError(t, h.Load())
	assert.Zero(t, h.Len())

	_, err := h.GetEntry(0)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

// TestModel_HistoryStep verifies history navigation switches modes and
// honors the same-mode filter.
func TestModel_HistoryStep(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, modeEval, "")

	for _, e := range []HistoryEntry{
		{"lit(1)", modeEval},
		{"help", modeCtrl},
		{"lit(2)", modeEval},
	} {
		_, err := m.history.WriteWithMode(e.Line, e.Mode)
		require.NoError(t, err)
	}

	m.historyIdx = m.history.Len()

	m = m.historyStep(-1, false)
	assert.Equal(t, "lit(2)", m.input.Value())

	m = m.historyStep(-1, false)
	assert.Equal(t, "help", m.input.Value())
	assert.Equal(t, modeCtrl, m.mode)

	m = m.switchToMode(modeEval)
	m = m.historyStep(1, true)
	assert.Equal(t, "lit(2)", m.input.Value())

	m = m.historyStep(1, false)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, m.history.Len(), m.historyIdx)

	m = m.historyStep(-1, true)
	m = m.historyStep(-1, true)
	assert.Equal(t, "lit(1)", m.input.Value())
	assert.Equal(t, 0, m.historyIdx)
}

// TestModel_HistoryWriteError verifies that a failed history write is logged
// and the input still runs.
func TestModel_HistoryWriteError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithLevel(log.LevelDebug),
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
	)

	missing := filepath.Join(t.TempDir(), "missing", baseHistory)
	m := newModel(context.Background(), cmd.Output{Format: cmd.FormatRust},
		NewHistory(missing), logger)

	m.input.SetValue("lit(1)")

	m, c := m.executeInput()
	assert.NotNil(t, c)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, 1, m.history.Len())
	assert.Contains(t, buf.String(), `msg="history write failed"`)
	assert.Contains(t, buf.String(), "path="+missing)
}
