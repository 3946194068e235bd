package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitjournal/fitjournal/internal/config"
	"github.com/fitjournal/fitjournal/internal/errors"
	"github.com/fitjournal/fitjournal/internal/output"
	"github.com/fitjournal/fitjournal/internal/session"
)

// resetFlags restores every flag to its default between executions.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	logCmd.Flags().VisitAll(reset)
}

// execute runs the CLI with args and stdin, capturing stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := Execute()
	return stdout.String(), stderr.String(), err
}

func historyPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), config.DefaultHistoryFile)
}

func readHistory(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// =============================================================================
// Interactive Session Tests
// =============================================================================

func TestRootRunsSession(t *testing.T) {
	path := historyPath(t)

	stdout, stderr, err := execute(t, "1\n1\n2024-01-28\n30\n\n6\n1\n", "--file", path)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-28 - Running - 30 minutes\n", readHistory(t, path))
	assert.Contains(t, stdout, "You logged: 2024-01-28 - Running - 30 minutes")
	assert.True(t, strings.HasSuffix(stdout, session.MsgFarewell+"\n"))
	assert.Empty(t, stderr)
}

func TestRootInputClosed(t *testing.T) {
	_, stderr, err := execute(t, "1\n", "--file", historyPath(t))

	assert.ErrorIs(t, err, errors.ErrInputClosed)
	assert.Contains(t, stderr, "Error: input closed")
}

func TestRootRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "", "bogus")
	assert.Error(t, err)
}

func TestRootUnknownStore(t *testing.T) {
	_, stderr, err := execute(t, "", "--store", "sqlite", "history")

	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
	assert.Contains(t, stderr, "--store file")
}

func TestRootUsesGlobalConfig(t *testing.T) {
	path := historyPath(t)
	prev := config.Global.History.File
	config.Global.History.File = path
	t.Cleanup(func() { config.Global.History.File = prev })

	_, _, err := execute(t, "", "log", "--type", "Yoga", "--duration", "20", "--date", "2024-01-28")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-28 - Yoga - 20 minutes\n", readHistory(t, path))
}

// =============================================================================
// History Command Tests
// =============================================================================

func TestHistoryCommand(t *testing.T) {
	t.Run("no_history", func(t *testing.T) {
		path := historyPath(t)
		stdout, _, err := execute(t, "", "--file", path, "history")
		require.NoError(t, err)
		assert.Contains(t, stdout, session.MsgNoHistory)
		assert.NoFileExists(t, path)
	})

	t.Run("empty_file", func(t *testing.T) {
		path := historyPath(t)
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		stdout, _, err := execute(t, "", "--file", path, "history")
		require.NoError(t, err)
		assert.Contains(t, stdout, session.MsgNoWorkouts)
	})

	t.Run("numbered", func(t *testing.T) {
		path := historyPath(t)
		content := "2024-01-28 - Running - 30 minutes\n2024-01-29 - Yoga - 20 minutes - Notes: calm\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		stdout, _, err := execute(t, "", "--file", path, "history")
		require.NoError(t, err)
		assert.Equal(t,
			"1. 2024-01-28 - Running - 30 minutes\n2. 2024-01-29 - Yoga - 20 minutes - Notes: calm\n",
			stdout)
	})

	t.Run("json", func(t *testing.T) {
		path := historyPath(t)
		require.NoError(t, os.WriteFile(path, []byte("2024-01-28 - Running - 30 minutes\n"), 0o644))

		stdout, _, err := execute(t, "", "--file", path, "--format", "json", "history")
		require.NoError(t, err)

		var resp output.HistoryResponse
		require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, []string{"2024-01-28 - Running - 30 minutes"}, resp.Entries)
	})

	t.Run("json_no_history", func(t *testing.T) {
		stdout, _, err := execute(t, "", "--file", historyPath(t), "-f", "json", "history")
		require.NoError(t, err)

		var resp output.HistoryResponse
		require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
		assert.Equal(t, 0, resp.Count)
		assert.NotNil(t, resp.Entries)
	})
}

// =============================================================================
// Log Command Tests
// =============================================================================

func TestLogCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "named_type",
			args: []string{"--type", "Running", "--duration", "30", "--date", "2024-01-28"},
			want: "2024-01-28 - Running - 30 minutes\n",
		},
		{
			name: "menu_number",
			args: []string{"--type", "4", "--duration", "40", "--date", "2024-01-28"},
			want: "2024-01-28 - Swimming - 40 minutes\n",
		},
		{
			name: "custom_type_with_notes",
			args: []string{"-t", "Rock Climbing", "-d", "90", "--date", "2024-1-5", "-n", "felt great"},
			want: "2024-01-05 - Rock Climbing - 90 minutes - Notes: felt great\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := historyPath(t)
			args := append([]string{"--file", path, "log"}, tt.args...)

			stdout, _, err := execute(t, "", args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, readHistory(t, path))
			assert.Contains(t, stdout, "You logged: "+strings.TrimSuffix(tt.want, "\n"))
		})
	}
}

func TestLogCommandInvalid(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		sentinel error
	}{
		{"missing_type", []string{"--duration", "30"}, errors.ErrInvalidField},
		{"missing_duration", []string{"--type", "Yoga"}, errors.ErrInvalidField},
		{"multiline_notes", []string{"--type", "Yoga", "--duration", "30", "--notes", "a\nb"}, errors.ErrInvalidField},
		{"bad_date", []string{"--type", "Yoga", "--duration", "30", "--date", "zzzz"}, errors.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := historyPath(t)
			args := append([]string{"--file", path, "log"}, tt.args...)

			_, stderr, err := execute(t, "", args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Contains(t, stderr, "Error:")
			assert.NoFileExists(t, path)
		})
	}
}

func TestLogCommandJSON(t *testing.T) {
	path := historyPath(t)

	stdout, _, err := execute(t, "", "--file", path, "--format", "json",
		"log", "--type", "Cycling", "--duration", "60", "--date", "2024-02-29")
	require.NoError(t, err)

	var resp output.LogResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "logged", resp.Status)
	assert.Equal(t, "2024-02-29", resp.Entry.Date)
	assert.Equal(t, "2024-02-29 - Cycling - 60 minutes", resp.Entry.Line)
}

func TestLogCommandBadger(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "db")

	_, _, err := execute(t, "", "--store", "badger", "--database", dbPath,
		"log", "--type", "Yoga", "--duration", "20", "--date", "2024-01-28")
	require.NoError(t, err)

	stdout, _, err := execute(t, "", "--store", "badger", "--database", dbPath, "history")
	require.NoError(t, err)
	assert.Equal(t, "1. 2024-01-28 - Yoga - 20 minutes\n", stdout)
}

// =============================================================================
// Version Tests
// =============================================================================

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fitjournal "+Version)
}
