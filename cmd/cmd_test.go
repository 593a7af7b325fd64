package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/mathsprint/internal/score"
	"github.com/abhisek/mathsprint/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSwitch(t *testing.T) {
	for in, want := range map[string]bool{"on": true, "off": false, "true": true, "0": false} {
		got, err := parseSwitch(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseSwitch("loud")
	assert.Error(t, err)
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		// Flag values outlive Execute on the shared command tree.
		_ = resetCmd.Flags().Set("yes", "false")
	})
	return rootCmd.Execute()
}

func TestSettingsCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")

	require.NoError(t, execute(t, "settings", "--db", db, "--sound", "off", "--level", "3"))

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()

	got := score.NewLedger(st.KV(), score.DefaultConfig()).Settings()
	assert.Equal(t, score.Settings{SoundEnabled: false, StartingTier: 3}, got)
}

func TestSettingsCommand_RejectsBadLevel(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")
	assert.Error(t, execute(t, "settings", "--db", db, "--level", "7"))
}

func TestResetCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")

	st, err := store.Open(db)
	require.NoError(t, err)
	ledger := score.NewLedger(st.KV(), score.DefaultConfig())
	ledger.UpdateScore(true, 1)
	ledger.EndGame()
	now := time.Now()
	require.NoError(t, st.Sessions().AppendSession(context.Background(), store.SessionRecord{
		ID: "s1", StartedAt: now.Add(-time.Minute), EndedAt: now, Score: 10,
	}))
	require.NoError(t, st.Close())

	assert.Error(t, execute(t, "reset", "--db", db), "reset without --yes must refuse")
	require.NoError(t, execute(t, "stats", "--db", db))
	require.NoError(t, execute(t, "reset", "--db", db, "--yes"))

	st, err = store.Open(db)
	require.NoError(t, err)
	defer st.Close()

	assert.Equal(t, 0, score.NewLedger(st.KV(), score.DefaultConfig()).HighScore())
	sessions, err := st.Sessions().RecentSessions(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

// brokenStorage loads nothing and fails every save.
type brokenStorage struct{}

func (brokenStorage) Load(context.Context, string) ([]byte, error) { return nil, nil }

func (brokenStorage) Save(context.Context, string, []byte) error {
	return errors.New("read-only filesystem")
}

type fakeSessions struct {
	store.SessionRepo
	cleared bool
}

func (f *fakeSessions) ClearSessions(context.Context) error {
	f.cleared = true
	return nil
}

func TestApplySettings_ReportsSaveFailure(t *testing.T) {
	ledger := score.NewLedger(brokenStorage{}, quietLedgerConfig())
	off := false

	err := applySettings(ledger, &off, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only filesystem")
}

func TestApplySettings_NothingToSave(t *testing.T) {
	ledger := score.NewLedger(brokenStorage{}, quietLedgerConfig())
	assert.NoError(t, applySettings(ledger, nil, nil))
}

func TestResetProgress_ReportsSaveFailure(t *testing.T) {
	ledger := score.NewLedger(brokenStorage{}, quietLedgerConfig())
	sessions := &fakeSessions{}

	err := resetProgress(context.Background(), ledger, sessions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only filesystem")
	assert.False(t, sessions.cleared, "history stays when the record could not be reset")
}

func TestResetCommand_RemovesPlayerRecord(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")

	st, err := store.Open(db)
	require.NoError(t, err)
	score.NewLedger(st.KV(), quietLedgerConfig()).SetSoundEnabled(false)
	require.NoError(t, st.Close())

	require.NoError(t, execute(t, "reset", "--db", db, "--yes"))

	st, err = store.Open(db)
	require.NoError(t, err)
	defer st.Close()

	data, err := st.KV().Load(context.Background(), score.DefaultKey)
	require.NoError(t, err)
	assert.Nil(t, data)
}
