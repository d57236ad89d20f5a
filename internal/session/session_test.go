package session_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/trivial-task-tracker/internal/kv"
	"github.com/Tiliavir/trivial-task-tracker/internal/logging"
	"github.com/Tiliavir/trivial-task-tracker/internal/model"
	"github.com/Tiliavir/trivial-task-tracker/internal/session"
)

var errDisk = errors.New("disk on fire")

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, errDisk }
func (brokenStore) Set(context.Context, string, []byte) error { return errDisk }
func (brokenStore) Close() error { return nil }

func newFileGate(t *testing.T) (*session.Gate, *kv.FileStore) {
	t.Helper()
	store := kv.NewFileStore(filepath.Join(t.TempDir(), "storage.json"))
	return session.NewGate(store, logging.Discard()), store
}

func TestFreshStorageThenLogin(t *testing.T) {
	ctx := context.Background()
	gate, _ := newFileGate(t)

	assert.False(t, gate.IsLoggedIn(ctx))
	assert.Equal(t, session.Anonymous, gate.State(ctx))

	require.NoError(t, gate.RecordLogin(ctx, "a@b.com", "password1"))

	assert.True(t, gate.IsLoggedIn(ctx))
	assert.Equal(t, session.Authenticated, gate.State(ctx))
}

func TestRecordLoginWritesCredentialRecord(t *testing.T) {
	ctx := context.Background()
	gate, store := newFileGate(t)

	require.NoError(t, gate.RecordLogin(ctx, "a@b.com", "password1"))

	raw, ok, err := store.Get(ctx, session.UserDataKey)
	require.NoError(t, err)
	require.True(t, ok)

	var creds model.Credentials
	require.NoError(t, json.Unmarshal(raw, &creds))
	assert.Equal(t, model.Credentials{Email: "a@b.com", Password: "password1"}, creds)
	assert.JSONEq(t, `{"email":"a@b.com","password":"password1"}`, string(raw))
}

// Any stored value counts, even one that is not a credential record.
func TestCheckOnlyTestsExistence(t *testing.T) {
	ctx := context.Background()
	gate, store := newFileGate(t)
	require.NoError(t, store.Set(ctx, session.UserDataKey, []byte("not json")))

	ok, err := gate.Check(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEmptyCredentialsStillLogIn(t *testing.T) {
	ctx := context.Background()
	gate, _ := newFileGate(t)

	require.NoError(t, gate.RecordLogin(ctx, "", ""))
	assert.True(t, gate.IsLoggedIn(ctx))
}

func TestStorageUnavailable(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	gate := session.NewGate(brokenStore{}, logging.New(logging.Options{Writer: &buf, Level: "debug"}))

	ok, err := gate.Check(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, session.ErrStorageUnavailable)
	assert.ErrorIs(t, err, errDisk)

	// IsLoggedIn swallows the error, logs it and defaults to anonymous.
	assert.False(t, gate.IsLoggedIn(ctx))
	assert.Contains(t, buf.String(), "error retrieving user data")
	assert.Equal(t, session.Anonymous, gate.State(ctx))

	err = gate.RecordLogin(ctx, "a@b.com", "password1")
	assert.ErrorIs(t, err, session.ErrStorageUnavailable)
	assert.ErrorIs(t, err, errDisk)
}

func TestSQLiteBackedGate(t *testing.T) {
	ctx := context.Background()
	store, err := kv.OpenSQLite(filepath.Join(t.TempDir(), "ttk.db"))
	require.NoError(t, err)
	defer store.Close()

	gate := session.NewGate(store, logging.Discard())
	assert.False(t, gate.IsLoggedIn(ctx))
	require.NoError(t, gate.RecordLogin(ctx, "a@b.com", "password1"))
	assert.True(t, gate.IsLoggedIn(ctx))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "ANONYMOUS", session.Anonymous.String())
	assert.Equal(t, "AUTHENTICATED", session.Authenticated.String())
	assert.Equal(t, "State(7)", session.State(7).String())
}
