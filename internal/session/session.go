// Package session records whether a login has ever happened on this
// machine and decides which flow the UI starts in.
//
// There is no credential verification: any email/password that passed the
// form checks "logs in". The flag only means "has logged in before".
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Tiliavir/trivial-task-tracker/internal/kv"
	"github.com/Tiliavir/trivial-task-tracker/internal/model"
)

// UserDataKey is the storage key holding the credential record.
const UserDataKey = "userData"

// ErrStorageUnavailable wraps every read or write failure of the gate.
var ErrStorageUnavailable = errors.New("storage unavailable")

// State is the login state derived from storage.
type State int

const (
	Anonymous State = iota
	Authenticated
)

// String returns ANONYMOUS or AUTHENTICATED.
func (s State) String() string {
	switch s {
	case Anonymous:
		return "ANONYMOUS"
	case Authenticated:
		return "AUTHENTICATED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Gate reads and writes the session flag.
type Gate struct {
	store kv.Store
	l     *log.Logger
}

// NewGate returns a Gate over store. logger may be nil.
func NewGate(store kv.Store, logger *log.Logger) *Gate {
	if logger == nil {
		logger = log.Default()
	}
	return &Gate{store: store, l: logger}
}

// Check reports whether a credential record exists. Read failures are
// returned wrapped in ErrStorageUnavailable.
func (g *Gate) Check(ctx context.Context) (bool, error) {
	_, ok, err := g.store.Get(ctx, UserDataKey)
	if err != nil {
		return false, fmt.Errorf("%w: reading %s: %w", ErrStorageUnavailable, UserDataKey, err)
	}
	return ok, nil
}

// IsLoggedIn is Check with failures logged and treated as not logged in.
func (g *Gate) IsLoggedIn(ctx context.Context) bool {
	ok, err := g.Check(ctx)
	if err != nil {
		g.l.Error("error retrieving user data", "err", err)
		return false
	}
	return ok
}

// State returns Authenticated when IsLoggedIn, Anonymous otherwise.
func (g *Gate) State(ctx context.Context) State {
	if g.IsLoggedIn(ctx) {
		return Authenticated
	}
	return Anonymous
}

// RecordLogin stores the credential record. The write is attempted once;
// failures are returned wrapped in ErrStorageUnavailable and callers are
// free to carry on.
func (g *Gate) RecordLogin(ctx context.Context, email, password string) error {
	data, err := json.Marshal(model.Credentials{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("encoding user data: %w", err)
	}
	if err := g.store.Set(ctx, UserDataKey, data); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrStorageUnavailable, UserDataKey, err)
	}
	g.l.Debug("recorded login", "email", email)
	return nil
}
