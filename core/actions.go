package core

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/internal/logx"
	"github.com/jask/navshell/internal/state"
)

// Actions are the operations a connected component may invoke to request a
// change of shared state. None of them touch the state directly: the
// result, if any, arrives later as a new snapshot.
type Actions interface {
	Authenticate() tea.Cmd
	Logout() tea.Cmd
	Login(name, password string) tea.Cmd
	SignUp(name, password string) tea.Cmd
}

// Authenticator is the session backend behind Actions.
type Authenticator interface {
	Authenticate(ctx context.Context) (*state.User, error)
	Login(ctx context.Context, name, password string) (*state.User, error)
	SignUp(ctx context.Context, name, password string) (*state.User, error)
	Logout(ctx context.Context) error
}

const (
	OpLogin  = "login"
	OpSignUp = "signup"
)

// Dispatcher implements Actions on top of an Authenticator and publishes
// outcomes into the store. One dispatcher is created per program.
type Dispatcher struct {
	auth    Authenticator
	store   *state.Store
	Timeout time.Duration
}

func NewDispatcher(auth Authenticator, store *state.Store) *Dispatcher {
	return &Dispatcher{auth: auth, store: store, Timeout: 10 * time.Second}
}

func (d *Dispatcher) context() (context.Context, context.CancelFunc) {
	if d.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), d.Timeout)
}

func (d *Dispatcher) setUser(u *state.User) {
	if d.store == nil {
		return
	}
	d.store.Update(func(s state.Snapshot) state.Snapshot { return s.WithUser(u) })
}

// Authenticate restores a previous session. Failure leaves the user absent.
func (d *Dispatcher) Authenticate() tea.Cmd {
	return func() tea.Msg {
		if d.auth == nil {
			return nil
		}
		ctx, cancel := d.context()
		defer cancel()
		u, err := d.auth.Authenticate(ctx)
		if err != nil {
			logFailure(err, "authenticate")
			return nil
		}
		logx.Info("session restored", "user", u.Name)
		d.setUser(u)
		return nil
	}
}

// Logout ends the session. The user is cleared only once the backend agrees.
func (d *Dispatcher) Logout() tea.Cmd {
	return func() tea.Msg {
		if d.auth == nil {
			return nil
		}
		ctx, cancel := d.context()
		defer cancel()
		if err := d.auth.Logout(ctx); err != nil {
			logFailure(err, "logout")
			return nil
		}
		logx.Info("logged out")
		d.setUser(nil)
		return nil
	}
}

func (d *Dispatcher) Login(name, password string) tea.Cmd {
	return d.interactive(OpLogin, func(ctx context.Context) (*state.User, error) {
		return d.auth.Login(ctx, name, password)
	})
}

func (d *Dispatcher) SignUp(name, password string) tea.Cmd {
	return d.interactive(OpSignUp, func(ctx context.Context) (*state.User, error) {
		return d.auth.SignUp(ctx, name, password)
	})
}

func (d *Dispatcher) interactive(op string, call func(context.Context) (*state.User, error)) tea.Cmd {
	return func() tea.Msg {
		if d.auth == nil {
			return AuthResultMsg{Op: op, Err: errors.New("no session backend")}
		}
		ctx, cancel := d.context()
		defer cancel()
		u, err := call(ctx)
		if err != nil {
			logFailure(err, op)
			return AuthResultMsg{Op: op, Err: err}
		}
		logx.Info("authenticated", "op", op, "user", u.Name)
		d.setUser(u)
		return AuthResultMsg{Op: op}
	}
}

func logFailure(err error, op string) {
	if errors.Is(err, context.DeadlineExceeded) {
		logx.Warn("session backend timed out", "op", op)
		return
	}
	logx.Debug("session call failed", "op", op, "err", err.Error())
}
