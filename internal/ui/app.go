// Package ui is the terminal front end: an auth screen and a home screen
// with a task list tab and a task creation tab.
package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Tiliavir/trivial-task-tracker/internal/model"
	"github.com/Tiliavir/trivial-task-tracker/internal/session"
	"github.com/Tiliavir/trivial-task-tracker/internal/taskstore"
	"github.com/Tiliavir/trivial-task-tracker/internal/timecalc"
)

// Screen names, as used for navigation.
const (
	ScreenLoading = "Loading"
	ScreenLogin   = "LoginScreen"
	ScreenHome    = "HomeScreen"
)

// Tab names of the home screen.
const (
	TabList   = "Tasks List"
	TabCreate = "Creat task"
)

var tabs = []string{TabList, TabCreate}

// Deps are the collaborators of the UI.
type Deps struct {
	Gate   *session.Gate
	Store  *taskstore.Store
	IDs    *timecalc.IDSource
	Logger *log.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the root bubbletea model.
type Model struct {
	gate  *session.Gate
	store *taskstore.Store
	l     *log.Logger

	// changes receives a token after every store mutation.
	changes     chan struct{}
	unsubscribe func()

	screen string
	tab    int
	login  loginModel
	create createModel
	list   listModel
}

// New builds the root model and subscribes it to the task store. Call Close
// once the program has finished.
func New(d Deps) Model {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.IDs == nil {
		d.IDs = timecalc.NewIDSource()
	}
	if d.Logger == nil {
		d.Logger = log.Default()
	}

	changes := make(chan struct{}, 1)
	unsubscribe := d.Store.Subscribe(func([]model.Task) {
		// Coalesce: one pending token is enough to trigger a re-read.
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	return Model{
		gate:        d.Gate,
		store:       d.Store,
		l:           d.Logger,
		changes:     changes,
		unsubscribe: unsubscribe,
		screen:      ScreenLoading,
		login:       newLoginModel(),
		create:      newCreateModel(d.IDs, d.Now),
		list:        listModel{}.setTasks(d.Store.Tasks()),
	}
}

// Close removes the store subscription.
func (m Model) Close() {
	m.unsubscribe()
}

// Screen returns the current screen name.
func (m Model) Screen() string {
	return m.screen
}

// Tab returns the active home tab name.
func (m Model) Tab() string {
	return tabs[m.tab]
}

// Init starts the session check and the store listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.checkSession, waitForChange(m.changes))
}

func (m Model) checkSession() tea.Msg {
	state := m.gate.State(context.Background())
	return sessionCheckedMsg{loggedIn: state == session.Authenticated}
}

func (m Model) recordLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		return loginRecordedMsg{err: m.gate.RecordLogin(context.Background(), email, password)}
	}
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return tasksChangedMsg{}
	}
}

// Update handles storage results and store changes first, then routes
// keys to the active screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case sessionCheckedMsg:
		m.l.Debug("checked session", "logged_in", msg.loggedIn)
		if msg.loggedIn {
			m.screen = ScreenHome
		} else {
			m.screen = ScreenLogin
		}
		return m, nil
	case loginSubmitMsg:
		return m, m.recordLogin(msg.email, msg.password)
	case loginRecordedMsg:
		// Navigation continues even when the flag could not be stored.
		if msg.err != nil {
			m.l.Error("error saving user data", "err", msg.err)
		}
		m.screen = ScreenHome
		return m, nil
	case taskSubmitMsg:
		m.store.Add(msg.task)
		m.l.Debug("added task", "id", msg.task.ID, "title", msg.task.Title)
		m.create = m.create.reset()
		m.tab = 0
		return m, nil
	case deleteTaskMsg:
		m.store.Delete(msg.id)
		m.l.Debug("deleted task", "id", msg.id)
		return m, nil
	case tasksChangedMsg:
		m.list = m.list.setTasks(m.store.Tasks())
		return m, waitForChange(m.changes)
	}

	switch m.screen {
	case ScreenLogin:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	case ScreenHome:
		return m.updateHome(msg)
	}
	return m, nil
}

func (m Model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+t":
			m.tab = (m.tab + 1) % len(tabs)
			return m, nil
		case "esc":
			m.tab = 0
			return m, nil
		}
		if tabs[m.tab] == TabList {
			switch key.String() {
			case "n":
				m.tab = 1
				return m, nil
			case "q":
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	switch tabs[m.tab] {
	case TabList:
		m.list, cmd = m.list.Update(msg)
	case TabCreate:
		m.create, cmd = m.create.Update(msg)
	}
	return m, cmd
}

// View renders the active screen.
func (m Model) View() string {
	switch m.screen {
	case ScreenLogin:
		return m.login.View() + "\n"
	case ScreenHome:
		return m.homeView() + "\n"
	default:
		return mutedStyle.Render("Loading…") + "\n"
	}
}

func (m Model) homeView() string {
	var b strings.Builder

	var bar []string
	for i, name := range tabs {
		if i == m.tab {
			bar = append(bar, activeTab.Render(name))
		} else {
			bar = append(bar, inactiveTab.Render(name))
		}
	}
	b.WriteString(strings.Join(bar, ""))
	b.WriteString("\n\n")

	switch tabs[m.tab] {
	case TabList:
		b.WriteString(m.list.View())
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("↑/↓: select • d: delete • n: new task • ctrl+t: switch tab • q: quit"))
	case TabCreate:
		b.WriteString(m.create.View())
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("tab: next field • ctrl+s: create • esc: back to list • ctrl+t: switch tab"))
	}
	return b.String()
}
