package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tiliavir/trivial-task-tracker/internal/validate"
)

const forgotPasswordURL = "https://toggl.com/track/forgot-password/"

const (
	fieldEmail = iota
	fieldPassword
)

// loginModel is the auth screen. Fields are validated on every change and
// the button stays disabled until both are valid.
type loginModel struct {
	inputs        []textinput.Model
	focus         int
	emailValid    bool
	passwordValid bool
	showPassword  bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Prompt = "  "
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = "  "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{
		inputs:        []textinput.Model{email, password},
		emailValid:    true,
		passwordValid: true,
	}
}

func (m loginModel) email() string    { return m.inputs[fieldEmail].Value() }
func (m loginModel) password() string { return m.inputs[fieldPassword].Value() }

func (m loginModel) canSubmit() bool {
	return validate.LoginForm(m.email(), m.password())
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return m.setFocus((m.focus + 1) % len(m.inputs)), nil
		case "shift+tab", "up":
			return m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs)), nil
		case "ctrl+r":
			m.showPassword = !m.showPassword
			if m.showPassword {
				m.inputs[fieldPassword].EchoMode = textinput.EchoNormal
			} else {
				m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
			}
			return m, nil
		case "enter":
			if m.focus == fieldEmail {
				m.emailValid = validate.Email(m.email())
				return m.setFocus(fieldPassword), nil
			}
			if !m.canSubmit() {
				return m, nil
			}
			email, password := m.email(), m.password()
			return m, func() tea.Msg {
				return loginSubmitMsg{email: email, password: password}
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); !ok {
		return m, cmd
	}
	switch m.focus {
	case fieldEmail:
		m.emailValid = validate.Email(m.email())
	case fieldPassword:
		m.passwordValid = validate.Password(m.password())
	}
	return m, cmd
}

// setFocus moves focus and validates the field being left.
func (m loginModel) setFocus(i int) loginModel {
	switch m.focus {
	case fieldEmail:
		m.emailValid = validate.Email(m.email())
	case fieldPassword:
		m.passwordValid = validate.Password(m.password())
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome back"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Log in to track your tasks"))
	b.WriteString("\n\n")

	b.WriteString(m.inputs[fieldEmail].View())
	b.WriteString("\n")
	if !m.emailValid {
		b.WriteString(errorStyle.Render("  " + validate.EmailMessage))
		b.WriteString("\n")
	}
	b.WriteString(m.inputs[fieldPassword].View())
	b.WriteString("\n")
	if !m.passwordValid {
		b.WriteString(errorStyle.Render("  " + validate.PasswordMessage))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  Forgot password? " + forgotPasswordURL))
	b.WriteString("\n\n  ")
	b.WriteString(button("Log In", m.canSubmit()))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("tab: next field • ctrl+r: show/hide password • enter: log in • ctrl+c: quit"))
	return b.String()
}
