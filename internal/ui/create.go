package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tiliavir/trivial-task-tracker/internal/model"
	"github.com/Tiliavir/trivial-task-tracker/internal/timecalc"
	"github.com/Tiliavir/trivial-task-tracker/internal/validate"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldStart
	fieldEnd
)

// createModel is the "Creat task" tab.
type createModel struct {
	inputs           []textinput.Model
	focus            int
	titleValid       bool
	descriptionValid bool
	timeErr          string

	ids *timecalc.IDSource
	now func() time.Time
}

func newCreateModel(ids *timecalc.IDSource, now func() time.Time) createModel {
	m := createModel{ids: ids, now: now}

	placeholders := []string{"taskName", "taskDescription", "Start time (e.g. 9:00 AM)", "End time (e.g. 9:30 AM)"}
	for _, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.Prompt = "  "
		m.inputs = append(m.inputs, ti)
	}
	return m.reset()
}

// reset clears the form; both times default to now.
func (m createModel) reset() createModel {
	clock := timecalc.FormatClock(m.now())
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.inputs[fieldStart].SetValue(clock)
	m.inputs[fieldEnd].SetValue(clock)
	m.focus = fieldTitle
	m.inputs[fieldTitle].Focus()
	m.titleValid = true
	m.descriptionValid = true
	m.timeErr = ""
	return m
}

func (m createModel) title() string       { return m.inputs[fieldTitle].Value() }
func (m createModel) description() string { return m.inputs[fieldDescription].Value() }

func (m createModel) Update(msg tea.Msg) (createModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return m.setFocus((m.focus + 1) % len(m.inputs)), nil
		case "shift+tab", "up":
			return m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs)), nil
		case "enter":
			if m.focus < fieldEnd {
				return m.setFocus(m.focus + 1), nil
			}
			return m.submit()
		case "ctrl+s":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.validateField(m.focus)
	}
	return m, cmd
}

func (m *createModel) validateField(i int) {
	switch i {
	case fieldTitle:
		m.titleValid = validate.Title(m.title())
	case fieldDescription:
		m.descriptionValid = validate.Description(m.description())
	}
}

func (m createModel) setFocus(i int) createModel {
	m.validateField(m.focus)
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

// submit builds the task and hands it to the parent. Nothing happens while
// the form is invalid.
func (m createModel) submit() (createModel, tea.Cmd) {
	m.validateField(fieldTitle)
	m.validateField(fieldDescription)
	if !validate.TaskForm(m.title(), m.description()) {
		return m, nil
	}

	day := m.now()
	start, err := validate.ParseClock(m.inputs[fieldStart].Value(), day)
	if err != nil {
		m.timeErr = "Start: " + err.Error()
		return m, nil
	}
	end, err := validate.ParseClock(m.inputs[fieldEnd].Value(), day)
	if err != nil {
		m.timeErr = "End: " + err.Error()
		return m, nil
	}
	m.timeErr = ""

	task := model.Task{
		ID:          m.ids.Next(),
		Title:       m.title(),
		Description: m.description(),
		StartTime:   start,
		EndTime:     end,
	}
	return m, func() tea.Msg { return taskSubmitMsg{task: task} }
}

func (m createModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create a new task"))
	b.WriteString("\n\n")

	b.WriteString(m.inputs[fieldTitle].View())
	b.WriteString("\n")
	if !m.titleValid {
		b.WriteString(errorStyle.Render("  " + validate.TitleMessage))
		b.WriteString("\n")
	}
	b.WriteString(m.inputs[fieldDescription].View())
	b.WriteString("\n")
	if !m.descriptionValid {
		b.WriteString(errorStyle.Render("  " + validate.DescriptionMessage))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("  Start"))
	b.WriteString(m.inputs[fieldStart].View())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  End  "))
	b.WriteString(m.inputs[fieldEnd].View())
	b.WriteString("\n")
	if m.timeErr != "" {
		b.WriteString(errorStyle.Render("  " + m.timeErr))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(button("Create Task", validate.TaskForm(m.title(), m.description())))
	return b.String()
}
