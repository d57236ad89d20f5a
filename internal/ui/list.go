package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tiliavir/trivial-task-tracker/internal/model"
	"github.com/Tiliavir/trivial-task-tracker/internal/timecalc"
)

// listModel is the "Tasks List" tab. It only renders what the store last
// published; deletes go back to the store through deleteTaskMsg.
type listModel struct {
	tasks  []model.Task
	cursor int
}

func (m listModel) setTasks(tasks []model.Task) listModel {
	m.tasks = tasks
	if m.cursor >= len(tasks) {
		m.cursor = max(0, len(tasks)-1)
	}
	return m
}

func (m listModel) selected() (model.Task, bool) {
	if len(m.tasks) == 0 {
		return model.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "d", "delete":
		if t, ok := m.selected(); ok {
			id := t.ID
			return m, func() tea.Msg { return deleteTaskMsg{id: id} }
		}
	}
	return m, nil
}

func (m listModel) View() string {
	if len(m.tasks) == 0 {
		return mutedStyle.Render("No tasks found.")
	}

	cards := make([]string, 0, len(m.tasks))
	for i, t := range m.tasks {
		style := cardStyle
		if i == m.cursor {
			style = selectedCard
		}
		cards = append(cards, style.Render(renderTask(t, i == m.cursor)))
	}
	return strings.Join(cards, "\n")
}

func renderTask(t model.Task, selected bool) string {
	lines := []string{
		titleStyle.Render(t.Title),
		t.Description,
		mutedStyle.Render(fmt.Sprintf("%s – %s", timecalc.FormatClock(t.StartTime), timecalc.FormatClock(t.EndTime))),
		"Duration: " + timecalc.FormatDuration(t.Duration()),
	}
	if selected {
		lines = append(lines, deleteStyle.Render("[d] Delete"))
	}
	return strings.Join(lines, "\n")
}
