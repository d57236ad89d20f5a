package ui

import "github.com/Tiliavir/trivial-task-tracker/internal/model"

type sessionCheckedMsg struct {
	loggedIn bool
}

type loginSubmitMsg struct {
	email    string
	password string
}

type loginRecordedMsg struct {
	err error
}

type taskSubmitMsg struct {
	task model.Task
}

type deleteTaskMsg struct {
	id int64
}

// tasksChangedMsg is delivered after every task store mutation.
type tasksChangedMsg struct{}
