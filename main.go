package main

import "github.com/Tiliavir/trivial-task-tracker/cmd"

func main() {
	cmd.Execute()
}
