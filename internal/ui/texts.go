package ui

// StartText is the greeting shown by `start`.
const StartText = `
👋 Welcome to Task Manager CLI!
Easily track your tasks with statuses: todo, in-progress, and done.

👉 Quickstart:
   task-cli add "Buy groceries"
   task-cli list

For full command reference, run:
   task-cli help
`

const helpHeader = `
📖 Task Manager CLI - Commands Reference

General:
  start                   Show greeting and quickstart guide
  help                    Show this list of commands
`

const helpInteractive = `  exit, quit              Leave interactive mode
`

const helpOneShot = `  interactive             Start an interactive session
  version                 Print the version
`

const helpBody = `
Tasks:
  add "description"       Add a new task
  update ID "description" Update task description
  delete ID               Delete a task by ID

Status updates:
  mark-in-progress ID     Mark task as 'in-progress'
  mark-done ID            Mark task as 'done'

Listing:
  list                    Show all tasks
  list todo               Show only 'todo' tasks
  list in-progress        Show only 'in-progress' tasks
  list done               Show only 'done' tasks

💡 Example:
   task-cli add "Read a book"
   task-cli update 1 "Read two books"
   task-cli mark-done 1
   task-cli list done
`

// HelpText returns the command reference. The interactive variant lists
// exit and quit instead of the commands that only make sense from a shell.
func HelpText(interactive bool) string {
	if interactive {
		return helpHeader + helpInteractive + helpBody
	}
	return helpHeader + helpOneShot + helpBody
}

// BannerText greets the user when an interactive session starts.
const BannerText = `📌 Task Manager CLI - interactive mode
Type 'help' for commands, 'exit' or 'quit' to leave.`

// FarewellText is printed when an interactive session ends.
const FarewellText = "👋 Goodbye!"

// PromptText is shown before every interactive input line.
const PromptText = "prompt> "
