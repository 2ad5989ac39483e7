package input

import "fmt"

// Status messages shown in response to keys.
const (
	MsgCommandCancelled = "Command cancelled"
	MsgUnsavedChanges   = "Unsaved changes! Use :q! to force quit"
	MsgNoWrite          = "No write since last change (add ! to override)"
	MsgJumpedFirstRow   = "Jumped to first row"
	MsgViewTop          = "View: top"
	MsgViewCenter       = "View: center"
	MsgViewBottom       = "View: bottom"
	MsgReadOnly         = "Read-only: editing is not supported"
	MsgReadOnlySave     = "Read-only: saving is not supported"
	MsgRowYanked        = "1 row yanked"
	MsgNothingToYank    = "Nothing to yank"
	MsgHelpHint         = "Press ? for help"
	MsgColumnUsage      = "Usage: :c <column> (e.g., :c A, :c 5)"
	MsgColumnPrompt     = "Column: type letters, Enter to jump"
)

func unknownSequence(first, second string) string {
	return fmt.Sprintf("Unknown command: %s %s", first, second)
}

func unknownCommand(cmd string) string {
	return "Unknown command: :" + cmd
}

func jumpedToRow(line int) string {
	return fmt.Sprintf("Jumped to row %d", line)
}

func invalidColumn(arg string) string {
	return "Invalid column: " + arg
}
