package terminal

import "strings"

// REPL commands
const (
	CmdExit    = "/exit"
	CmdClear   = "/clear"
	CmdHistory = "/history"
	CmdLang    = "/lang"
	CmdQuick   = "/quick"
	CmdSuggest = "/suggest"
	CmdHelp    = "/help"
)

var knownCommands = map[string]bool{
	CmdExit:    true,
	CmdClear:   true,
	CmdHistory: true,
	CmdLang:    true,
	CmdQuick:   true,
	CmdSuggest: true,
	CmdHelp:    true,
}

// Command is a parsed slash command
type Command struct {
	Name string
	Arg  string
}

// ParseCommand splits a "/name arg" line. ok is false for ordinary chat
// input, including lines that merely start with an unknown slash word.
func ParseCommand(line string) (cmd Command, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") {
		return Command{}, false
	}

	name, arg, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	if name == "/quit" {
		name = CmdExit
	}
	if !knownCommands[name] {
		return Command{}, false
	}
	return Command{Name: name, Arg: strings.TrimSpace(arg)}, true
}
