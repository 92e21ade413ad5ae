// Package parse isolates a runnable command from raw model output.
//
// Heuristic, in order: the first fenced code block wins; then a
// "command:"-prefixed line; an unfenced single line is taken as-is; for
// unfenced multi-line text the last non-empty line is taken when it lexes as
// valid shell. When nothing can be isolated confidently the trimmed raw text
// is returned unchanged, since showing the operator something beats failing.
package parse

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/askshell/ask/internal/ports"
)

const fence = "```"

// CommandParser implements ports.CommandParser.
type CommandParser struct {
	shell *syntax.Parser
}

// NewCommandParser builds a parser validating candidates as POSIX shell.
func NewCommandParser() *CommandParser {
	return &CommandParser{
		shell: syntax.NewParser(syntax.Variant(syntax.LangPOSIX)),
	}
}

// Parse never fails; see the package comment for the extraction order.
func (p *CommandParser) Parse(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	if block, ok := fencedBlock(text); ok {
		return cleanCommand(block)
	}
	if cmd := commandPrefixLine(text); cmd != "" {
		return cleanCommand(cmd)
	}

	lines := nonEmptyLines(text)
	if len(lines) == 1 {
		return cleanCommand(lines[0])
	}

	last := cleanCommand(lines[len(lines)-1])
	if p.lexesAsShell(last) {
		return last
	}
	return text
}

// lexesAsShell reports whether the candidate parses as a POSIX command line.
// This catches torn output such as unbalanced quotes or a dangling pipe.
func (p *CommandParser) lexesAsShell(candidate string) bool {
	if candidate == "" {
		return false
	}
	_, err := p.shell.Parse(strings.NewReader(candidate), "")
	return err == nil
}

// fencedBlock extracts the content of the first ``` block. The opening line
// is dropped as a language tag only when more lines follow; a one-line block
// like ```git reset --soft HEAD~1``` is the command itself.
func fencedBlock(text string) (string, bool) {
	start := strings.Index(text, fence)
	if start == -1 {
		return "", false
	}
	rest := text[start+len(fence):]
	end := strings.Index(rest, fence)
	if end == -1 {
		return "", false
	}

	block := rest[:end]
	lines := strings.Split(block, "\n")
	if len(lines) > 1 && isLanguageTag(lines[0]) {
		lines = lines[1:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), true
}

func isLanguageTag(line string) bool {
	tag := strings.TrimSpace(line)
	if tag == "" {
		return true
	}
	switch strings.ToLower(tag) {
	case "sh", "bash", "zsh", "fish", "shell", "console", "terminal":
		return true
	default:
		return false
	}
}

// commandPrefixLine looks for a "command: ..." line, a shape some models
// fall into when asked for bare commands.
func commandPrefixLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(line), "command:") {
			return strings.TrimSpace(line[len("command:"):])
		}
	}
	return ""
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// cleanCommand strips decoration models wrap around commands: inline
// backticks and a leading shell-prompt marker.
func cleanCommand(cmd string) string {
	cmd = strings.TrimSpace(cmd)
	if len(cmd) >= 2 && strings.HasPrefix(cmd, "`") && strings.HasSuffix(cmd, "`") {
		cmd = strings.TrimSpace(cmd[1 : len(cmd)-1])
	}
	cmd = strings.TrimPrefix(cmd, "$ ")
	return cmd
}

var _ ports.CommandParser = (*CommandParser)(nil)
