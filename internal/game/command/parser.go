package command

import (
	"strings"

	"golang.org/x/text/cases"
)

// ParseResult holds the parsed command name and arguments from a text line.
type ParseResult struct {
	// Command is the first word of the input, case-folded.
	Command string
	// Args are the remaining words after the command.
	Args []string
	// Argument is Args rejoined with single spaces, so multi-word names
	// such as "rusty key" match however much whitespace was typed.
	Argument string
}

// Parse splits a text line into a command and arguments.
//
// Postcondition: Returns a ParseResult. If line holds no words, Command is empty.
func Parse(line string) ParseResult {
	words := strings.Fields(line)
	if len(words) == 0 {
		return ParseResult{}
	}

	result := ParseResult{Command: cases.Fold().String(words[0])}
	if len(words) > 1 {
		result.Args = words[1:]
		result.Argument = strings.Join(result.Args, " ")
	}
	return result
}

// Parsed is a command line resolved against a Registry.
type Parsed struct {
	// Verb is the resolved action; VerbUnknown when the command word matched nothing.
	Verb Verb
	// Command is the resolved command, nil when Verb is VerbUnknown or the line was empty.
	Command *Command
	// Argument is the rejoined argument text; empty when none was given.
	Argument string
	// Args are the individual argument words.
	Args []string
	// Empty reports that the line contained no words.
	Empty bool
}

// Interpret parses a line and resolves its command word through the registry.
//
// Postcondition: Returns a Parsed with Empty set for blank lines and
// VerbUnknown for unrecognized command words.
func (r *Registry) Interpret(line string) Parsed {
	pr := Parse(line)
	if pr.Command == "" {
		return Parsed{Empty: true}
	}
	cmd, ok := r.Resolve(pr.Command)
	if !ok {
		return Parsed{Verb: VerbUnknown, Argument: pr.Argument, Args: pr.Args}
	}
	return Parsed{Verb: cmd.Verb, Command: cmd, Argument: pr.Argument, Args: pr.Args}
}
