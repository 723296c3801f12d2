package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cory-johannsen/adventure/internal/display"
	"github.com/cory-johannsen/adventure/internal/game/engine"
)

// play runs the prompt loop until the player quits, wins, or input ends.
//
// Postcondition: Returns nil on a normal end, or the first read/write error.
func play(in io.Reader, out io.Writer, game *engine.Interpreter, width int) error {
	scanner := bufio.NewScanner(in)
	for game.Running() {
		if _, err := fmt.Fprint(out, "\n> "); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		res := game.Process(line)
		if _, err := fmt.Fprintln(out, display.Wrap(res.Text, width)); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
		if game.Won() {
			if _, err := fmt.Fprintf(out, "\n%s\n", display.WinMessage); err != nil {
				return fmt.Errorf("writing response: %w", err)
			}
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	_, err := fmt.Fprintf(out, "\n%s\n", display.FarewellMessage)
	return err
}
