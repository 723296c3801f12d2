package display

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Title is the banner heading.
const Title = "RETRO TEXT ADVENTURE"

// IntroText is the opening narration, printed one line at a time.
const IntroText = `
You wake up in a dimly lit room. Your head is pounding and you can't
remember how you got here. The air is musty and cold. You need to
find your way out and discover what happened to you...

Type 'help' at any time to see available commands.
`

// Closing messages.
const (
	WinMessage      = "Congratulations! You've completed the adventure!"
	FarewellMessage = "Thanks for playing!"
)

// Typewriter prints text line by line with a pause after each line.
type Typewriter struct {
	Out   io.Writer
	Delay time.Duration
	// Sleep pauses between lines; nil uses time.Sleep.
	Sleep func(time.Duration)
}

// PrintLines writes each line of text trimmed of surrounding whitespace,
// pausing Delay after every line.
//
// Postcondition: Returns the first write error, if any.
func (tw Typewriter) PrintLines(text string) error {
	sleep := tw.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	for _, line := range strings.Split(text, "\n") {
		if _, err := fmt.Fprintln(tw.Out, strings.TrimSpace(line)); err != nil {
			return err
		}
		if tw.Delay > 0 {
			sleep(tw.Delay)
		}
	}
	return nil
}

// Intro prints the banner and the opening narration.
//
// Postcondition: Returns the first write error, if any.
func (tw Typewriter) Intro(bannerWidth int) error {
	rule := strings.Repeat("=", bannerWidth)
	if _, err := fmt.Fprintf(tw.Out, "\n%s\n%s\n%s\n\n", rule, Center(Title, bannerWidth), rule); err != nil {
		return err
	}
	if err := tw.PrintLines(IntroText); err != nil {
		return err
	}
	_, err := fmt.Fprintf(tw.Out, "\n%s\n\n", rule)
	return err
}
