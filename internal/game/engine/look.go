package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cory-johannsen/adventure/internal/game/world"
)

// describe marks the current room visited and renders its full description.
func (i *Interpreter) describe() string {
	room := i.room()
	i.visited[room.ID] = true

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s\n%s\n", room.Name, strings.Repeat("-", utf8.RuneCountInString(room.Name)), room.Description)

	if len(room.Exits) > 0 {
		fmt.Fprintf(&b, "\n"+msgExitsFmt+"\n", strings.Join(exitNames(room), ", "))
	} else {
		fmt.Fprintf(&b, "\n%s\n", msgNoExits)
	}

	if len(room.Items) > 0 {
		fmt.Fprintf(&b, "\n%s\n", msgYouCanSee)
		for _, id := range room.Items {
			fmt.Fprintf(&b, "- %s\n", i.item(id).Name)
		}
	}
	return b.String()
}

// exitNames lists every exit direction in authored order, locked or not.
func exitNames(room *world.Room) []string {
	names := make([]string, 0, len(room.Exits))
	for _, e := range room.Exits {
		names = append(names, string(e.Direction))
	}
	return names
}

// examine looks for a room item, then a carried item, then a room feature.
func (i *Interpreter) examine(target string) string {
	room := i.room()
	if id, ok := i.findItem(room.Items, target); ok {
		return i.item(id).Description
	}
	if id, ok := i.findItem(i.world.Inventory(), target); ok {
		return i.item(id).Description
	}
	for _, f := range room.Features {
		if sameName(target, f.Name) {
			return f.Description
		}
	}
	return fmt.Sprintf(msgNotHereFmt, target)
}
