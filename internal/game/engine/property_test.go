package engine_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/adventure/content"
	"github.com/cory-johannsen/adventure/internal/game/engine"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

var commandPool = []string{
	"n", "s", "e", "w", "up", "down", "go north", "go down", "walk east",
	"look", "examine bed", "examine mirror", "inventory",
	"take flashlight", "take crumpled note", "take ancient book", "take old photograph",
	"take crowbar", "take rusty key", "take silver coin", "take strange amulet",
	"drop flashlight", "drop crowbar", "drop crumpled note", "drop rusty key",
	"use flashlight", "use crowbar", "use rusty key", "use strange amulet",
	"help", "xyzzy", "",
}

// itemCount counts placements of every item across all rooms and the inventory.
func itemCount(w *world.World) map[string]int {
	counts := make(map[string]int)
	for _, r := range w.Rooms {
		for _, id := range r.Items {
			counts[id]++
		}
	}
	for _, id := range w.Inventory() {
		counts[id]++
	}
	return counts
}

func TestPropertyItemsNeverDuplicated(t *testing.T) {
	base, err := content.House()
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		g, err := engine.New(base.Clone())
		if err != nil {
			t.Fatalf("engine.New: %v", err)
		}
		cmds := rapid.SliceOfN(rapid.SampledFrom(commandPool), 1, 60).Draw(t, "cmds")
		for _, c := range cmds {
			g.Process(c)
			for id, n := range itemCount(g.World()) {
				if n > 1 {
					t.Fatalf("after %q item %q is in %d places", c, id, n)
				}
			}
			if _, err := g.World().Room(g.CurrentRoom()); err != nil {
				t.Fatalf("current room invalid after %q: %v", c, err)
			}
		}
	})
}

func TestPropertyTakeDropConservesItems(t *testing.T) {
	base, err := content.House()
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		g, err := engine.New(base.Clone())
		if err != nil {
			t.Fatalf("engine.New: %v", err)
		}
		names := []string{"flashlight", "crumpled note", "Flashlight", "CRUMPLED NOTE", "bed", "nothing"}
		cmds := rapid.SliceOfN(rapid.SampledFrom([]string{"take", "drop", "get", "leave", "grab"}), 1, 30).Draw(t, "verbs")
		total := func() int {
			n := 0
			for _, c := range itemCount(g.World()) {
				n += c
			}
			return n
		}
		want := total()
		for _, verb := range cmds {
			name := rapid.SampledFrom(names).Draw(t, "name")
			g.Process(verb + " " + name)
			if got := total(); got != want {
				t.Fatalf("%s %s changed item total from %d to %d", verb, name, want, got)
			}
		}
	})
}

func TestPropertyBlockedMovesStayPut(t *testing.T) {
	base, err := content.House()
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		w := base.Clone()
		roomID := rapid.SampledFrom(sortedRoomIDs(w)).Draw(t, "room")
		w.StartRoom = roomID
		g, err := engine.New(w)
		if err != nil {
			t.Fatalf("engine.New: %v", err)
		}
		room, _ := w.Room(roomID)
		dir := rapid.SampledFrom([]string{"north", "south", "east", "west", "up", "down", "sideways"}).Draw(t, "dir")

		_, exists := room.ExitForDirection(world.Direction(dir))
		lock, locked := room.LockFor(world.Direction(dir))
		text := g.Process("go " + dir).Text

		switch {
		case !exists:
			if g.CurrentRoom() != roomID {
				t.Fatalf("moved through missing exit %q", dir)
			}
		case locked:
			if g.CurrentRoom() != roomID {
				t.Fatalf("moved through locked exit %q", dir)
			}
			if !strings.Contains(text, lock.Description) || !strings.Contains(text, lock.Hint) {
				t.Fatalf("locked message %q lacks description or hint", text)
			}
		default:
			if target := mustExit(t, room, dir); g.CurrentRoom() != target {
				t.Fatalf("open exit %q led to %q, want %q", dir, g.CurrentRoom(), target)
			}
		}
	})
}

func mustExit(t *rapid.T, room *world.Room, dir string) string {
	e, ok := room.ExitForDirection(world.Direction(dir))
	if !ok {
		t.Fatalf("room %q has no exit %q", room.ID, dir)
	}
	return e.TargetRoom
}

func sortedRoomIDs(w *world.World) []string {
	ids := make([]string, 0, len(w.Rooms))
	for id := range w.Rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
