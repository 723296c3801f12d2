// Package world provides the game world model: rooms, items, exits, locks and item-use effects.
package world

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
)

// ErrNotFound is returned when a room or item ID does not exist in the world.
var ErrNotFound = errors.New("not found")

// Direction represents a compass direction or named exit.
type Direction string

// Standard compass directions and vertical movements.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

// StandardDirections contains all directions reachable through a single-word command.
var StandardDirections = []Direction{North, South, East, West, Up, Down}

// ParseDirection case-folds s into a Direction. Authored and typed directions
// both pass through it, so "North" and "north" name the same exit.
func ParseDirection(s string) Direction {
	return Direction(cases.Fold().String(s))
}

// Item is a static item definition. Only its location changes during play.
type Item struct {
	// ID uniquely identifies this item.
	ID string
	// Name is the display name players refer to the item by.
	Name string
	// Description is shown when the item is examined.
	Description string
	// Takeable reports whether the item can be picked up.
	Takeable bool
}

// Exit represents a passage from one room to another.
type Exit struct {
	// Direction is the compass direction or named exit.
	Direction Direction
	// TargetRoom is the ID of the destination room.
	TargetRoom string
}

// Lock blocks an existing exit until an item-use effect removes it.
type Lock struct {
	// Description completes the sentence "The way <dir> is ...".
	Description string
	// Hint is appended after the lock description.
	Hint string
}

// Feature is an examine-only detail of a room.
type Feature struct {
	// Name is what the player types after "examine".
	Name string
	// Description is shown when the feature is examined.
	Description string
}

// Effect is the scripted outcome of using a specific item in a specific room.
type Effect struct {
	// Message is always returned when the effect fires.
	Message string
	// Unlocks names a locked exit to open. Empty means none.
	Unlocks Direction
	// AddsItem names an item to place in the room. Empty means none.
	AddsItem string
	// ConsumesItem removes the used item from the inventory.
	ConsumesItem bool
	// WinsGame ends the game in victory.
	WinsGame bool
}

// Room represents a location in the game world.
type Room struct {
	// ID uniquely identifies this room.
	ID string
	// Name is the short display name of the room.
	Name string
	// Description is the room description shown on arrival.
	Description string
	// Exits lists all passages leading out of this room in authored order.
	Exits []Exit
	// LockedExits maps an exit direction to the lock currently blocking it.
	LockedExits map[Direction]Lock
	// Items holds the IDs of items currently lying in the room.
	Items []string
	// Features lists examine-only details in authored order.
	Features []Feature
	// ItemUses maps an item ID to the effect of using it here.
	ItemUses map[string]Effect
}

// ExitForDirection returns the exit in the given direction, if one exists.
//
// Postcondition: Returns (exit, true) if found, or (Exit{}, false) otherwise.
func (r *Room) ExitForDirection(dir Direction) (Exit, bool) {
	for _, e := range r.Exits {
		if e.Direction == dir {
			return e, true
		}
	}
	return Exit{}, false
}

// LockFor returns the lock on the exit in the given direction, if any.
func (r *Room) LockFor(dir Direction) (Lock, bool) {
	l, ok := r.LockedExits[dir]
	return l, ok
}

// HasItem reports whether the item with the given ID lies in this room.
func (r *Room) HasItem(id string) bool {
	return indexOf(r.Items, id) >= 0
}

// EffectFor returns the effect of using the given item in this room, if any.
func (r *Room) EffectFor(itemID string) (Effect, bool) {
	e, ok := r.ItemUses[itemID]
	return e, ok
}

// World holds every room and item plus the player's carried items.
//
// Item membership (room floor or inventory) is only changed through the
// methods on World so that an item is never in two places at once.
type World struct {
	// StartRoom is the ID of the room a new game begins in.
	StartRoom string
	// Rooms contains all rooms keyed by ID.
	Rooms map[string]*Room
	// Items contains all item definitions keyed by ID.
	Items map[string]*Item

	inventory []string
}

// Room returns the room with the given ID.
//
// Postcondition: Returns the room, or an error wrapping ErrNotFound.
func (w *World) Room(id string) (*Room, error) {
	r, ok := w.Rooms[id]
	if !ok {
		return nil, fmt.Errorf("room %q: %w", id, ErrNotFound)
	}
	return r, nil
}

// Item returns the item definition with the given ID.
//
// Postcondition: Returns the item, or an error wrapping ErrNotFound.
func (w *World) Item(id string) (*Item, error) {
	it, ok := w.Items[id]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	return it, nil
}

// Inventory returns a snapshot of carried item IDs in the order they were picked up.
//
// Postcondition: returned slice is a copy; mutations do not affect internal state.
func (w *World) Inventory() []string {
	out := make([]string, len(w.inventory))
	copy(out, w.inventory)
	return out
}

// Carrying reports whether the item with the given ID is in the inventory.
func (w *World) Carrying(itemID string) bool {
	return indexOf(w.inventory, itemID) >= 0
}

// Take moves an item from a room's floor to the end of the inventory.
//
// Precondition: the item lies in the room.
// Postcondition: on success the item is carried and no longer in the room;
// on failure neither location is changed.
func (w *World) Take(roomID, itemID string) error {
	room, err := w.Room(roomID)
	if err != nil {
		return err
	}
	i := indexOf(room.Items, itemID)
	if i < 0 {
		return fmt.Errorf("item %q in room %q: %w", itemID, roomID, ErrNotFound)
	}
	room.Items = removeAt(room.Items, i)
	w.inventory = append(w.inventory, itemID)
	return nil
}

// Drop moves a carried item onto a room's floor.
//
// Precondition: the item is carried.
// Postcondition: on success the item lies in the room and is no longer carried;
// on failure neither location is changed.
func (w *World) Drop(roomID, itemID string) error {
	room, err := w.Room(roomID)
	if err != nil {
		return err
	}
	i := indexOf(w.inventory, itemID)
	if i < 0 {
		return fmt.Errorf("item %q in inventory: %w", itemID, ErrNotFound)
	}
	w.inventory = removeAt(w.inventory, i)
	room.Items = append(room.Items, itemID)
	return nil
}

// Consume removes a carried item from play.
//
// Postcondition: Returns true if the item was carried and has been removed.
func (w *World) Consume(itemID string) bool {
	i := indexOf(w.inventory, itemID)
	if i < 0 {
		return false
	}
	w.inventory = removeAt(w.inventory, i)
	return true
}

// Unlock removes the lock on the given exit of a room.
//
// Postcondition: Returns (true, nil) if a lock was removed, (false, nil) if
// the exit was not locked.
func (w *World) Unlock(roomID string, dir Direction) (bool, error) {
	room, err := w.Room(roomID)
	if err != nil {
		return false, err
	}
	if _, ok := room.LockedExits[dir]; !ok {
		return false, nil
	}
	delete(room.LockedExits, dir)
	return true, nil
}

// Place puts an item into a room unless it is already somewhere in the world.
//
// Postcondition: Returns (true, nil) if the item was placed, (false, nil) if it
// already lies in a room or is carried, or an error if either ID is unknown.
func (w *World) Place(roomID, itemID string) (bool, error) {
	room, err := w.Room(roomID)
	if err != nil {
		return false, err
	}
	if _, err := w.Item(itemID); err != nil {
		return false, err
	}
	if _, located := w.Locate(itemID); located {
		return false, nil
	}
	room.Items = append(room.Items, itemID)
	return true, nil
}

// Locate reports where an item currently is. An empty room ID with located
// true means the item is carried.
//
// Postcondition: Returns ("", false) if the item is nowhere in the world.
func (w *World) Locate(itemID string) (roomID string, located bool) {
	if w.Carrying(itemID) {
		return "", true
	}
	for id, room := range w.Rooms {
		if room.HasItem(itemID) {
			return id, true
		}
	}
	return "", false
}

// Clone returns a deep copy of the world so independent games never share state.
func (w *World) Clone() *World {
	c := &World{
		StartRoom: w.StartRoom,
		Rooms:     make(map[string]*Room, len(w.Rooms)),
		Items:     make(map[string]*Item, len(w.Items)),
		inventory: append([]string(nil), w.inventory...),
	}
	for id, it := range w.Items {
		cp := *it
		c.Items[id] = &cp
	}
	for id, r := range w.Rooms {
		cp := &Room{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Exits:       append([]Exit(nil), r.Exits...),
			LockedExits: make(map[Direction]Lock, len(r.LockedExits)),
			Items:       append([]string(nil), r.Items...),
			Features:    append([]Feature(nil), r.Features...),
			ItemUses:    make(map[string]Effect, len(r.ItemUses)),
		}
		for d, l := range r.LockedExits {
			cp.LockedExits[d] = l
		}
		for k, e := range r.ItemUses {
			cp.ItemUses[k] = e
		}
		c.Rooms[id] = cp
	}
	return c
}

// Validate checks world invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (w *World) Validate() error {
	if w.StartRoom == "" {
		return fmt.Errorf("start_room must not be empty")
	}
	if len(w.Rooms) == 0 {
		return fmt.Errorf("world must contain at least one room")
	}
	if _, ok := w.Rooms[w.StartRoom]; !ok {
		return fmt.Errorf("start_room %q not found in rooms", w.StartRoom)
	}
	for id, it := range w.Items {
		if it.ID != id {
			return fmt.Errorf("item key %q does not match item ID %q", id, it.ID)
		}
		if it.Name == "" {
			return fmt.Errorf("item %q: name must not be empty", id)
		}
		if it.Description == "" {
			return fmt.Errorf("item %q: description must not be empty", id)
		}
	}

	placed := make(map[string]string)
	for _, id := range w.inventory {
		if _, ok := w.Items[id]; !ok {
			return fmt.Errorf("inventory holds unknown item %q", id)
		}
		if _, dup := placed[id]; dup {
			return fmt.Errorf("item %q is carried more than once", id)
		}
		placed[id] = ""
	}

	for id, room := range w.Rooms {
		if room.ID != id {
			return fmt.Errorf("room key %q does not match room ID %q", id, room.ID)
		}
		if room.Name == "" {
			return fmt.Errorf("room %q: name must not be empty", id)
		}
		if room.Description == "" {
			return fmt.Errorf("room %q: description must not be empty", id)
		}
		seen := make(map[Direction]bool, len(room.Exits))
		for _, exit := range room.Exits {
			if exit.Direction == "" {
				return fmt.Errorf("room %q: exit direction must not be empty", id)
			}
			if exit.Direction != ParseDirection(string(exit.Direction)) {
				return fmt.Errorf("room %q: exit direction %q must be lowercase", id, exit.Direction)
			}
			if seen[exit.Direction] {
				return fmt.Errorf("room %q: duplicate exit %q", id, exit.Direction)
			}
			seen[exit.Direction] = true
			if _, ok := w.Rooms[exit.TargetRoom]; !ok {
				return fmt.Errorf("room %q: exit %q targets unknown room %q", id, exit.Direction, exit.TargetRoom)
			}
		}
		for dir, lock := range room.LockedExits {
			if !seen[dir] {
				return fmt.Errorf("room %q: locked exit %q has no matching exit", id, dir)
			}
			if lock.Description == "" {
				return fmt.Errorf("room %q: locked exit %q: description must not be empty", id, dir)
			}
			if lock.Hint == "" {
				return fmt.Errorf("room %q: locked exit %q: hint must not be empty", id, dir)
			}
		}
		for _, f := range room.Features {
			if f.Name == "" {
				return fmt.Errorf("room %q: feature name must not be empty", id)
			}
			if f.Description == "" {
				return fmt.Errorf("room %q: feature %q: description must not be empty", id, f.Name)
			}
		}
		for _, itemID := range room.Items {
			if _, ok := w.Items[itemID]; !ok {
				return fmt.Errorf("room %q: unknown item %q", id, itemID)
			}
			if where, dup := placed[itemID]; dup {
				if where == "" {
					return fmt.Errorf("room %q: item %q is also carried", id, itemID)
				}
				return fmt.Errorf("room %q: item %q is also placed in room %q", id, itemID, where)
			}
			placed[itemID] = id
		}
		for itemID, eff := range room.ItemUses {
			if _, ok := w.Items[itemID]; !ok {
				return fmt.Errorf("room %q: item use for unknown item %q", id, itemID)
			}
			if eff.Message == "" {
				return fmt.Errorf("room %q: item use %q: message must not be empty", id, itemID)
			}
			if eff.AddsItem != "" {
				if _, ok := w.Items[eff.AddsItem]; !ok {
					return fmt.Errorf("room %q: item use %q adds unknown item %q", id, itemID, eff.AddsItem)
				}
			}
			if eff.Unlocks != "" && !seen[eff.Unlocks] {
				return fmt.Errorf("room %q: item use %q unlocks unknown exit %q", id, itemID, eff.Unlocks)
			}
		}
	}
	return nil
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func removeAt(ids []string, i int) []string {
	out := make([]string, 0, len(ids)-1)
	out = append(out, ids[:i]...)
	return append(out, ids[i+1:]...)
}
