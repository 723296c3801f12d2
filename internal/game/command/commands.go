// Package command provides the command registry, parser, and built-in command definitions.
package command

import "github.com/cory-johannsen/adventure/internal/game/world"

// Categories for organizing commands.
const (
	CategoryMovement = "movement"
	CategoryWorld    = "world"
	CategorySystem   = "system"
)

// Verb identifies which interpreter action a command maps to.
type Verb int

// The closed set of verbs understood by the interpreter.
const (
	VerbUnknown Verb = iota
	VerbQuit
	VerbHelp
	VerbLook
	VerbGo
	VerbTake
	VerbDrop
	VerbInventory
	VerbUse
	VerbDirection
)

// String returns the canonical name of the verb.
func (v Verb) String() string {
	switch v {
	case VerbQuit:
		return "quit"
	case VerbHelp:
		return "help"
	case VerbLook:
		return "look"
	case VerbGo:
		return "go"
	case VerbTake:
		return "take"
	case VerbDrop:
		return "drop"
	case VerbInventory:
		return "inventory"
	case VerbUse:
		return "use"
	case VerbDirection:
		return "direction"
	default:
		return "unknown"
	}
}

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command (movement, world, system).
	Category string
	// Verb is the interpreter action the command triggers.
	Verb Verb
	// Direction is the canonical direction for single-word movement commands.
	Direction world.Direction
}

// HelpText is the fixed command summary shown by the help command.
const HelpText = `
Available commands:
- go [direction] - Move in a direction (north, south, east, west, up, down)
- look or examine [object] - Get details about your surroundings or a specific object
- take [item] - Pick up an item
- drop [item] - Drop an item from your inventory
- inventory or i - Show items you're carrying
- use [item] - Use an item in your inventory
- quit or exit - End the game
- help - Show this help text

You can also use shortcuts for directions: n, s, e, w
        `

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		// Movement commands
		{Name: "north", Aliases: []string{"n"}, Help: "Move north", Category: CategoryMovement, Verb: VerbDirection, Direction: world.North},
		{Name: "south", Aliases: []string{"s"}, Help: "Move south", Category: CategoryMovement, Verb: VerbDirection, Direction: world.South},
		{Name: "east", Aliases: []string{"e"}, Help: "Move east", Category: CategoryMovement, Verb: VerbDirection, Direction: world.East},
		{Name: "west", Aliases: []string{"w"}, Help: "Move west", Category: CategoryMovement, Verb: VerbDirection, Direction: world.West},
		{Name: "up", Aliases: nil, Help: "Move up", Category: CategoryMovement, Verb: VerbDirection, Direction: world.Up},
		{Name: "down", Aliases: nil, Help: "Move down", Category: CategoryMovement, Verb: VerbDirection, Direction: world.Down},
		{Name: "go", Aliases: []string{"move", "walk"}, Help: "Move in a direction (go <direction>)", Category: CategoryMovement, Verb: VerbGo},

		// World commands
		{Name: "look", Aliases: []string{"examine"}, Help: "Look around, or examine an object (look [object])", Category: CategoryWorld, Verb: VerbLook},
		{Name: "take", Aliases: []string{"get", "grab"}, Help: "Pick up an item (take <item>)", Category: CategoryWorld, Verb: VerbTake},
		{Name: "drop", Aliases: []string{"leave"}, Help: "Drop a carried item (drop <item>)", Category: CategoryWorld, Verb: VerbDrop},
		{Name: "inventory", Aliases: []string{"i"}, Help: "Show items you're carrying", Category: CategoryWorld, Verb: VerbInventory},
		{Name: "use", Aliases: nil, Help: "Use a carried item (use <item>)", Category: CategoryWorld, Verb: VerbUse},

		// System commands
		{Name: "quit", Aliases: []string{"exit"}, Help: "End the game", Category: CategorySystem, Verb: VerbQuit},
		{Name: "help", Aliases: nil, Help: "Show available commands", Category: CategorySystem, Verb: VerbHelp},
	}
}
