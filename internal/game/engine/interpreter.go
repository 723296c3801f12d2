// Package engine implements the command interpreter and game state machine.
package engine

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// Result is the outcome of processing one command line.
type Result struct {
	// Text is the player-facing response.
	Text string
	// Ended reports that the game is over, either by quitting or by winning.
	Ended bool
}

// Interpreter owns one game session: the world it mutates and the player's
// location, visited rooms and terminal flags. It is not safe for concurrent use.
type Interpreter struct {
	world     *world.World
	registry  *command.Registry
	logger    *zap.Logger
	sessionID string

	current string
	visited map[string]bool
	running bool
	won     bool
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger used for command tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(i *Interpreter) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithRegistry replaces the built-in command registry.
func WithRegistry(r *command.Registry) Option {
	return func(i *Interpreter) {
		if r != nil {
			i.registry = r
		}
	}
}

// New creates an Interpreter positioned in the world's start room.
//
// Precondition: w must be non-nil. The interpreter takes ownership of w;
// pass w.Clone() to keep the original pristine.
// Postcondition: Returns a running Interpreter, or an error if w fails validation.
func New(w *world.World, opts ...Option) (*Interpreter, error) {
	if w == nil {
		return nil, fmt.Errorf("world must not be nil")
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}

	i := &Interpreter{
		world:     w,
		registry:  command.DefaultRegistry(),
		logger:    zap.NewNop(),
		sessionID: uuid.New().String(),
		current:   w.StartRoom,
		visited:   make(map[string]bool),
		running:   true,
	}
	for _, opt := range opts {
		opt(i)
	}
	i.logger = i.logger.With(zap.String("session", i.sessionID))
	i.logger.Info("game session started",
		zap.String("room", i.current),
		zap.Int("rooms", len(w.Rooms)),
		zap.Int("items", len(w.Items)),
	)
	return i, nil
}

// Process interprets one line of player input and applies its effects.
//
// Postcondition: Returns the response text. Bad input never returns an error;
// it yields an explanatory message and leaves state unchanged.
func (i *Interpreter) Process(line string) Result {
	p := i.registry.Interpret(line)
	i.logger.Debug("processing command",
		zap.String("verb", p.Verb.String()),
		zap.String("argument", p.Argument),
		zap.String("room", i.current),
	)
	text := i.dispatch(line, p)
	return Result{Text: text, Ended: !i.running || i.won}
}

func (i *Interpreter) dispatch(line string, p command.Parsed) string {
	if p.Empty {
		return msgEmptyCommand
	}

	switch p.Verb {
	case command.VerbQuit:
		i.running = false
		i.logger.Info("player quit", zap.String("room", i.current))
		return msgGoodbye
	case command.VerbHelp:
		return command.HelpText
	case command.VerbLook:
		if p.Argument == "" {
			return i.describe()
		}
		return i.examine(p.Argument)
	case command.VerbGo:
		if len(p.Args) == 0 {
			return msgGoWhere
		}
		return i.move(p.Args[0])
	case command.VerbTake:
		if p.Argument == "" {
			return msgTakeWhat
		}
		return i.take(p.Argument)
	case command.VerbDrop:
		if p.Argument == "" {
			return msgDropWhat
		}
		return i.drop(p.Argument)
	case command.VerbInventory:
		return i.listInventory()
	case command.VerbUse:
		if p.Argument == "" {
			return msgUseWhat
		}
		return i.use(p.Argument)
	case command.VerbDirection:
		return i.move(string(p.Command.Direction))
	case command.VerbUnknown:
		return fmt.Sprintf(msgUnknownFmt, line)
	default:
		panic(fmt.Sprintf("engine: unhandled verb %v", p.Verb))
	}
}

// Running reports whether the player has not yet quit. Winning does not clear it.
func (i *Interpreter) Running() bool {
	return i.running
}

// Won reports whether a winning effect has fired.
func (i *Interpreter) Won() bool {
	return i.won
}

// CurrentRoom returns the ID of the room the player is in.
func (i *Interpreter) CurrentRoom() string {
	return i.current
}

// Inventory returns the IDs of carried items in pickup order.
func (i *Interpreter) Inventory() []string {
	return i.world.Inventory()
}

// Visited reports whether the room with the given ID has been described to the player.
func (i *Interpreter) Visited(roomID string) bool {
	return i.visited[roomID]
}

// VisitedRooms returns the IDs of all visited rooms in sorted order.
func (i *Interpreter) VisitedRooms() []string {
	out := make([]string, 0, len(i.visited))
	for id := range i.visited {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SessionID returns the identifier attached to this session's log entries.
func (i *Interpreter) SessionID() string {
	return i.sessionID
}

// World returns the world this interpreter mutates.
func (i *Interpreter) World() *world.World {
	return i.world
}

// room returns the current room. A missing room means the world data was
// corrupted after validation, which no player action can cause.
func (i *Interpreter) room() *world.Room {
	r, err := i.world.Room(i.current)
	if err != nil {
		panic(fmt.Sprintf("engine: current room: %v", err))
	}
	return r
}

// item returns an item definition, panicking on dangling IDs for the same reason as room.
func (i *Interpreter) item(id string) *world.Item {
	it, err := i.world.Item(id)
	if err != nil {
		panic(fmt.Sprintf("engine: %v", err))
	}
	return it
}
