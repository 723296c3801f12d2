package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/world"
)

// move walks through an exit of the current room and describes the destination.
func (i *Interpreter) move(direction string) string {
	dir := world.ParseDirection(direction)
	room := i.room()

	exit, ok := room.ExitForDirection(dir)
	if !ok {
		return fmt.Sprintf(msgCantGoFmt, direction)
	}
	if lock, locked := room.LockFor(dir); locked {
		return fmt.Sprintf(msgLockedFmt, dir, lock.Description, lock.Hint)
	}

	if _, err := i.world.Room(exit.TargetRoom); err != nil {
		panic(fmt.Sprintf("engine: exit %q from %q: %v", dir, room.ID, err))
	}
	i.logger.Info("player moved",
		zap.String("from", room.ID),
		zap.String("to", exit.TargetRoom),
		zap.String("direction", string(dir)),
	)
	i.current = exit.TargetRoom
	return i.describe()
}
