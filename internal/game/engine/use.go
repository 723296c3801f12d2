package engine

import (
	"fmt"

	"go.uber.org/zap"
)

// use applies the current room's effect for a carried item.
//
// Effects apply in a fixed order: unlock, add item, consume, win. The
// effect's message is returned whichever of them fired.
func (i *Interpreter) use(name string) string {
	id, ok := i.findItem(i.world.Inventory(), name)
	if !ok {
		return fmt.Sprintf(msgDontHaveFmt, name)
	}

	room := i.room()
	eff, ok := room.EffectFor(id)
	if !ok {
		return fmt.Sprintf(msgNothingHapFmt, name)
	}

	log := i.logger.With(zap.String("item", id), zap.String("room", room.ID))
	if eff.Unlocks != "" {
		unlocked, err := i.world.Unlock(room.ID, eff.Unlocks)
		if err != nil {
			panic(fmt.Sprintf("engine: unlock: %v", err))
		}
		if unlocked {
			log.Info("exit unlocked", zap.String("direction", string(eff.Unlocks)))
		}
	}
	if eff.AddsItem != "" {
		placed, err := i.world.Place(room.ID, eff.AddsItem)
		if err != nil {
			panic(fmt.Sprintf("engine: place: %v", err))
		}
		if placed {
			log.Info("item revealed", zap.String("added", eff.AddsItem))
		}
	}
	if eff.ConsumesItem && i.world.Consume(id) {
		log.Info("item consumed")
	}
	if eff.WinsGame && !i.won {
		i.won = true
		log.Info("game won")
	}
	return eff.Message
}
