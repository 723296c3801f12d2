package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// take moves a takeable item from the current room into the inventory.
func (i *Interpreter) take(name string) string {
	room := i.room()
	id, ok := i.findItem(room.Items, name)
	if !ok {
		return fmt.Sprintf(msgNotHereFmt, name)
	}
	it := i.item(id)
	if !it.Takeable {
		return fmt.Sprintf(msgCantTakeFmt, it.Name)
	}
	if err := i.world.Take(room.ID, id); err != nil {
		panic(fmt.Sprintf("engine: take: %v", err))
	}
	i.logger.Debug("item taken", zap.String("item", id), zap.String("room", room.ID))
	return fmt.Sprintf(msgTakeFmt, it.Name)
}

// drop moves a carried item onto the floor of the current room.
func (i *Interpreter) drop(name string) string {
	id, ok := i.findItem(i.world.Inventory(), name)
	if !ok {
		return fmt.Sprintf(msgDontHaveFmt, name)
	}
	room := i.room()
	if err := i.world.Drop(room.ID, id); err != nil {
		panic(fmt.Sprintf("engine: drop: %v", err))
	}
	i.logger.Debug("item dropped", zap.String("item", id), zap.String("room", room.ID))
	return fmt.Sprintf(msgDropFmt, i.item(id).Name)
}

// listInventory renders carried items in pickup order.
func (i *Interpreter) listInventory() string {
	inv := i.world.Inventory()
	if len(inv) == 0 {
		return msgEmptyInv
	}
	var b strings.Builder
	b.WriteString(msgCarrying + "\n")
	for _, id := range inv {
		fmt.Fprintf(&b, "- %s\n", i.item(id).Name)
	}
	return b.String()
}
