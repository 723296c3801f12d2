// Package content embeds the built-in adventure world.
package content

import (
	_ "embed"
	"fmt"

	"github.com/cory-johannsen/adventure/internal/game/world"
)

// HouseYAML is the raw YAML of the haunted house world.
//
//go:embed house.yaml
var HouseYAML []byte

// House parses and validates a fresh copy of the haunted house world.
//
// Postcondition: Returns a validated World owned by the caller, or a non-nil error.
func House() (*world.World, error) {
	w, err := world.LoadFromBytes(HouseYAML)
	if err != nil {
		return nil, fmt.Errorf("loading built-in house world: %w", err)
	}
	return w, nil
}
