package world

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlWorldFile is the top-level YAML structure for world files.
type yamlWorldFile struct {
	World yamlWorld `yaml:"world"`
}

// yamlWorld is the YAML representation of a world.
type yamlWorld struct {
	StartRoom string     `yaml:"start_room"`
	Items     []yamlItem `yaml:"items"`
	Rooms     []yamlRoom `yaml:"rooms"`
}

// yamlItem is the YAML representation of an item. Takeable defaults to true.
type yamlItem struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Takeable    *bool  `yaml:"takeable"`
}

// yamlRoom is the YAML representation of a room.
type yamlRoom struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Exits       []yamlExit       `yaml:"exits"`
	LockedExits []yamlLockedExit `yaml:"locked_exits"`
	Items       []string         `yaml:"items"`
	Features    []yamlFeature    `yaml:"features"`
	ItemUses    []yamlItemUse    `yaml:"item_uses"`
}

// yamlExit is the YAML representation of an exit.
type yamlExit struct {
	Direction string `yaml:"direction"`
	Target    string `yaml:"target"`
}

// yamlLockedExit is the YAML representation of a lock on an exit.
type yamlLockedExit struct {
	Direction   string `yaml:"direction"`
	Description string `yaml:"description"`
	Hint        string `yaml:"hint"`
}

// yamlFeature is the YAML representation of a room feature.
type yamlFeature struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// yamlItemUse is the YAML representation of an item-use effect.
type yamlItemUse struct {
	Item         string `yaml:"item"`
	Message      string `yaml:"message"`
	Unlocks      string `yaml:"unlocks"`
	AddsItem     string `yaml:"adds_item"`
	ConsumesItem bool   `yaml:"consumes_item"`
	WinsGame     bool   `yaml:"wins_game"`
}

// LoadFromFile reads and validates a world YAML file.
//
// Precondition: path must point to a valid YAML world file.
// Postcondition: Returns a validated World or a non-nil error.
func LoadFromFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses and validates a world from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the world schema.
// Postcondition: Returns a validated World or a non-nil error.
func LoadFromBytes(data []byte) (*World, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}

	w, err := convertYAMLWorld(file.World)
	if err != nil {
		return nil, fmt.Errorf("converting world: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}
	return w, nil
}

// convertYAMLWorld converts the parsed YAML structures into domain types.
// Duplicate IDs and keys are rejected here because maps would silently merge them.
func convertYAMLWorld(yw yamlWorld) (*World, error) {
	w := &World{
		StartRoom: yw.StartRoom,
		Rooms:     make(map[string]*Room, len(yw.Rooms)),
		Items:     make(map[string]*Item, len(yw.Items)),
	}

	for _, yi := range yw.Items {
		if _, exists := w.Items[yi.ID]; exists {
			return nil, fmt.Errorf("duplicate item ID %q", yi.ID)
		}
		takeable := true
		if yi.Takeable != nil {
			takeable = *yi.Takeable
		}
		w.Items[yi.ID] = &Item{
			ID:          yi.ID,
			Name:        yi.Name,
			Description: strings.TrimSpace(yi.Description),
			Takeable:    takeable,
		}
	}

	for _, yr := range yw.Rooms {
		if _, exists := w.Rooms[yr.ID]; exists {
			return nil, fmt.Errorf("duplicate room ID %q", yr.ID)
		}
		room := &Room{
			ID:          yr.ID,
			Name:        yr.Name,
			Description: strings.TrimSpace(yr.Description),
			LockedExits: make(map[Direction]Lock, len(yr.LockedExits)),
			Items:       append([]string(nil), yr.Items...),
			ItemUses:    make(map[string]Effect, len(yr.ItemUses)),
		}
		for _, ye := range yr.Exits {
			room.Exits = append(room.Exits, Exit{
				Direction:  ParseDirection(ye.Direction),
				TargetRoom: ye.Target,
			})
		}
		for _, yl := range yr.LockedExits {
			dir := ParseDirection(yl.Direction)
			if _, exists := room.LockedExits[dir]; exists {
				return nil, fmt.Errorf("room %q: duplicate locked exit %q", yr.ID, dir)
			}
			room.LockedExits[dir] = Lock{Description: yl.Description, Hint: yl.Hint}
		}
		for _, yf := range yr.Features {
			room.Features = append(room.Features, Feature{
				Name:        yf.Name,
				Description: strings.TrimSpace(yf.Description),
			})
		}
		for _, yu := range yr.ItemUses {
			if _, exists := room.ItemUses[yu.Item]; exists {
				return nil, fmt.Errorf("room %q: duplicate item use %q", yr.ID, yu.Item)
			}
			room.ItemUses[yu.Item] = Effect{
				Message:      strings.TrimSpace(yu.Message),
				Unlocks:      ParseDirection(yu.Unlocks),
				AddsItem:     yu.AddsItem,
				ConsumesItem: yu.ConsumesItem,
				WinsGame:     yu.WinsGame,
			}
		}
		w.Rooms[room.ID] = room
	}

	return w, nil
}
