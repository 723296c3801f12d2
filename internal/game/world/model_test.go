package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func testWorld() *World {
	return &World{
		StartRoom: "room_a",
		Items: map[string]*Item{
			"key":  {ID: "key", Name: "Key", Description: "A key.", Takeable: true},
			"lamp": {ID: "lamp", Name: "Lamp", Description: "A lamp.", Takeable: true},
			"coin": {ID: "coin", Name: "Coin", Description: "A coin.", Takeable: true},
		},
		Rooms: map[string]*Room{
			"room_a": {
				ID: "room_a", Name: "Room A", Description: "This is room A.",
				Exits: []Exit{
					{Direction: North, TargetRoom: "room_b"},
					{Direction: Down, TargetRoom: "room_b"},
				},
				LockedExits: map[Direction]Lock{Down: {Description: "barred", Hint: "Find a key."}},
				Items:       []string{"key", "lamp"},
				ItemUses: map[string]Effect{
					"key": {Message: "Click.", Unlocks: Down},
				},
			},
			"room_b": {
				ID: "room_b", Name: "Room B", Description: "This is room B.",
				Exits: []Exit{{Direction: South, TargetRoom: "room_a"}},
				ItemUses: map[string]Effect{
					"lamp": {Message: "Something glints.", AddsItem: "coin"},
				},
			},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, testWorld().Validate())
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(w *World)
		want   string
	}{
		{"empty start", func(w *World) { w.StartRoom = "" }, "start_room must not be empty"},
		{"unknown start", func(w *World) { w.StartRoom = "nope" }, `start_room "nope" not found`},
		{"no rooms", func(w *World) { w.Rooms = map[string]*Room{}; w.StartRoom = "x" }, "at least one room"},
		{"room key mismatch", func(w *World) { w.Rooms["room_b"].ID = "other" }, "does not match room ID"},
		{"room name", func(w *World) { w.Rooms["room_a"].Name = "" }, "name must not be empty"},
		{"dangling exit", func(w *World) {
			w.Rooms["room_b"].Exits = append(w.Rooms["room_b"].Exits, Exit{Direction: East, TargetRoom: "void"})
		}, `targets unknown room "void"`},
		{"duplicate exit", func(w *World) {
			w.Rooms["room_b"].Exits = append(w.Rooms["room_b"].Exits, Exit{Direction: South, TargetRoom: "room_a"})
		}, "duplicate exit"},
		{"lock without exit", func(w *World) {
			w.Rooms["room_b"].LockedExits = map[Direction]Lock{Up: {Description: "sealed"}}
		}, `locked exit "up" has no matching exit`},
		{"unknown room item", func(w *World) { w.Rooms["room_b"].Items = []string{"ghost"} }, `unknown item "ghost"`},
		{"item in two rooms", func(w *World) { w.Rooms["room_b"].Items = []string{"key"} }, `item "key" is also placed`},
		{"item twice in one room", func(w *World) { w.Rooms["room_b"].Items = []string{"coin", "coin"} }, `item "coin" is also placed`},
		{"use of unknown item", func(w *World) {
			w.Rooms["room_b"].ItemUses["ghost"] = Effect{Message: "Boo."}
		}, `item use for unknown item "ghost"`},
		{"adds unknown item", func(w *World) {
			w.Rooms["room_b"].ItemUses["lamp"] = Effect{Message: "Hm.", AddsItem: "ghost"}
		}, `adds unknown item "ghost"`},
		{"unlocks unknown exit", func(w *World) {
			w.Rooms["room_a"].ItemUses["key"] = Effect{Message: "Click.", Unlocks: West}
		}, `unlocks unknown exit "west"`},
		{"empty message", func(w *World) {
			w.Rooms["room_a"].ItemUses["key"] = Effect{Unlocks: Down}
		}, "message must not be empty"},
		{"item name", func(w *World) { w.Items["coin"].Name = "" }, `item "coin": name must not be empty`},
		{"uppercase exit", func(w *World) {
			w.Rooms["room_b"].Exits = append(w.Rooms["room_b"].Exits, Exit{Direction: "East", TargetRoom: "room_a"})
		}, `exit direction "East" must be lowercase`},
		{"lock description", func(w *World) {
			w.Rooms["room_a"].LockedExits[Down] = Lock{Hint: "Find a key."}
		}, `locked exit "down": description must not be empty`},
		{"lock hint", func(w *World) {
			w.Rooms["room_a"].LockedExits[Down] = Lock{Description: "barred"}
		}, `locked exit "down": hint must not be empty`},
		{"feature name", func(w *World) {
			w.Rooms["room_b"].Features = []Feature{{Description: "A rug."}}
		}, "feature name must not be empty"},
		{"feature description", func(w *World) {
			w.Rooms["room_b"].Features = []Feature{{Name: "rug"}}
		}, `feature "rug": description must not be empty`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := testWorld()
			tc.mutate(w)
			err := w.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, North, ParseDirection("North"))
	assert.Equal(t, Up, ParseDirection("UP"))
	assert.Equal(t, Down, ParseDirection("down"))
}

func TestRoomAndItem_NotFound(t *testing.T) {
	w := testWorld()
	_, err := w.Room("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = w.Item("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTakeAndDrop(t *testing.T) {
	w := testWorld()
	require.NoError(t, w.Take("room_a", "lamp"))
	assert.Equal(t, []string{"key"}, w.Rooms["room_a"].Items)
	assert.Equal(t, []string{"lamp"}, w.Inventory())
	assert.True(t, w.Carrying("lamp"))

	err := w.Take("room_a", "lamp")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, []string{"lamp"}, w.Inventory(), "failed take leaves inventory unchanged")

	require.NoError(t, w.Drop("room_b", "lamp"))
	assert.Empty(t, w.Inventory())
	assert.Equal(t, []string{"lamp"}, w.Rooms["room_b"].Items)

	err = w.Drop("room_b", "lamp")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestInventory_ReturnsCopy(t *testing.T) {
	w := testWorld()
	require.NoError(t, w.Take("room_a", "key"))
	inv := w.Inventory()
	inv[0] = "mutated"
	assert.Equal(t, []string{"key"}, w.Inventory())
}

func TestUnlock(t *testing.T) {
	w := testWorld()
	ok, err := w.Unlock("room_a", Down)
	require.NoError(t, err)
	assert.True(t, ok)
	_, locked := w.Rooms["room_a"].LockFor(Down)
	assert.False(t, locked)

	ok, err = w.Unlock("room_a", Down)
	require.NoError(t, err)
	assert.False(t, ok, "unlocking twice is a no-op")

	_, err = w.Unlock("nope", Down)
	assert.Error(t, err)
}

func TestPlace_IsSetInsert(t *testing.T) {
	w := testWorld()
	placed, err := w.Place("room_b", "coin")
	require.NoError(t, err)
	assert.True(t, placed)

	placed, err = w.Place("room_b", "coin")
	require.NoError(t, err)
	assert.False(t, placed)
	assert.Equal(t, []string{"coin"}, w.Rooms["room_b"].Items)

	placed, err = w.Place("room_b", "key")
	require.NoError(t, err)
	assert.False(t, placed, "items lying in another room are not moved")

	_, err = w.Place("room_b", "ghost")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestConsume(t *testing.T) {
	w := testWorld()
	require.NoError(t, w.Take("room_a", "key"))
	assert.True(t, w.Consume("key"))
	assert.False(t, w.Consume("key"))
	_, located := w.Locate("key")
	assert.False(t, located)
}

func TestLocate(t *testing.T) {
	w := testWorld()
	room, ok := w.Locate("lamp")
	assert.True(t, ok)
	assert.Equal(t, "room_a", room)

	require.NoError(t, w.Take("room_a", "lamp"))
	room, ok = w.Locate("lamp")
	assert.True(t, ok)
	assert.Equal(t, "", room)

	_, ok = w.Locate("coin")
	assert.False(t, ok)
}

func TestClone_IsDeep(t *testing.T) {
	w := testWorld()
	c := w.Clone()

	require.NoError(t, c.Take("room_a", "key"))
	_, err := c.Unlock("room_a", Down)
	require.NoError(t, err)
	c.Items["lamp"].Name = "Changed"

	assert.Equal(t, []string{"key", "lamp"}, w.Rooms["room_a"].Items)
	assert.Empty(t, w.Inventory())
	_, locked := w.Rooms["room_a"].LockFor(Down)
	assert.True(t, locked)
	assert.Equal(t, "Lamp", w.Items["lamp"].Name)
	assert.NoError(t, c.Validate())
}

func TestRoom_Accessors(t *testing.T) {
	r := testWorld().Rooms["room_a"]
	exit, ok := r.ExitForDirection(North)
	assert.True(t, ok)
	assert.Equal(t, "room_b", exit.TargetRoom)

	_, ok = r.ExitForDirection(West)
	assert.False(t, ok)

	lock, ok := r.LockFor(Down)
	assert.True(t, ok)
	assert.Equal(t, "barred", lock.Description)

	eff, ok := r.EffectFor("key")
	assert.True(t, ok)
	assert.Equal(t, Down, eff.Unlocks)
	assert.True(t, r.HasItem("lamp"))
	assert.False(t, r.HasItem("coin"))
}

func TestPropertyTakeDropKeepsOneLocation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := testWorld()
		ops := rapid.IntRange(1, 40).Draw(t, "ops")
		for n := 0; n < ops; n++ {
			item := rapid.SampledFrom([]string{"key", "lamp"}).Draw(t, "item")
			room := rapid.SampledFrom([]string{"room_a", "room_b"}).Draw(t, "room")
			if rapid.Bool().Draw(t, "take") {
				_ = w.Take(room, item)
			} else {
				_ = w.Drop(room, item)
			}
			if err := w.Validate(); err != nil {
				t.Fatalf("invariant broken after op %d: %v", n, err)
			}
		}
	})
}
