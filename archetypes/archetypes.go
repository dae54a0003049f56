package archetypes

import (
	"slices"

	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		tags.Level,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		tags.Level,
		components.Enemy,
		components.Object,
	)
	Coin = newArchetype(
		tags.Coin,
		tags.Level,
		components.Coin,
		components.Object,
	)
	Door = newArchetype(
		tags.Door,
		tags.Level,
		components.Door,
		components.Object,
	)
	Space = newArchetype(
		tags.Level,
		components.Space,
	)
	Session = newArchetype(
		components.Session,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(slices.Concat(a.components, cs)...))
}
