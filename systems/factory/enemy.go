package factory

import (
	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateEnemy(w donburi.World, spawn EnemySpawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	r := spawn.Box
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = enemy

	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:      spawn.Kind,
		Direction: spawn.Direction,
		Steps:     0,
	})
	addToSpace(w, obj)

	return enemy
}
