package systems

import (
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// levelSpace returns the current level's collision space.
func levelSpace(w donburi.World) *resolv.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// Overlapping returns the objects carrying tag that strictly overlap r.
// resolv narrows the search to shared cells; every candidate is then
// confirmed with gamemath.Overlaps so results match a brute-force scan.
func Overlapping(w donburi.World, r gamemath.Rect, tag string) []*resolv.Object {
	space := levelSpace(w)
	if space == nil {
		return nil
	}

	// resolv registers an object in the cells under [X, X+W-1]; padding the
	// probe by a pixel on each side covers sub-pixel contacts on cell edges.
	probe := resolv.NewObject(r.X-1, r.Y-1, r.W+2, r.H+2)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	seen := make(map[*resolv.Object]bool)
	for _, obj := range check.ObjectsByTags(tag) {
		if seen[obj] {
			continue
		}
		seen[obj] = true
		if gamemath.Overlaps(r, gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H)) {
			hits = append(hits, obj)
		}
	}
	return hits
}

// CollidesWithWalls reports whether r overlaps any wall.
func CollidesWithWalls(w donburi.World, r gamemath.Rect) bool {
	return len(Overlapping(w, r, tags.ResolvSolid)) > 0
}

// entryOf returns the live entity linked to a resolv object.
func entryOf(w donburi.World, obj *resolv.Object) (*donburi.Entry, bool) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || entry == nil || !w.Valid(entry.Entity()) {
		return nil, false
	}
	return entry, true
}

// WallRects returns the hitboxes of the current walls.
func WallRects(w donburi.World) []gamemath.Rect {
	var rects []gamemath.Rect
	tags.Wall.Each(w, func(e *donburi.Entry) {
		rects = append(rects, components.Object.Get(e).Rect())
	})
	return rects
}

// EnemyRects returns the kind-sized hitboxes of the current enemies.
func EnemyRects(w donburi.World) []gamemath.Rect {
	var rects []gamemath.Rect
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		rects = append(rects, components.Object.Get(e).Rect())
	})
	return rects
}

// PlayerRect returns the player's hitbox.
func PlayerRect(w donburi.World) (gamemath.Rect, bool) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return gamemath.Rect{}, false
	}
	return components.Object.Get(entry).Rect(), true
}
