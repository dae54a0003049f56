package factory

import (
	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateCoin(w donburi.World, r gamemath.Rect, value int) *donburi.Entry {
	coin := archetypes.Coin.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvCoin)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = coin

	components.Object.SetValue(coin, components.ObjectData{Object: obj})
	components.Coin.SetValue(coin, components.CoinData{Value: value})
	addToSpace(w, obj)

	return coin
}
