package scenery

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Group 有序的贴图集合（一个图层）
// 按加入顺序更新和绘制
type Group struct {
	tiles []*Tile
}

// NewGroup 创建贴图集合
func NewGroup(tiles ...*Tile) *Group {
	g := &Group{}
	g.Add(tiles...)
	return g
}

// Add 追加贴图，忽略 nil
func (g *Group) Add(tiles ...*Tile) {
	for _, t := range tiles {
		if t != nil {
			g.tiles = append(g.tiles, t)
		}
	}
}

// Len 返回贴图数量
func (g *Group) Len() int {
	return len(g.tiles)
}

// Tiles 返回全部贴图（调用方不应修改返回的切片）
func (g *Group) Tiles() []*Tile {
	return g.tiles
}

// Update 对每个贴图施加同一个位移
func (g *Group) Update(shift int) {
	for _, t := range g.tiles {
		t.Update(shift)
	}
}

// Draw 按顺序绘制所有贴图
func (g *Group) Draw(screen *ebiten.Image) {
	for _, t := range g.tiles {
		t.Draw(screen)
	}
}

// Collide 返回包围盒与 r 重叠的贴图
func (g *Group) Collide(r image.Rectangle) []*Tile {
	var hits []*Tile
	for _, t := range g.tiles {
		if t.Rect.Overlaps(r) {
			hits = append(hits, t)
		}
	}
	return hits
}

// Remove 移除贴图，返回是否找到
func (g *Group) Remove(tile *Tile) bool {
	for i, t := range g.tiles {
		if t == tile {
			g.tiles = append(g.tiles[:i], g.tiles[i+1:]...)
			return true
		}
	}
	return false
}
