// Package level 负责把关卡布局组装成场景贴图图层，并在每帧把镜头位移统一分发给所有贴图
package level

import (
	"fmt"
	"image"
	"log"
	"strconv"

	"github.com/decker502/gravewalk/pkg/config"
	"github.com/decker502/gravewalk/pkg/scenery"
	"github.com/decker502/gravewalk/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Level 一个可游玩的关卡
//
// 图层按绘制顺序排列：装饰物、地形、箱子、陷阱、药水。
// 玩家由外部驱动，通过 Interact 报告自己的包围盒。
type Level struct {
	ID   string
	Name string

	Decoration *scenery.Group
	Terrain    *scenery.Group
	Crates     *scenery.Group
	Traps      *scenery.Group
	Potions    *scenery.Group

	builder     *scenery.Builder
	tileSize    int
	playerStart image.Point     // 出生点（屏幕坐标，随滚动平移）
	goal        image.Rectangle // 终点格子（屏幕坐标，随滚动平移）
	trapsArmed  bool
	worldShift  int // 累计位移

	// ResetLevel 为 true 时游戏循环应重开本关
	ResetLevel bool
	// AdvanceLevel 为 true 时游戏循环应进入下一关
	AdvanceLevel bool
}

// Interaction 一次 Interact 的结果
type Interaction struct {
	Potions     int  // 本次拾取的药水数量
	HitTrap     bool // 碰到了激活的陷阱
	ReachedGoal bool // 到达终点
}

// Stats 各图层贴图数量
type Stats struct {
	Decoration int
	Terrain    int
	Crates     int
	Traps      int
	Potions    int
}

// New 根据关卡配置构建关卡
// 任何贴图构建失败（未知装饰物编号、资源缺失）都会让整个关卡构建失败
func New(data *config.LevelConfig, b *scenery.Builder) (*Level, error) {
	size := data.TileSize
	if size == 0 {
		size = b.Config().TileSize
	}

	l := &Level{
		ID:          data.ID,
		Name:        data.Name,
		Decoration:  scenery.NewGroup(),
		Terrain:     scenery.NewGroup(),
		Crates:      scenery.NewGroup(),
		Traps:       scenery.NewGroup(),
		Potions:     scenery.NewGroup(),
		builder:     b,
		tileSize:    size,
		playerStart: utils.CellToPixel(data.PlayerStart.Col, data.PlayerStart.Row, size),
		trapsArmed:  true,
	}
	goal := utils.CellToPixel(data.Goal.Col, data.Goal.Row, size)
	l.goal = image.Rect(goal.X, goal.Y, goal.X+size, goal.Y+size)

	if err := l.buildLayer("terrain", data.Layers.Terrain, l.Terrain, func(x, y int, v string) (*scenery.Tile, error) {
		index, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid terrain index %q", v)
		}
		return b.Terrain(size, x, y, index)
	}); err != nil {
		return nil, err
	}

	if err := l.buildLayer("crates", data.Layers.Crates, l.Crates, func(x, y int, _ string) (*scenery.Tile, error) {
		return b.Crate(size, x, y)
	}); err != nil {
		return nil, err
	}

	if err := l.buildLayer("potions", data.Layers.Potions, l.Potions, func(x, y int, _ string) (*scenery.Tile, error) {
		return b.Potion(size, x, y)
	}); err != nil {
		return nil, err
	}

	if err := l.buildLayer("decoration", data.Layers.Decoration, l.Decoration, func(x, y int, v string) (*scenery.Tile, error) {
		return b.Decoration(size, x, y, v)
	}); err != nil {
		return nil, err
	}

	if err := l.buildLayer("traps", data.Layers.Traps, l.Traps, func(x, y int, _ string) (*scenery.Tile, error) {
		return b.Animated(size, x, y, b.Config().Traps.Armed)
	}); err != nil {
		return nil, err
	}

	if data.StartDisarmed {
		if err := l.SetTrapsArmed(false); err != nil {
			return nil, err
		}
	}

	st := l.Stats()
	log.Printf("[Level] %s built: terrain=%d crates=%d potions=%d decoration=%d traps=%d",
		l.ID, st.Terrain, st.Crates, st.Potions, st.Decoration, st.Traps)
	return l, nil
}

func (l *Level) buildLayer(name string, rows []string, group *scenery.Group, build func(x, y int, v string) (*scenery.Tile, error)) error {
	for _, cell := range utils.ScanLayer(rows, config.EmptyCell) {
		pos := utils.CellToPixel(cell.Col, cell.Row, l.tileSize)
		tile, err := build(pos.X, pos.Y, cell.Value)
		if err != nil {
			return fmt.Errorf("level %s, layer %s, cell (%d, %d): %w", l.ID, name, cell.Col, cell.Row, err)
		}
		group.Add(tile)
	}
	return nil
}

// Layers 返回按绘制顺序排列的图层
func (l *Level) Layers() []*scenery.Group {
	return []*scenery.Group{l.Decoration, l.Terrain, l.Crates, l.Traps, l.Potions}
}

// Update 把本帧的镜头位移施加到所有图层的所有贴图
func (l *Level) Update(shift int) {
	for _, g := range l.Layers() {
		g.Update(shift)
	}
	l.goal = l.goal.Add(image.Pt(shift, 0))
	l.playerStart.X += shift
	l.worldShift += shift
}

// Draw 按图层顺序绘制
func (l *Level) Draw(screen *ebiten.Image) {
	for _, g := range l.Layers() {
		g.Draw(screen)
	}
}

// WorldShift 返回累计位移
func (l *Level) WorldShift() int {
	return l.worldShift
}

// TileSize 返回格子边长
func (l *Level) TileSize() int {
	return l.tileSize
}

// PlayerStart 返回出生点（当前屏幕坐标）
func (l *Level) PlayerStart() image.Point {
	return l.playerStart
}

// Goal 返回终点格子（当前屏幕坐标）
func (l *Level) Goal() image.Rectangle {
	return l.goal
}

// TrapsArmed 返回陷阱是否处于激活状态
func (l *Level) TrapsArmed() bool {
	return l.trapsArmed
}

// SetTrapsArmed 切换所有陷阱的外观
// 失败时陷阱外观和 TrapsArmed 都保持不变
func (l *Level) SetTrapsArmed(armed bool) error {
	look := l.builder.Config().Traps.Disarmed
	if armed {
		look = l.builder.Config().Traps.Armed
	}
	if err := l.builder.ChangeStateAll(l.Traps.Tiles(), look); err != nil {
		return fmt.Errorf("level %s: %w", l.ID, err)
	}
	l.trapsArmed = armed
	return nil
}

// Interact 处理外部玩家包围盒与关卡的交互
// 拾取重叠的药水；碰到激活的陷阱时设置 ResetLevel；到达终点时设置 AdvanceLevel
func (l *Level) Interact(player image.Rectangle) Interaction {
	var result Interaction

	for _, p := range l.Potions.Collide(player) {
		l.Potions.Remove(p)
		result.Potions++
	}

	if l.trapsArmed && len(l.Traps.Collide(player)) > 0 {
		result.HitTrap = true
		l.ResetLevel = true
	}

	if player.Overlaps(l.goal) {
		result.ReachedGoal = true
		l.AdvanceLevel = true
	}

	return result
}

// Stats 返回各图层贴图数量
func (l *Level) Stats() Stats {
	return Stats{
		Decoration: l.Decoration.Len(),
		Terrain:    l.Terrain.Len(),
		Crates:     l.Crates.Len(),
		Traps:      l.Traps.Len(),
		Potions:    l.Potions.Len(),
	}
}
