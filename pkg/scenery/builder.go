package scenery

import (
	"fmt"
	"image"
	"path"

	"github.com/decker502/gravewalk/pkg/config"
	"github.com/decker502/gravewalk/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSource 资源加载接口
// 路径均相对于资源根目录；LoadFrames 返回目录下按自然顺序排列的帧序列
type ImageSource interface {
	LoadImage(path string) (*ebiten.Image, error)
	LoadFrames(dir string) ([]*ebiten.Image, error)
}

// Builder 根据显式配置构建场景贴图
// 所有资源路径都来自 SceneryConfig，不使用全局常量
type Builder struct {
	cfg     *config.SceneryConfig
	src     ImageSource
	terrain map[int][]*ebiten.Image // 按格子边长缓存切好的地形贴图集
}

// NewBuilder 创建场景构建器
func NewBuilder(cfg *config.SceneryConfig, src ImageSource) *Builder {
	return &Builder{
		cfg:     cfg,
		src:     src,
		terrain: make(map[int][]*ebiten.Image),
	}
}

// Config 返回构建器使用的配置
func (b *Builder) Config() *config.SceneryConfig {
	return b.cfg
}

// Crate 创建箱子
func (b *Builder) Crate(size, x, y int) (*Tile, error) {
	img, err := b.src.LoadImage(b.cfg.Crate)
	if err != nil {
		return nil, fmt.Errorf("crate: %w", err)
	}
	return NewCrate(size, x, y, img), nil
}

// Potion 创建药水
func (b *Builder) Potion(size, x, y int) (*Tile, error) {
	img, err := b.src.LoadImage(b.cfg.Potion)
	if err != nil {
		return nil, fmt.Errorf("potion: %w", err)
	}
	return NewPotion(size, x, y, img), nil
}

// Decoration 创建装饰物，typeID 为 "0".."12"
func (b *Builder) Decoration(size, x, y int, typeID string) (*Tile, error) {
	name, err := DecorationAsset(typeID)
	if err != nil {
		return nil, err
	}

	img, err := b.src.LoadImage(path.Join(b.cfg.Decoration, name))
	if err != nil {
		return nil, fmt.Errorf("decoration %s: %w", typeID, err)
	}
	return NewDecoration(size, x, y, typeID, img)
}

// Terrain 创建地形贴图，index 为地形贴图集中按行优先顺序的格子编号
func (b *Builder) Terrain(size, x, y, index int) (*Tile, error) {
	cells, err := b.terrainCells(size)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(cells) {
		return nil, fmt.Errorf("terrain index %d out of range [0, %d)", index, len(cells))
	}

	t := NewStaticTile(size, x, y, cells[index])
	t.Name = fmt.Sprintf("terrain:%d", index)
	return t, nil
}

// Animated 以给定外观创建动画贴图
func (b *Builder) Animated(size, x, y int, look config.AppearanceConfig) (*Tile, error) {
	frames, err := b.src.LoadFrames(look.Dir)
	if err != nil {
		return nil, fmt.Errorf("animated tile: %w", err)
	}

	t, err := NewAnimatedTile(size, x, y, frames, AnimationOptions{
		Step:        b.cfg.Animation.Step,
		DisplaySize: image.Pt(look.Width, look.Height),
		Flip:        look.Flip,
	})
	if err != nil {
		return nil, fmt.Errorf("animated tile %s: %w", look.Dir, err)
	}
	t.Name = "animated:" + look.Dir
	return t, nil
}

// ChangeState 加载新外观的帧序列并切换动画贴图
func (b *Builder) ChangeState(t *Tile, look config.AppearanceConfig) error {
	return b.ChangeStateAll([]*Tile{t}, look)
}

// ChangeStateAll 把一组动画贴图切换到同一外观
// 帧序列只加载一次；任何一个贴图不能切换时所有贴图都保持原样
func (b *Builder) ChangeStateAll(tiles []*Tile, look config.AppearanceConfig) error {
	for _, t := range tiles {
		if t.Kind != KindAnimated {
			return fmt.Errorf("change state %s: %w", t.Name, ErrNotAnimated)
		}
	}
	if len(tiles) == 0 {
		return nil
	}

	frames, err := b.src.LoadFrames(look.Dir)
	if err != nil {
		return fmt.Errorf("change state: %w", err)
	}
	if len(frames) == 0 {
		return fmt.Errorf("change state %s: %w", look.Dir, ErrNoFrames)
	}

	size := image.Pt(look.Width, look.Height)
	for _, t := range tiles {
		// 上面已检查种类和帧数，这里不会失败
		if err := t.ChangeState(frames, look.Flip, size); err != nil {
			return fmt.Errorf("change state %s: %w", look.Dir, err)
		}
		t.Name = "animated:" + look.Dir
	}
	return nil
}

func (b *Builder) terrainCells(size int) ([]*ebiten.Image, error) {
	if cells, ok := b.terrain[size]; ok {
		return cells, nil
	}
	if b.cfg.Terrain.Tileset == "" {
		return nil, fmt.Errorf("terrain tileset is not configured")
	}

	tileset, err := b.src.LoadImage(b.cfg.Terrain.Tileset)
	if err != nil {
		return nil, fmt.Errorf("terrain tileset: %w", err)
	}

	cells := utils.SliceTileset(tileset, size)
	b.terrain[size] = cells
	return cells, nil
}
