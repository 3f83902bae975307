// Package scenery 实现关卡场景贴图的状态模型
//
// 所有贴图都是同一个 Tile 实体，用 Kind 标签区分静态与动画两种数据，
// 关卡层通过 Repositioner / Renderer 两个能力接口统一驱动，不依赖具体类型。
//
// 每帧的调用顺序由外部的关卡驱动决定：
//
//	tile.Update(shift) // 动画贴图先推进动画，再沿 X 轴平移
//	img, geo := tile.RenderImage()
package scenery

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Kind 贴图种类标签
type Kind int

const (
	// KindStatic 静态贴图：图像在构造时确定，之后不再变化
	KindStatic Kind = iota
	// KindAnimated 动画贴图：持有帧序列并按固定步长循环
	KindAnimated
)

// String 返回种类名称（用于日志）
func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindAnimated:
		return "animated"
	default:
		return "unknown"
	}
}

var (
	// ErrNoFrames 帧序列为空
	ErrNoFrames = errors.New("scenery: frame sequence is empty")
	// ErrNotAnimated 对静态贴图调用了只属于动画贴图的操作
	ErrNotAnimated = errors.New("scenery: tile is not animated")
	// ErrUnknownDecoration 装饰物类型编号不在 "0".."12" 范围内
	ErrUnknownDecoration = errors.New("scenery: unknown decoration type")
)

// Repositioner 每帧接收镜头位移
type Repositioner interface {
	Update(shift int)
}

// Renderer 返回当前应绘制的图像及其变换（缩放、翻转、平移到贴图位置）
type Renderer interface {
	RenderImage() (*ebiten.Image, ebiten.GeoM)
}

// Sprite 关卡层需要的全部能力
type Sprite interface {
	Repositioner
	Renderer
	Bounds() image.Rectangle
}

// Tile 场景贴图
//
// Rect 是贴图的轴对齐包围盒，只会被 Update 沿 X 轴平移，尺寸不变。
// 静态贴图的 image 构造后不再改变；动画贴图的数据保存在 anim 中。
type Tile struct {
	Kind Kind
	Name string          // 调试用名称，如 "crate"、"decoration:Sign"
	Rect image.Rectangle // 包围盒（屏幕坐标）
	Size int             // 构造时的格子边长

	image *ebiten.Image // 静态贴图图像
	anim  *Animation    // 动画贴图数据，仅 KindAnimated 非 nil
}

var _ Sprite = (*Tile)(nil)

// NewTile 创建一个基础贴图：size x size 的空白图像，左上角位于 (x, y)
func NewTile(size, x, y int) *Tile {
	t := &Tile{
		Kind: KindStatic,
		Rect: image.Rect(x, y, x+size, y+size),
		Size: size,
	}
	// ebiten 不允许创建零尺寸图像
	if size > 0 {
		t.image = ebiten.NewImage(size, size)
	}
	return t
}

// NewStaticTile 创建静态贴图
// 包围盒与基础贴图相同（size x size，左上角锚定），图像替换为 img
func NewStaticTile(size, x, y int, img *ebiten.Image) *Tile {
	return &Tile{
		Kind:  KindStatic,
		Rect:  image.Rect(x, y, x+size, y+size),
		Size:  size,
		image: img,
	}
}

// Update 沿 X 轴平移 shift 像素
// 动画贴图会先推进一次动画。不做边界检查，纯累加。
func (t *Tile) Update(shift int) {
	if t.anim != nil {
		t.anim.advance()
	}
	t.Rect = t.Rect.Add(image.Pt(shift, 0))
}

// Animate 推进动画一步，静态贴图无操作
func (t *Tile) Animate() {
	if t.anim != nil {
		t.anim.advance()
	}
}

// Position 返回包围盒左上角
func (t *Tile) Position() image.Point {
	return t.Rect.Min
}

// Bounds 返回包围盒
func (t *Tile) Bounds() image.Rectangle {
	return t.Rect
}

// Animation 返回动画数据，静态贴图返回 nil
func (t *Tile) Animation() *Animation {
	return t.anim
}

// Frame 返回当前显示的原始图像（未缩放、未翻转）
func (t *Tile) Frame() *ebiten.Image {
	if t.anim != nil {
		return t.anim.Current()
	}
	return t.image
}

// RenderImage 返回当前图像和绘制变换
//
// 动画贴图的变换依次为：缩放到显示尺寸、水平翻转（可选）、平移到 Rect.Min。
// 静态贴图只做平移。
func (t *Tile) RenderImage() (*ebiten.Image, ebiten.GeoM) {
	var geo ebiten.GeoM
	img := t.Frame()
	if img == nil {
		return nil, geo
	}

	if t.anim != nil {
		geo = t.anim.transform(img.Bounds())
	}
	geo.Translate(float64(t.Rect.Min.X), float64(t.Rect.Min.Y))
	return img, geo
}

// Draw 将贴图绘制到 screen
func (t *Tile) Draw(screen *ebiten.Image) {
	img, geo := t.RenderImage()
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{GeoM: geo}
	screen.DrawImage(img, op)
}
