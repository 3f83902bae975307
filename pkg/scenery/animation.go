package scenery

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// DefaultStep 每次推进的帧索引增量（60 TPS 下约 9 帧/秒）
	DefaultStep = 0.15
)

// DefaultDisplaySize 动画贴图默认显示尺寸
var DefaultDisplaySize = image.Pt(100, 96)

// Animation 动画贴图的帧循环状态
//
// 帧索引是一个连续值：每步增加 step，达到或超过帧数时归零（回绕，不是钳制）。
// 显示的帧是 frames[int(index)]。
type Animation struct {
	frames      []*ebiten.Image
	index       float64
	step        float64
	flip        bool
	displaySize image.Point
}

// AnimationOptions 动画贴图构造参数，零值字段使用默认值
type AnimationOptions struct {
	Step        float64     // 帧索引增量，0 表示 DefaultStep
	DisplaySize image.Point // 显示尺寸，零值表示 DefaultDisplaySize
	Flip        bool        // 是否水平翻转
}

// NewAnimatedTile 创建动画贴图
// 包围盒为 size x size，左上角锚定在 (x, y)；帧索引从 0 开始
func NewAnimatedTile(size, x, y int, frames []*ebiten.Image, opts AnimationOptions) (*Tile, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	step := opts.Step
	if step <= 0 {
		step = DefaultStep
	}

	return &Tile{
		Kind: KindAnimated,
		Rect: image.Rect(x, y, x+size, y+size),
		Size: size,
		anim: &Animation{
			frames:      frames,
			step:        step,
			flip:        opts.Flip,
			displaySize: displaySizeOrDefault(opts.DisplaySize),
		},
	}, nil
}

// ChangeState 切换动画外观（例如陷阱激活/解除）
// 替换帧序列、翻转标志和显示尺寸，并把帧索引重置为 0
func (t *Tile) ChangeState(frames []*ebiten.Image, flip bool, size image.Point) error {
	if t.anim == nil {
		return ErrNotAnimated
	}
	if len(frames) == 0 {
		return ErrNoFrames
	}

	t.anim.frames = frames
	t.anim.flip = flip
	t.anim.displaySize = displaySizeOrDefault(size)
	t.anim.index = 0
	return nil
}

// FrameIndex 返回当前帧索引（连续值）
func (a *Animation) FrameIndex() float64 {
	return a.index
}

// FrameCount 返回帧数
func (a *Animation) FrameCount() int {
	return len(a.frames)
}

// Flip 返回是否水平翻转
func (a *Animation) Flip() bool {
	return a.flip
}

// DisplaySize 返回显示尺寸
func (a *Animation) DisplaySize() image.Point {
	return a.displaySize
}

// Step 返回帧索引增量
func (a *Animation) Step() float64 {
	return a.step
}

// Current 返回当前帧
func (a *Animation) Current() *ebiten.Image {
	return a.frames[int(a.index)]
}

func (a *Animation) advance() {
	a.index += a.step
	if a.index >= float64(len(a.frames)) {
		a.index = 0
	}
}

// transform 计算把 bounds 大小的帧缩放到显示尺寸并按需翻转的变换
func (a *Animation) transform(bounds image.Rectangle) ebiten.GeoM {
	var geo ebiten.GeoM
	w, h := bounds.Dx(), bounds.Dy()
	if w > 0 && h > 0 {
		geo.Scale(float64(a.displaySize.X)/float64(w), float64(a.displaySize.Y)/float64(h))
	}
	if a.flip {
		geo.Scale(-1, 1)
		geo.Translate(float64(a.displaySize.X), 0)
	}
	return geo
}

func displaySizeOrDefault(size image.Point) image.Point {
	if size.X <= 0 || size.Y <= 0 {
		return DefaultDisplaySize
	}
	return size
}
