package scenery

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestNewTile 测试基础贴图的包围盒
func TestNewTile(t *testing.T) {
	tile := NewTile(64, 128, 320)

	if tile.Kind != KindStatic {
		t.Errorf("Kind = %v, want static", tile.Kind)
	}
	if tile.Rect != image.Rect(128, 320, 192, 384) {
		t.Errorf("Rect = %v, want (128,320)-(192,384)", tile.Rect)
	}
	if tile.Frame() == nil {
		t.Fatal("Frame() returned nil for a blank tile")
	}
	if b := tile.Frame().Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("blank surface = %dx%d, want 64x64", b.Dx(), b.Dy())
	}

	// 零尺寸贴图不创建图像
	if NewTile(0, 0, 0).Frame() != nil {
		t.Error("Expected nil surface for zero-size tile")
	}
}

// TestUpdate_ShiftIsAdditive 测试位移纯累加：最终 X == 初始 X + Σ位移，Y 与尺寸不变
func TestUpdate_ShiftIsAdditive(t *testing.T) {
	tests := []struct {
		name   string
		shifts []int
	}{
		{name: "无位移", shifts: nil},
		{name: "向左滚动", shifts: []int{-8, -8, -8, -8}},
		{name: "向右滚动", shifts: []int{8, 8, 8}},
		{name: "来回滚动", shifts: []int{8, -8, 0, -16, 3, 5, -1}},
		{name: "大幅位移", shifts: []int{10000, -25000}},
	}

	frames := testFrames(3, 10, 10)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			static := NewStaticTile(64, 100, 200, ebiten.NewImage(64, 64))
			animated, err := NewAnimatedTile(64, 100, 200, frames, AnimationOptions{})
			if err != nil {
				t.Fatalf("NewAnimatedTile() failed: %v", err)
			}

			sum := 0
			for _, s := range tt.shifts {
				static.Update(s)
				animated.Update(s)
				sum += s
			}

			for _, tile := range []*Tile{static, animated} {
				if tile.Rect.Min.X != 100+sum {
					t.Errorf("%v tile X = %d, want %d", tile.Kind, tile.Rect.Min.X, 100+sum)
				}
				if tile.Rect.Min.Y != 200 {
					t.Errorf("%v tile Y = %d, want 200", tile.Kind, tile.Rect.Min.Y)
				}
				if tile.Rect.Dx() != 64 || tile.Rect.Dy() != 64 {
					t.Errorf("%v tile size changed to %dx%d", tile.Kind, tile.Rect.Dx(), tile.Rect.Dy())
				}
			}
		})
	}
}

// TestStaticTile_AppearanceNeverChanges 测试静态贴图外观不随 Update 改变
func TestStaticTile_AppearanceNeverChanges(t *testing.T) {
	img := ebiten.NewImage(64, 64)
	crate := NewCrate(64, 0, 0, img)
	potion := NewPotion(64, 64, 0, img)

	for i := 0; i < 500; i++ {
		crate.Update(-3)
		potion.Update(2)
		crate.Animate()
		if crate.Frame() != img || potion.Frame() != img {
			t.Fatalf("static tile image changed after %d updates", i+1)
		}
	}

	if crate.Animation() != nil || potion.Animation() != nil {
		t.Error("static tiles must not carry animation data")
	}
	if crate.Name != "crate" || potion.Name != "potion" {
		t.Errorf("names = %q, %q; want crate, potion", crate.Name, potion.Name)
	}
}

// TestRenderImage_Static 测试静态贴图只做平移
func TestRenderImage_Static(t *testing.T) {
	img := ebiten.NewImage(32, 32)
	tile := NewStaticTile(64, 10, 20, img)
	tile.Update(5)

	got, geo := tile.RenderImage()
	if got != img {
		t.Fatal("RenderImage() returned a different image")
	}
	x, y := geo.Apply(0, 0)
	if x != 15 || y != 20 {
		t.Errorf("origin maps to (%v, %v), want (15, 20)", x, y)
	}
	x, y = geo.Apply(32, 32)
	if x != 47 || y != 52 {
		t.Errorf("corner maps to (%v, %v), want (47, 52)", x, y)
	}
}

// TestRenderImage_NilImage 测试没有图像时不绘制
func TestRenderImage_NilImage(t *testing.T) {
	tile := NewStaticTile(64, 0, 0, nil)
	img, _ := tile.RenderImage()
	if img != nil {
		t.Error("Expected nil image")
	}
	// 不应 panic
	tile.Draw(ebiten.NewImage(8, 8))
}

// TestKindString 测试种类名称
func TestKindString(t *testing.T) {
	if KindStatic.String() != "static" || KindAnimated.String() != "animated" || Kind(9).String() != "unknown" {
		t.Error("unexpected Kind names")
	}
}

// TestTile_ImplementsSprite 测试能力接口
func TestTile_ImplementsSprite(t *testing.T) {
	var s Sprite = NewTile(16, 0, 0)
	s.Update(4)
	if s.Bounds().Min.X != 4 {
		t.Errorf("Bounds().Min.X = %d, want 4", s.Bounds().Min.X)
	}
}

// testFrames 创建 n 个 w x h 的测试帧
func testFrames(n, w, h int) []*ebiten.Image {
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		frames[i] = ebiten.NewImage(w, h)
	}
	return frames
}
