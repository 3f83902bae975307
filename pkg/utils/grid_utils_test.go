package utils

import (
	"image"
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestCellToPixel 测试格子坐标到像素坐标的转换
func TestCellToPixel(t *testing.T) {
	tests := []struct {
		col, row, size int
		want           image.Point
	}{
		{0, 0, 64, image.Pt(0, 0)},
		{3, 2, 64, image.Pt(192, 128)},
		{10, 10, 32, image.Pt(320, 320)},
	}
	for _, tt := range tests {
		if got := CellToPixel(tt.col, tt.row, tt.size); got != tt.want {
			t.Errorf("CellToPixel(%d, %d, %d) = %v, want %v", tt.col, tt.row, tt.size, got, tt.want)
		}
	}
}

// TestSplitLayerRow 测试图层行拆分
func TestSplitLayerRow(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want []string
	}{
		{name: "普通行", row: "0,1,-1,7", want: []string{"0", "1", "-1", "7"}},
		{name: "带空白", row: " 0 , 12,-1 ", want: []string{"0", "12", "-1"}},
		{name: "空行", row: "   ", want: nil},
		{name: "单格", row: "5", want: []string{"5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLayerRow(tt.row); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLayerRow(%q) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}

// TestScanLayer 测试非空格子遍历
func TestScanLayer(t *testing.T) {
	rows := []string{
		"-1,-1,7",
		"",
		"0,,-1,12",
	}
	got := ScanLayer(rows, "-1")
	want := []LayerCell{
		{Col: 2, Row: 0, Value: "7"},
		{Col: 0, Row: 2, Value: "0"},
		{Col: 3, Row: 2, Value: "12"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScanLayer() = %+v, want %+v", got, want)
	}
}

// TestSliceTileset 测试贴图集切片
func TestSliceTileset(t *testing.T) {
	src := ebiten.NewImage(200, 130) // 3 x 2 个完整格子，边缘不足一格的部分丢弃

	cells := SliceTileset(src, 64)
	if len(cells) != 6 {
		t.Fatalf("got %d cells, want 6", len(cells))
	}
	for i, c := range cells {
		want := image.Rect((i%3)*64, (i/3)*64, (i%3)*64+64, (i/3)*64+64)
		if c.Bounds() != want {
			t.Errorf("cell %d bounds = %v, want %v", i, c.Bounds(), want)
		}
	}

	if SliceTileset(nil, 64) != nil {
		t.Error("nil source should return nil")
	}
	if SliceTileset(src, 0) != nil {
		t.Error("zero size should return nil")
	}
}

// TestCropImage 测试裁剪超出边界时被限制在图像内
func TestCropImage(t *testing.T) {
	src := ebiten.NewImage(50, 50)
	got := CropImage(src, image.Rect(40, 40, 80, 80))
	if got.Bounds() != image.Rect(40, 40, 50, 50) {
		t.Errorf("CropImage bounds = %v, want (40,40)-(50,50)", got.Bounds())
	}
	if CropImage(nil, image.Rect(0, 0, 1, 1)) != nil {
		t.Error("nil source should return nil")
	}
}
