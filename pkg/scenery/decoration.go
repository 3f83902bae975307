package scenery

import (
	"fmt"
	"image"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// decorationAssets 装饰物类型编号到图片文件名的映射（相对装饰物目录）
// 关卡布局里的编号是字符串，按原样精确匹配，没有默认项
var decorationAssets = map[string]string{
	"0":  "Bone (1).png",
	"1":  "Bone (2).png",
	"2":  "Bone (3).png",
	"3":  "Bone (4).png",
	"4":  "Bush (1).png",
	"5":  "Bush (2).png",
	"6":  "DeadBush.png",
	"7":  "Sign.png",
	"8":  "Skeleton.png",
	"9":  "TombStone (1).png",
	"10": "TombStone (2).png",
	"11": "Tree.png",
	"12": "ArrowSign.png",
}

// DecorationTypeCount 装饰物类型数量
const DecorationTypeCount = 13

// DecorationAsset 返回装饰物类型编号对应的图片文件名
// 未知编号返回 ErrUnknownDecoration
func DecorationAsset(typeID string) (string, error) {
	name, ok := decorationAssets[typeID]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDecoration, typeID)
	}
	return name, nil
}

// NewCrate 创建箱子贴图
func NewCrate(size, x, y int, img *ebiten.Image) *Tile {
	t := NewStaticTile(size, x, y, img)
	t.Name = "crate"
	return t
}

// NewPotion 创建药水贴图
func NewPotion(size, x, y int, img *ebiten.Image) *Tile {
	t := NewStaticTile(size, x, y, img)
	t.Name = "potion"
	return t
}

// NewDecoration 创建装饰物贴图
//
// 与其他静态贴图不同，装饰物以左下角锚定在 (x, y+size)，包围盒取图像自身尺寸，
// 这样高矮不一的装饰物都能贴在地面上。
func NewDecoration(size, x, y int, typeID string, img *ebiten.Image) (*Tile, error) {
	name, err := DecorationAsset(typeID)
	if err != nil {
		return nil, err
	}

	t := NewStaticTile(size, x, y, img)
	t.Name = "decoration:" + strings.TrimSuffix(name, path.Ext(name))
	if img != nil {
		b := img.Bounds()
		bottom := y + size
		t.Rect = image.Rect(x, bottom-b.Dy(), x+b.Dx(), bottom)
	}
	return t, nil
}
