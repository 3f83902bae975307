package utils

import (
	"image"
	"strings"
)

// CellToPixel 将关卡格子坐标转换为左上角像素坐标
// 参数:
//   - col, row: 格子坐标
//   - size: 格子边长
//
// 返回:
//   - 格子左上角的像素坐标
func CellToPixel(col, row, size int) image.Point {
	return image.Pt(col*size, row*size)
}

// SplitLayerRow 拆分关卡图层中的一行
// 行格式与 Tiled 导出的 CSV 相同："0,1,-1,7"，每个格子两侧的空白会被去掉
func SplitLayerRow(row string) []string {
	if strings.TrimSpace(row) == "" {
		return nil
	}
	cells := strings.Split(row, ",")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// LayerCell 图层中的一个非空格子
type LayerCell struct {
	Col   int
	Row   int
	Value string
}

// ScanLayer 遍历图层，返回所有非空格子（行优先顺序）
// empty 为表示空格子的编号，通常是 "-1"；空字符串同样视为空格子
func ScanLayer(rows []string, empty string) []LayerCell {
	var cells []LayerCell
	for r, row := range rows {
		for c, v := range SplitLayerRow(row) {
			if v == "" || v == empty {
				continue
			}
			cells = append(cells, LayerCell{Col: c, Row: r, Value: v})
		}
	}
	return cells
}
