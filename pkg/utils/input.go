// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入状态
// 统一处理键盘和触摸输入
type InputState struct {
	// 水平方向：-1 向左，0 不动，1 向右
	Direction int
	// 重开本关（R）
	Restart bool
	// 切换调试信息（F3）
	ToggleDebug bool
	// 暂停/继续（Esc）
	Pause bool
}

// GetInputState 获取当前帧的输入状态
// 键盘优先；移动端没有按方向键时，按住屏幕左/右半边也能移动
func GetInputState(screenWidth int) InputState {
	state := InputState{
		Direction: KeyDirection(
			ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
			ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyF3),
		Pause:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	if state.Direction == 0 && IsMobile() {
		touchIDs := ebiten.AppendTouchIDs(nil)
		if len(touchIDs) > 0 {
			x, _ := ebiten.TouchPosition(touchIDs[0])
			state.Direction = TouchDirection(x, screenWidth)
		}
	}

	return state
}

// KeyDirection 根据左右键状态计算方向，同时按下时抵消
func KeyDirection(left, right bool) int {
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	default:
		return 0
	}
}

// TouchDirection 触摸点在屏幕左半边返回 -1，右半边返回 1
func TouchDirection(x, screenWidth int) int {
	if screenWidth <= 0 {
		return 0
	}
	if x < screenWidth/2 {
		return -1
	}
	return 1
}
