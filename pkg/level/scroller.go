package level

// Scroller 根据焦点位置计算每帧的镜头位移
//
// 焦点进入屏幕左侧 Edge 比例区域并向左移动时，世界向右平移 Speed；
// 进入右侧区域并向右移动时，世界向左平移 Speed。
type Scroller struct {
	Speed       int
	Edge        float64
	ScreenWidth int

	offset int // 累计位移
}

// NewScroller 创建镜头滚动器
func NewScroller(speed int, edge float64, screenWidth int) *Scroller {
	return &Scroller{Speed: speed, Edge: edge, ScreenWidth: screenWidth}
}

// Shift 返回本帧的位移，dir 为焦点水平移动方向（-1 左，0 静止，1 右）
func (s *Scroller) Shift(focusX float64, dir int) int {
	width := float64(s.ScreenWidth)
	shift := 0
	switch {
	case dir < 0 && focusX < width*s.Edge:
		shift = s.Speed
	case dir > 0 && focusX > width*(1-s.Edge):
		shift = -s.Speed
	}
	s.offset += shift
	return shift
}

// Offset 返回累计位移
func (s *Scroller) Offset() int {
	return s.offset
}

// Reset 清零累计位移
func (s *Scroller) Reset() {
	s.offset = 0
}
