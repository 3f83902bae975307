package level

import "testing"

// TestScroller_Shift 测试焦点在边缘区域时的位移
func TestScroller_Shift(t *testing.T) {
	tests := []struct {
		name   string
		focusX float64
		dir    int
		want   int
	}{
		{name: "左侧区域向左", focusX: 100, dir: -1, want: 8},
		{name: "左侧区域向右", focusX: 100, dir: 1, want: 0},
		{name: "右侧区域向右", focusX: 1000, dir: 1, want: -8},
		{name: "右侧区域向左", focusX: 1000, dir: -1, want: 0},
		{name: "中间区域", focusX: 600, dir: 1, want: 0},
		{name: "静止", focusX: 10, dir: 0, want: 0},
		{name: "恰好在左边界", focusX: 300, dir: -1, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScroller(8, 0.25, 1200)
			if got := s.Shift(tt.focusX, tt.dir); got != tt.want {
				t.Errorf("Shift(%v, %d) = %d, want %d", tt.focusX, tt.dir, got, tt.want)
			}
		})
	}
}

// TestScroller_Offset 测试累计位移
func TestScroller_Offset(t *testing.T) {
	s := NewScroller(8, 0.25, 1200)
	s.Shift(1100, 1)
	s.Shift(1100, 1)
	s.Shift(50, -1)
	if s.Offset() != -8 {
		t.Errorf("Offset() = %d, want -8", s.Offset())
	}
	s.Reset()
	if s.Offset() != 0 {
		t.Errorf("Offset() after Reset = %d, want 0", s.Offset())
	}
}
