//go:build mobile

package utils

// IsMobile 移动端编译时始终返回 true，触摸输入总是生效
func IsMobile() bool {
	return true
}
