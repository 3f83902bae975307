//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 桌面端构建不嵌入 mobile/assets，只保留 Dummy 让包可以被引用；
// 绑定入口在 mobile.go 中，仅在使用 -tags mobile 时编译。
package mobile

// Dummy 是一个空导出函数
func Dummy() {}
