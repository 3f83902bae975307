//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。手动构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.gravewalk -o build/android/gravewalk.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Gravewalk.xcframework -v ./mobile
package mobile

import (
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/gravewalk/pkg/app"
	"github.com/decker502/gravewalk/pkg/embedded"
)

func init() {
	// 初始化嵌入数据
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	// 移动端没有可用的工作目录，图片也从嵌入资源读取
	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		log.Fatalf("资源目录无效: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		Assets:  assets,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
