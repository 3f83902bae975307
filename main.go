package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/gravewalk/pkg/app"
	"github.com/decker502/gravewalk/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	level := flag.Int("level", 0, "起始关卡序号")
	assetsDir := flag.String("assets", "", "图片资源目录（默认使用 data/scenery.yaml 中的 assetsDir）")
	flag.Parse()

	// 初始化嵌入数据，必须在加载任何配置之前
	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose: *verbose,
		Level:   *level,
	}
	if *assetsDir != "" {
		cfg.Assets = os.DirFS(*assetsDir)
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	screen := gameApp.SceneryConfig().Screen
	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetWindowTitle("Gravewalk")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(gameApp.SceneryConfig().TPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
