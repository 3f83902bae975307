// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/decker502/gravewalk/pkg/config"
	"github.com/decker502/gravewalk/pkg/game"
	"github.com/decker502/gravewalk/pkg/scenery"
	"github.com/decker502/gravewalk/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SceneryConfigPath 场景配置在嵌入数据中的路径
const SceneryConfigPath = "data/scenery.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 起始关卡序号，超出范围时从第 0 关开始
	Level int
	// Assets 图片资源根目录，为 nil 时使用磁盘上的 SceneryConfig.AssetsDir
	Assets fs.FS
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	scenery                  *config.SceneryConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneryCfg, err := config.LoadSceneryConfig(SceneryConfigPath)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载场景配置: %d 个关卡, 资源目录 %s", len(sceneryCfg.Levels), sceneryCfg.AssetsDir)

	assets := cfg.Assets
	if assets == nil {
		assets = os.DirFS(sceneryCfg.AssetsDir)
	}

	// 创建资源管理器和场景构建器
	resourceManager := game.NewResourceManager(assets)
	builder := scenery.NewBuilder(sceneryCfg, resourceManager)

	var background *ebiten.Image
	if sceneryCfg.Background != "" {
		background, err = resourceManager.LoadImage(sceneryCfg.Background)
		if err != nil {
			return nil, fmt.Errorf("背景图片加载失败: %w", err)
		}
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(levelIndex int) (game.Scene, error) {
		levelData, err := config.LoadLevelConfig(sceneryCfg.Levels[levelIndex])
		if err != nil {
			return nil, err
		}
		return scenes.NewLevelScene(sceneManager, builder, levelData, background)
	}, len(sceneryCfg.Levels))

	log.Printf("[App] Starting level: %d", cfg.Level)
	if err := sceneManager.LoadLevel(cfg.Level); err != nil {
		return nil, fmt.Errorf("关卡加载失败: %w", err)
	}

	return &App{
		sceneManager: sceneManager,
		scenery:      sceneryCfg,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（默认每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.scenery.Screen.Width, a.scenery.Screen.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.scenery.Screen.Width, a.scenery.Screen.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(a.DeltaTime())
	return nil
}

// DeltaTime 返回每个 tick 的时长（秒）
func (a *App) DeltaTime() float64 {
	return 1.0 / float64(a.scenery.TPS)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.scenery.Screen.Width, a.scenery.Screen.Height
}

// SceneryConfig 返回场景配置（窗口尺寸、TPS 等）
func (a *App) SceneryConfig() *config.SceneryConfig {
	return a.scenery
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
