package config

import (
	"fmt"

	"github.com/decker502/gravewalk/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 默认值（与原版一致）
const (
	DefaultScreenWidth    = 1200
	DefaultScreenHeight   = 704
	DefaultTPS            = 60
	DefaultTileSize       = 64
	DefaultAnimationStep  = 0.15 // 每帧帧索引增量
	DefaultAnimatedWidth  = 100  // 动画贴图默认显示宽度
	DefaultAnimatedHeight = 96   // 动画贴图默认显示高度
	DefaultScrollSpeed    = 8    // 镜头滚动速度（像素/帧）
	DefaultScrollEdge     = 0.25 // 触发滚动的屏幕边缘比例
)

// SceneryConfig 场景配置
// 替代原先散落在各处的全局资源路径常量，作为参数显式传给场景构建器
type SceneryConfig struct {
	AssetsDir  string          `yaml:"assetsDir"`  // 磁盘上的资源根目录，如 "assets"
	Screen     ScreenConfig    `yaml:"screen"`     // 屏幕尺寸
	TPS        int             `yaml:"tps"`        // 每秒逻辑帧数
	TileSize   int             `yaml:"tileSize"`   // 贴图格子边长（像素）
	Background string          `yaml:"background"` // 背景图片路径（相对 AssetsDir）
	Terrain    TerrainConfig   `yaml:"terrain"`    // 地形贴图集
	Crate      string          `yaml:"crate"`      // 箱子图片路径
	Potion     string          `yaml:"potion"`     // 药水图片路径
	Decoration string          `yaml:"decoration"` // 装饰物图片目录
	Animation  AnimationConfig `yaml:"animation"`  // 动画贴图参数
	Scroll     ScrollConfig    `yaml:"scroll"`     // 镜头滚动参数
	Traps      TrapConfig      `yaml:"traps"`      // 陷阱的两种外观
	Levels     []string        `yaml:"levels"`     // 关卡文件列表（按顺序游玩）
}

// ScreenConfig 屏幕尺寸
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TerrainConfig 地形贴图集配置
// 贴图集按 TileSize 切成格子，关卡中的地形编号按行优先顺序索引
type TerrainConfig struct {
	Tileset string `yaml:"tileset"`
}

// AnimationConfig 动画贴图参数
type AnimationConfig struct {
	Step   float64 `yaml:"step"`   // 每次 Animate 的帧索引增量
	Width  int     `yaml:"width"`  // 显示宽度
	Height int     `yaml:"height"` // 显示高度
}

// ScrollConfig 镜头滚动参数
type ScrollConfig struct {
	Speed int     `yaml:"speed"` // 每帧位移量
	Edge  float64 `yaml:"edge"`  // 焦点进入左右两侧该比例区域时开始滚动，取值 (0, 0.5)，0 表示默认值
}

// TrapConfig 陷阱外观配置
type TrapConfig struct {
	Armed    AppearanceConfig `yaml:"armed"`
	Disarmed AppearanceConfig `yaml:"disarmed"`
	Period   float64          `yaml:"period"` // 激活/解除切换周期（秒），0 表示不切换
}

// AppearanceConfig 一种动画外观：帧目录、是否水平翻转、显示尺寸
type AppearanceConfig struct {
	Dir    string `yaml:"dir"`
	Flip   bool   `yaml:"flip"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LoadSceneryConfig 从嵌入的数据文件加载场景配置
// 参数：
//
//	path - 配置文件路径，如 "data/scenery.yaml"
//
// 返回：
//
//	*SceneryConfig - 应用默认值并通过校验的配置
//	error - 读取、解析或校验失败
func LoadSceneryConfig(path string) (*SceneryConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenery config file %s: %w", path, err)
	}

	cfg, err := ParseSceneryConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseSceneryConfig 解析 YAML 数据
func ParseSceneryConfig(data []byte) (*SceneryConfig, error) {
	var cfg SceneryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scenery config YAML: %w", err)
	}

	applySceneryDefaults(&cfg)

	if err := validateSceneryConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid scenery config: %w", err)
	}
	return &cfg, nil
}

// applySceneryDefaults 为缺失的可选字段设置默认值
func applySceneryDefaults(cfg *SceneryConfig) {
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = "assets"
	}
	if cfg.Screen.Width == 0 {
		cfg.Screen.Width = DefaultScreenWidth
	}
	if cfg.Screen.Height == 0 {
		cfg.Screen.Height = DefaultScreenHeight
	}
	if cfg.TPS == 0 {
		cfg.TPS = DefaultTPS
	}
	if cfg.TileSize == 0 {
		cfg.TileSize = DefaultTileSize
	}
	if cfg.Animation.Step == 0 {
		cfg.Animation.Step = DefaultAnimationStep
	}
	if cfg.Animation.Width == 0 {
		cfg.Animation.Width = DefaultAnimatedWidth
	}
	if cfg.Animation.Height == 0 {
		cfg.Animation.Height = DefaultAnimatedHeight
	}
	if cfg.Scroll.Speed == 0 {
		cfg.Scroll.Speed = DefaultScrollSpeed
	}
	if cfg.Scroll.Edge == 0 {
		cfg.Scroll.Edge = DefaultScrollEdge
	}

	// 外观未写尺寸时沿用动画默认尺寸
	for _, a := range []*AppearanceConfig{&cfg.Traps.Armed, &cfg.Traps.Disarmed} {
		if a.Width == 0 {
			a.Width = cfg.Animation.Width
		}
		if a.Height == 0 {
			a.Height = cfg.Animation.Height
		}
	}
}

// validateSceneryConfig 校验配置的完整性和合法性
func validateSceneryConfig(cfg *SceneryConfig) error {
	if cfg.Screen.Width < 0 || cfg.Screen.Height < 0 {
		return fmt.Errorf("screen size cannot be negative, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.TileSize < 0 {
		return fmt.Errorf("tileSize cannot be negative, got %d", cfg.TileSize)
	}
	if cfg.Animation.Step < 0 {
		return fmt.Errorf("animation step cannot be negative, got %v", cfg.Animation.Step)
	}
	if cfg.Animation.Width < 0 || cfg.Animation.Height < 0 {
		return fmt.Errorf("animation size cannot be negative, got %dx%d", cfg.Animation.Width, cfg.Animation.Height)
	}
	if cfg.Traps.Period < 0 {
		return fmt.Errorf("traps period cannot be negative, got %v", cfg.Traps.Period)
	}
	if cfg.TPS < 0 {
		return fmt.Errorf("tps cannot be negative, got %d", cfg.TPS)
	}
	if cfg.Scroll.Speed < 0 {
		return fmt.Errorf("scroll speed cannot be negative, got %d", cfg.Scroll.Speed)
	}
	// 缺省的 0 已被默认值替换，这里只剩负数和过大的值
	if cfg.Scroll.Edge <= 0 || cfg.Scroll.Edge >= 0.5 {
		return fmt.Errorf("scroll edge must be in (0, 0.5), got %v", cfg.Scroll.Edge)
	}
	if cfg.Crate == "" {
		return fmt.Errorf("crate image path is required")
	}
	if cfg.Potion == "" {
		return fmt.Errorf("potion image path is required")
	}
	if cfg.Decoration == "" {
		return fmt.Errorf("decoration directory is required")
	}
	if len(cfg.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}
	return nil
}
