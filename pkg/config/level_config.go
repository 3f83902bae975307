package config

import (
	"fmt"

	"github.com/decker502/gravewalk/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EmptyCell 关卡布局中表示空格子的编号
const EmptyCell = "-1"

// LevelConfig 关卡配置数据结构
// 布局按图层保存，每个图层是若干行逗号分隔的格子编号（与 Tiled 导出的 CSV 一致）
type LevelConfig struct {
	ID            string      `yaml:"id"`            // 关卡ID，如 "level_0"
	Name          string      `yaml:"name"`          // 关卡名称
	Description   string      `yaml:"description"`   // 关卡描述（可选）
	TileSize      int         `yaml:"tileSize"`      // 格子边长，0 表示沿用 SceneryConfig.TileSize
	PlayerStart   GridPoint   `yaml:"playerStart"`   // 玩家出生格子
	Goal          GridPoint   `yaml:"goal"`          // 终点格子，焦点到达后进入下一关
	Layers        LevelLayers `yaml:"layers"`        // 图层布局
	StartDisarmed bool        `yaml:"startDisarmed"` // 陷阱初始处于解除状态（默认激活）
	Tutorial      Tutorial    `yaml:"tutorial"`      // 进入关卡时显示的提示（可选）
}

// Tutorial 进入关卡后在屏幕上显示一段时间的提示文字
type Tutorial struct {
	Text    string  `yaml:"text"`
	Seconds float64 `yaml:"seconds"` // 显示时长，0 表示不显示
}

// GridPoint 格子坐标
type GridPoint struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// LevelLayers 关卡图层
// 所有图层共享同一个格子坐标系；"-1" 为空格子
type LevelLayers struct {
	Terrain    []string `yaml:"terrain"`    // 地形贴图集编号
	Crates     []string `yaml:"crates"`     // 非空即放置箱子
	Potions    []string `yaml:"potions"`    // 非空即放置药水
	Decoration []string `yaml:"decoration"` // 装饰物类型编号 "0".."12"
	Traps      []string `yaml:"traps"`      // 非空即放置陷阱（动画贴图）
}

// LoadLevelConfig 从嵌入的数据文件加载关卡配置
// 参数：
//
//	path - 关卡配置文件路径，如 "data/levels/level_0.yaml"
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}

	levelConfig, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return levelConfig, nil
}

// ParseLevelConfig 解析关卡 YAML 数据并校验
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config: %w", err)
	}
	return &levelConfig, nil
}

// validateLevelConfig 验证关卡配置的完整性和合法性
func validateLevelConfig(config *LevelConfig) error {
	if config.ID == "" {
		return fmt.Errorf("level ID is required")
	}

	if config.Name == "" {
		return fmt.Errorf("level name is required")
	}

	if config.TileSize < 0 {
		return fmt.Errorf("tileSize cannot be negative, got %d", config.TileSize)
	}

	// 没有地形的关卡无法站立
	if len(config.Layers.Terrain) == 0 {
		return fmt.Errorf("terrain layer is required")
	}

	if config.PlayerStart.Col < 0 || config.PlayerStart.Row < 0 {
		return fmt.Errorf("playerStart must not be negative, got (%d, %d)", config.PlayerStart.Col, config.PlayerStart.Row)
	}
	if config.Goal.Col < 0 || config.Goal.Row < 0 {
		return fmt.Errorf("goal must not be negative, got (%d, %d)", config.Goal.Col, config.Goal.Row)
	}

	if config.Tutorial.Seconds < 0 {
		return fmt.Errorf("tutorial seconds cannot be negative, got %v", config.Tutorial.Seconds)
	}

	return nil
}
