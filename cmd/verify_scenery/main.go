// verify_scenery 检查场景配置和所有关卡布局，不打开窗口
//
// 用法：
//
//	go run ./cmd/verify_scenery                  # 只检查 YAML 和装饰物编号
//	go run ./cmd/verify_scenery --assets assets  # 同时加载图片并构建每一关
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"sort"

	"github.com/decker502/gravewalk/pkg/config"
	"github.com/decker502/gravewalk/pkg/embedded"
	"github.com/decker502/gravewalk/pkg/game"
	"github.com/decker502/gravewalk/pkg/level"
	"github.com/decker502/gravewalk/pkg/scenery"
	"github.com/decker502/gravewalk/pkg/utils"
	"github.com/maruel/natural"
)

var (
	root      = flag.String("root", ".", "项目根目录（包含 data/）")
	assetsDir = flag.String("assets", "", "图片资源目录，为空时不加载图片")
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	embedded.Init(os.DirFS(*root))

	var assets fs.FS
	if *assetsDir != "" {
		assets = os.DirFS(*assetsDir)
	}

	if err := verify(os.Stdout, assets); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")
}

// verify 加载场景配置并逐关检查，结果写到 w
// assets 为 nil 时只统计布局，不构建贴图
func verify(w io.Writer, assets fs.FS) error {
	cfg, err := config.LoadSceneryConfig("data/scenery.yaml")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "scenery: %d levels, tile %dpx, screen %dx%d\n",
		len(cfg.Levels), cfg.TileSize, cfg.Screen.Width, cfg.Screen.Height)

	var builder *scenery.Builder
	if assets != nil {
		builder = scenery.NewBuilder(cfg, game.NewResourceManager(assets))
	}

	listed := make(map[string]bool, len(cfg.Levels))
	for i, p := range cfg.Levels {
		if !embedded.Exists(p) {
			return fmt.Errorf("level %d: %s does not exist", i, p)
		}
		listed[p] = true

		data, err := config.LoadLevelConfig(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "[%d] %s %q\n", i, data.ID, data.Name)

		if err := verifyLayout(w, data); err != nil {
			return fmt.Errorf("level %s: %w", data.ID, err)
		}

		if builder == nil {
			continue
		}
		l, err := level.New(data, builder)
		if err != nil {
			return err
		}
		// 关卡只用初始外观构建，另一种外观也要能加载
		armed := l.TrapsArmed()
		if err := l.SetTrapsArmed(!armed); err != nil {
			return err
		}
		if err := l.SetTrapsArmed(armed); err != nil {
			return err
		}

		st := l.Stats()
		fmt.Fprintf(w, "    built: terrain=%d crates=%d potions=%d decoration=%d traps=%d\n",
			st.Terrain, st.Crates, st.Potions, st.Decoration, st.Traps)
	}

	// 放在 data/levels 下却没有加入关卡列表的文件不会被游玩
	files, err := embedded.Glob("data/levels/*.yaml")
	if err != nil {
		return err
	}
	for _, f := range files {
		if !listed[f] {
			fmt.Fprintf(w, "warning: %s is not listed in scenery levels\n", f)
		}
	}
	return nil
}

// verifyLayout 统计每个图层的非空格子，并检查装饰物编号
func verifyLayout(w io.Writer, data *config.LevelConfig) error {
	layers := []struct {
		name string
		rows []string
	}{
		{"terrain", data.Layers.Terrain},
		{"crates", data.Layers.Crates},
		{"potions", data.Layers.Potions},
		{"decoration", data.Layers.Decoration},
		{"traps", data.Layers.Traps},
	}

	for _, layer := range layers {
		cells := utils.ScanLayer(layer.rows, config.EmptyCell)
		fmt.Fprintf(w, "    %-10s %4d cells\n", layer.name, len(cells))
	}

	counts := make(map[string]int)
	for _, cell := range utils.ScanLayer(data.Layers.Decoration, config.EmptyCell) {
		if _, err := scenery.DecorationAsset(cell.Value); err != nil {
			return fmt.Errorf("decoration cell (%d, %d): %w", cell.Col, cell.Row, err)
		}
		counts[cell.Value]++
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Sort(natural.StringSlice(ids))
	for _, id := range ids {
		name, _ := scenery.DecorationAsset(id)
		fmt.Fprintf(w, "    decoration %-2s %-18s x%d\n", id, name, counts[id])
	}
	return nil
}
