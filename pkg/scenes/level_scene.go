// Package scenes 实现可游玩的关卡场景
package scenes

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/decker502/gravewalk/pkg/config"
	"github.com/decker502/gravewalk/pkg/game"
	"github.com/decker502/gravewalk/pkg/level"
	"github.com/decker502/gravewalk/pkg/scenery"
	"github.com/decker502/gravewalk/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LevelScene 驱动一个关卡：读取输入、计算镜头位移、更新并绘制所有图层
//
// 场景里没有真正的角色，用一个格子大小的焦点框代替玩家。
// 焦点在屏幕中部时自己移动；进入两侧边缘区域后改为平移整个世界。
type LevelScene struct {
	sceneManager *game.SceneManager
	cfg          *config.SceneryConfig
	level        *level.Level
	scroller     *level.Scroller
	background   *ebiten.Image

	focus     image.Rectangle // 焦点框（屏幕坐标）
	potions   int             // 本关已拾取的药水数
	trapTimer float64         // 距上次切换陷阱状态的时间（秒）
	elapsed   float64         // 进入关卡后的时间（秒，暂停时不计）
	tutorial  config.Tutorial
	paused    bool
	showDebug bool
	loadErr   error // 最近一次切换关卡失败的原因，非 nil 时场景停止推进

	// input 读取本帧输入，测试中可替换
	input func(screenWidth int) utils.InputState
}

// NewLevelScene 根据关卡配置创建关卡场景
// background 可以为 nil，此时用纯色清屏
func NewLevelScene(sm *game.SceneManager, b *scenery.Builder, data *config.LevelConfig, background *ebiten.Image) (*LevelScene, error) {
	l, err := level.New(data, b)
	if err != nil {
		return nil, fmt.Errorf("failed to build level %s: %w", data.ID, err)
	}

	cfg := b.Config()
	start := l.PlayerStart()
	size := l.TileSize()

	s := &LevelScene{
		sceneManager: sm,
		cfg:          cfg,
		level:        l,
		scroller:     level.NewScroller(cfg.Scroll.Speed, cfg.Scroll.Edge, cfg.Screen.Width),
		background:   background,
		focus:        image.Rect(start.X, start.Y, start.X+size, start.Y+size),
		tutorial:     data.Tutorial,
		input:        utils.GetInputState,
	}
	log.Printf("[LevelScene] 关卡 %s (%s) 已就绪，出生点 %v", l.ID, l.Name, start)
	return s, nil
}

// Level 返回场景驱动的关卡
func (s *LevelScene) Level() *level.Level {
	return s.level
}

// Focus 返回焦点框
func (s *LevelScene) Focus() image.Rectangle {
	return s.focus
}

// Potions 返回本关已拾取的药水数
func (s *LevelScene) Potions() int {
	return s.potions
}

// Paused 返回场景是否暂停
func (s *LevelScene) Paused() bool {
	return s.paused
}

// LoadError 返回最近一次重开或切换关卡失败的原因
func (s *LevelScene) LoadError() error {
	return s.loadErr
}

// ShowingTutorial 返回当前是否显示关卡提示
func (s *LevelScene) ShowingTutorial() bool {
	return s.tutorial.Text != "" && s.elapsed < s.tutorial.Seconds
}

// Update 每个 tick 调用一次
func (s *LevelScene) Update(deltaTime float64) {
	in := s.input(s.cfg.Screen.Width)
	if in.ToggleDebug {
		s.showDebug = !s.showDebug
	}
	if in.Pause {
		s.paused = !s.paused
		log.Printf("[LevelScene] paused=%v", s.paused)
	}
	if s.paused {
		return
	}
	if in.Restart {
		s.restart()
		return
	}
	// 切换失败后停在原地，只能按 R 重试
	if s.loadErr != nil {
		return
	}

	s.elapsed += deltaTime
	s.step(in.Direction, deltaTime)

	switch {
	case s.level.ResetLevel:
		log.Printf("[LevelScene] 碰到陷阱，重开关卡 %s", s.level.ID)
		s.restart()
	case s.level.AdvanceLevel:
		log.Printf("[LevelScene] 到达终点，离开关卡 %s", s.level.ID)
		s.transitionFailed(s.sceneManager.NextLevel())
	}
}

// step 推进一帧：移动焦点或滚动世界，更新关卡，切换陷阱，处理交互
func (s *LevelScene) step(dir int, deltaTime float64) {
	center := float64(s.focus.Min.X+s.focus.Max.X) / 2
	shift := s.scroller.Shift(center, dir)

	// 世界不动时焦点自己走
	if shift == 0 && dir != 0 {
		dx := dir * s.scroller.Speed
		if s.focus.Min.X+dx < 0 {
			dx = -s.focus.Min.X
		}
		if s.focus.Max.X+dx > s.cfg.Screen.Width {
			dx = s.cfg.Screen.Width - s.focus.Max.X
		}
		s.focus = s.focus.Add(image.Pt(dx, 0))
	}

	s.level.Update(shift)

	if s.cfg.Traps.Period > 0 {
		s.trapTimer += deltaTime
		if s.trapTimer >= s.cfg.Traps.Period {
			s.trapTimer -= s.cfg.Traps.Period
			if err := s.level.SetTrapsArmed(!s.level.TrapsArmed()); err != nil {
				log.Printf("[LevelScene] 切换陷阱状态失败: %v", err)
			}
		}
	}

	result := s.level.Interact(s.focus)
	s.potions += result.Potions
}

func (s *LevelScene) restart() {
	s.transitionFailed(s.sceneManager.RestartLevel())
}

// transitionFailed 记录切换失败并清除完成标记，避免每帧重试
func (s *LevelScene) transitionFailed(err error) {
	if err == nil {
		return
	}
	log.Printf("[LevelScene] 切换关卡失败: %v", err)
	s.loadErr = err
	s.level.ResetLevel = false
	s.level.AdvanceLevel = false
}

// Draw 绘制背景、关卡图层、焦点框和调试信息
func (s *LevelScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	s.level.Draw(screen)

	f := s.focus
	vector.StrokeRect(screen, float32(f.Min.X), float32(f.Min.Y), float32(f.Dx()), float32(f.Dy()), 2,
		color.RGBA{R: 255, G: 220, B: 0, A: 255}, false)

	if s.ShowingTutorial() {
		ebitenutil.DebugPrintAt(screen, s.tutorial.Text, s.cfg.Screen.Width/2-len(s.tutorial.Text)*3, 40)
	}
	if s.loadErr != nil {
		ebitenutil.DebugPrintAt(screen, "Failed to load level (R to retry):\n"+s.loadErr.Error(), 20, s.cfg.Screen.Height/2-40)
	}
	if s.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED - Esc to resume", s.cfg.Screen.Width/2-66, s.cfg.Screen.Height/2)
	}
	if s.showDebug {
		s.drawDebug(screen)
	}
}

func (s *LevelScene) drawBackground(screen *ebiten.Image) {
	if s.background == nil {
		screen.Fill(color.RGBA{R: 40, G: 44, B: 52, A: 255})
		return
	}

	// 背景拉伸铺满屏幕，不随镜头滚动
	b := s.background.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(s.cfg.Screen.Width)/float64(b.Dx()),
		float64(s.cfg.Screen.Height)/float64(b.Dy()),
	)
	screen.DrawImage(s.background, op)
}

// drawDebug 绘制调试信息（F3 切换）
func (s *LevelScene) drawDebug(screen *ebiten.Image) {
	st := s.level.Stats()
	msg := fmt.Sprintf("level: %s  shift: %d  potions: %d  traps armed: %v\n"+
		"terrain: %d  crates: %d  potions left: %d  decoration: %d  traps: %d\n"+
		"TPS: %0.1f",
		s.level.ID, s.level.WorldShift(), s.potions, s.level.TrapsArmed(),
		st.Terrain, st.Crates, st.Potions, st.Decoration, st.Traps,
		ebiten.ActualTPS())
	ebitenutil.DebugPrint(screen, msg)

	goal := s.level.Goal()
	vector.StrokeRect(screen, float32(goal.Min.X), float32(goal.Min.Y), float32(goal.Dx()), float32(goal.Dy()), 1,
		color.RGBA{R: 0, G: 255, B: 0, A: 160}, false)
}
