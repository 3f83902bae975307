package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定序号的关卡场景，避免 game 包依赖 scenes 包
type SceneFactory func(levelIndex int) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于创建新关卡
	levelCount   int          // 关卡总数
	currentLevel int          // 当前关卡序号
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or LoadLevel to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数和关卡总数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory, levelCount int) {
	sm.sceneFactory = factory
	sm.levelCount = levelCount
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentLevel 返回当前关卡序号
func (sm *SceneManager) CurrentLevel() int {
	return sm.currentLevel
}

// LoadLevel 加载指定序号的关卡场景
// 序号超出范围时回绕到第 0 关
func (sm *SceneManager) LoadLevel(levelIndex int) error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory is not set")
	}
	if sm.levelCount <= 0 {
		return fmt.Errorf("no levels configured")
	}
	if levelIndex < 0 || levelIndex >= sm.levelCount {
		levelIndex = 0
	}

	log.Printf("[SceneManager] 加载关卡: %d", levelIndex)

	newScene, err := sm.sceneFactory(levelIndex)
	if err != nil {
		return fmt.Errorf("failed to create level %d: %w", levelIndex, err)
	}

	sm.currentLevel = levelIndex
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 成功切换到关卡: %d", levelIndex)
	return nil
}

// RestartLevel 重新加载当前关卡
func (sm *SceneManager) RestartLevel() error {
	return sm.LoadLevel(sm.currentLevel)
}

// NextLevel 加载下一关，最后一关之后回到第 0 关
func (sm *SceneManager) NextLevel() error {
	return sm.LoadLevel(sm.currentLevel + 1)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
