package app

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/gravewalk/pkg/embedded"
	"github.com/decker502/gravewalk/pkg/scenes"
)

const testSceneryYAML = `tileSize: 64
terrain:
  tileset: terrain.png
crate: crate.png
potion: potion.png
decoration: decoration
traps:
  armed: {dir: traps/on}
  disarmed: {dir: traps/off, flip: true}
levels:
  - data/levels/level_0.yaml
  - data/levels/level_1.yaml
`

func testLevelYAML(id string) string {
	return "id: " + id + "\nname: " + id + "\nplayerStart: {col: 1, row: 1}\ngoal: {col: 8, row: 1}\n" +
		"layers:\n  terrain:\n    - \"-1,-1\"\n    - \"0,0\"\n  decoration:\n    - \"7\"\n  traps:\n    - \"-1,-1,-1,0\"\n"
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func testAssets(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"terrain.png":         {Data: encodePNG(t, 64, 64)},
		"crate.png":           {Data: encodePNG(t, 64, 64)},
		"potion.png":          {Data: encodePNG(t, 32, 32)},
		"decoration/Sign.png": {Data: encodePNG(t, 80, 70)},
		"traps/on/1.png":      {Data: encodePNG(t, 8, 8)},
		"traps/on/2.png":      {Data: encodePNG(t, 8, 8)},
		"traps/off/1.png":     {Data: encodePNG(t, 8, 8)},
	}
}

func initTestData(t *testing.T, levels ...string) {
	t.Helper()
	data := fstest.MapFS{"data/scenery.yaml": {Data: []byte(testSceneryYAML)}}
	for _, id := range levels {
		data["data/levels/"+id+".yaml"] = &fstest.MapFile{Data: []byte(testLevelYAML(id))}
	}
	embedded.Init(data)
	t.Cleanup(func() { embedded.Init(nil) })
}

// TestNewApp 测试应用初始化并加载起始关卡
func TestNewApp(t *testing.T) {
	initTestData(t, "level_0", "level_1")

	a, err := NewApp(Config{Verbose: true, Level: 1, Assets: testAssets(t)})
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}

	if a.GetSceneManager().CurrentLevel() != 1 {
		t.Errorf("CurrentLevel() = %d, want 1", a.GetSceneManager().CurrentLevel())
	}
	scene, ok := a.GetSceneManager().GetCurrentScene().(*scenes.LevelScene)
	if !ok {
		t.Fatalf("current scene is %T, want *scenes.LevelScene", a.GetSceneManager().GetCurrentScene())
	}
	if scene.Level().ID != "level_1" {
		t.Errorf("level ID = %s, want level_1", scene.Level().ID)
	}

	w, h := a.Layout(0, 0)
	if w != 1200 || h != 704 {
		t.Errorf("Layout() = %dx%d, want 1200x704", w, h)
	}
	if got := a.DeltaTime(); got != 1.0/60 {
		t.Errorf("DeltaTime() = %v, want 1/60", got)
	}
}

// TestNewApp_LevelOutOfRange 测试起始关卡越界时从第 0 关开始
func TestNewApp_LevelOutOfRange(t *testing.T) {
	initTestData(t, "level_0", "level_1")

	a, err := NewApp(Config{Verbose: true, Level: 7, Assets: testAssets(t)})
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}
	if a.GetSceneManager().CurrentLevel() != 0 {
		t.Errorf("CurrentLevel() = %d, want 0", a.GetSceneManager().CurrentLevel())
	}
}

// TestNewApp_Errors 测试初始化失败
func TestNewApp_Errors(t *testing.T) {
	t.Run("缺少关卡文件", func(t *testing.T) {
		initTestData(t, "level_1")
		_, err := NewApp(Config{Verbose: true, Assets: testAssets(t)})
		if err == nil || !strings.Contains(err.Error(), "level_0.yaml") {
			t.Errorf("error = %v, want missing level_0.yaml", err)
		}
	})

	t.Run("缺少资源", func(t *testing.T) {
		initTestData(t, "level_0", "level_1")
		assets := testAssets(t)
		delete(assets, "decoration/Sign.png")
		_, err := NewApp(Config{Verbose: true, Assets: assets})
		if err == nil || !strings.Contains(err.Error(), "Sign.png") {
			t.Errorf("error = %v, want missing Sign.png", err)
		}
	})

	t.Run("未初始化嵌入数据", func(t *testing.T) {
		embedded.Init(nil)
		if _, err := NewApp(Config{Verbose: true}); err == nil {
			t.Error("expected error without embedded data")
		}
	})
}
