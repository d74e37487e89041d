package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"

	"liquidplayer/config"
	"liquidplayer/glass"
	"liquidplayer/player"
)

var (
	ScreenWidth  float64 = 1280
	ScreenHeight float64 = 720
)

var (
	ErrLogger  = log.New(os.Stderr, "[ FAIL ]: ", log.Lshortfile)
	WarnLogger = log.New(os.Stderr, "[ WARN ]: ", log.Lshortfile)
	InfoLogger = log.New(os.Stdout, "[ INFO ]: ", log.Lshortfile)
)

var FlagConfigPath string
var FlagHotReload bool
var FlagDebug bool
var FlagPProf bool

func init() {
	flag.StringVar(&FlagConfigPath, "config", config.DefaultPath, "path to the yaml settings file")
	flag.BoolVar(&FlagHotReload, "hot", false, "enable shader hot reloading")
	flag.BoolVar(&FlagDebug, "debug", false, "show debug console at start")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
}

type App struct {
	Config config.Config

	Player   *player.Player
	Controls *Controls
	Video    *VideoBackground
	Glass    *GlassLayer

	ShowDebugConsole bool

	// last device scale factor read from the monitor
	deviceScale float64

	takeScreenshot bool
}

func NewApp(cfg config.Config) *App {
	a := new(App)

	a.Config = cfg
	a.ShowDebugConsole = FlagDebug
	a.deviceScale = 1

	a.Player = player.New(cfg.Player.Duration)
	a.Controls = NewControls(a.Player, cfg.Player.AutoHide)
	a.Video = NewVideoBackground()
	a.Glass = NewGlassLayer(a.Controls, cfg)

	if !cfg.Overlay.Disabled {
		a.Glass.Start()
	}

	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// window closing
	// ==========================
	if eb.IsWindowBeingClosed() {
		a.Glass.Stop()
		InfoLogger.Print("window closed")
		return eb.Termination
	}

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()
	UpdateInput()

	if m := eb.Monitor(); m != nil {
		a.deviceScale = m.DeviceScaleFactor()
	}

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)

	// ==========================
	// debug keys
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	if FlagHotReload && IsKeyJustPressed(ReloadShadersKey) {
		a.Video.ReloadShader()
		a.Glass.ReloadShader()
	}

	if IsKeyJustPressed(CopyUniformsKey) {
		ClipboardWriteText(a.Glass.UniformSnapshot())
		InfoLogger.Print("copied uniforms to clipboard")
	}

	if IsKeyJustPressed(ScreenshotKey) {
		a.takeScreenshot = true
	}

	if IsKeyJustPressed(ToggleMountKey) {
		a.Controls.Mounted = !a.Controls.Mounted
		InfoLogger.Printf("controls mounted: %v", a.Controls.Mounted)
	}

	if IsKeyJustPressed(ToggleOverlayKey) {
		if a.Glass.Running() {
			a.Glass.Stop()
		} else {
			a.Glass.Start()
		}
	}

	// ==========================
	// player
	// ==========================
	a.Controls.Update()
	a.Player.Advance(UpdateDelta())
	a.Video.Update(a.Controls.ControlsHidden())

	DebugPrint("Position", player.FormatDuration(a.Player.Position))
	DebugPrintf("Speed", "%.2fx", a.Player.Speed)
	DebugPrint("Controls Hidden", a.Controls.ControlsHidden())

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	a.Video.Draw(dst, a.Player)
	a.Glass.Draw(dst)
	a.Controls.Draw(dst)

	// before the debug console so it stays out of the picture
	if a.takeScreenshot {
		a.takeScreenshot = false
		if name, err := TakeScreenshot(dst); err != nil {
			ErrLogger.Printf("failed to take screenshot: %v", err)
		} else {
			InfoLogger.Printf("saved screenshot %s", name)
		}
	}

	if a.ShowDebugConsole {
		a.Glass.PrintDebug()
		DrawDebugMsgs(dst)
	}
}

// Layout renders at the device resolution, capped at max_pixel_ratio.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := glass.CapPixelRatio(a.deviceScale, a.Config.Overlay.MaxPixelRatio)

	width := int(math.Ceil(f64(outsideWidth) * ratio))
	height := int(math.Ceil(f64(outsideHeight) * ratio))

	ScreenWidth = f64(width)
	ScreenHeight = f64(height)

	a.Controls.Layout(ScreenWidth, ScreenHeight, ratio)
	a.Glass.Resize(ScreenWidth, ScreenHeight, ratio)

	return width, height
}

func main() {
	flag.Parse()

	if FlagPProf {
		StartPprof()
	}

	cfg, err := config.Load(FlagConfigPath)
	if err != nil {
		ErrLogger.Printf("failed to load config, using defaults: %v", err)
		cfg = config.Default()
	}

	if err := ApplyColorOverrides(cfg.Colors); err != nil {
		WarnLogger.Printf("color overrides: %v", err)
	}

	InitClipboardManager()

	LoadAssets()

	ScreenWidth = f64(cfg.Window.Width)
	ScreenHeight = f64(cfg.Window.Height)

	app := NewApp(cfg)

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle(cfg.Window.Title)
	eb.SetWindowClosingHandled(true)

	if err := eb.RunGame(app); err != nil {
		ErrLogger.Fatal(err)
	}
}
