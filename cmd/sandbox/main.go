package main

import (
	"flag"
	"os"

	"github.com/hubastard/grove2d/engine/assets"
	"github.com/hubastard/grove2d/engine/config"
	"github.com/hubastard/grove2d/engine/core"
	"github.com/hubastard/grove2d/engine/gfx"
	glbackend "github.com/hubastard/grove2d/engine/gfx/gl"
	"github.com/hubastard/grove2d/engine/logging"
	"github.com/hubastard/grove2d/engine/platform"
	"github.com/hubastard/grove2d/engine/profiler"
	"github.com/hubastard/grove2d/engine/text"
)

type App struct {
	sheetPath string
	font      *text.Font
}

func (a *App) OnStart(e *core.Engine) {
	var err error
	a.font, err = text.NewDefaultFont(e.API, 18)
	if err != nil {
		e.Log.Error("font", "err", err)
		e.Close()
		return
	}

	e.PushLayer(NewLayer2D(a.sheetPath))
	e.PushLayer(&LayerScene{})
	e.PushOverlay(&LayerDebug{font: a.font})
}

func (a *App) OnShutdown(e *core.Engine) {
	if a.font != nil {
		a.font.Close()
	}
}

func main() {
	var (
		cfgPath     = flag.String("config", "", "engine YAML config")
		sheetPath   = flag.String("sheet", "", "sprite sheet image (128px cells)")
		shaderPath  = flag.String("shader", "", "override the 2D texture shader")
		profilePath = flag.String("profile", "", "write a Chrome trace here (profile builds)")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logging.Logger().Error("config", "err", err)
		os.Exit(1)
	}
	lvl, err := cfg.LogLevel()
	if err != nil {
		logging.Logger().Error("config", "err", err)
		os.Exit(1)
	}
	logging.SetLogger(logging.New(lvl, os.Stderr))
	log := logging.Logger()

	if *shaderPath != "" {
		cfg.Renderer2D.ShaderSource, err = assets.LoadShader(*shaderPath)
		if err != nil {
			log.Error("shader", "err", err)
			os.Exit(1)
		}
	}
	if *profilePath != "" {
		profiler.BeginSession("sandbox", *profilePath)
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newAPI := func(core.Window) gfx.API { return glbackend.New() }

	runErr := core.Run(&App{sheetPath: *sheetPath}, cfg.Engine(), newWindow, newAPI)
	if err := profiler.EndSession(); err != nil {
		log.Error("profiler", "err", err)
	}
	if runErr != nil {
		log.Error("run", "err", runErr)
		os.Exit(1)
	}
}
