package main

import (
	"fmt"
	"os"

	"github.com/hollowforge/inputbridge/engine/config"
	"github.com/hollowforge/inputbridge/engine/shell"
	"github.com/hollowforge/inputbridge/engine/util"
	"github.com/hollowforge/inputbridge/game"
)

func runBridge() {
	cfg := loadConfig(*configPath)
	util.SetLogLevelByName(cfg.Logging.Level)
	util.SetLogCategoriesByName(cfg.Logging.Categories)

	handle, err := game.Make()
	if err != nil {
		util.LogShellError("creating game: " + err.Error())
		os.Exit(1)
	}

	if *headless || cfg.Input.Backend == "terminal" {
		if err := shell.RunHeadless(cfg, handle); err != nil {
			util.LogShellError("headless run: " + err.Error())
			os.Exit(1)
		}
		return
	}

	bridge, err := shell.NewShell(cfg, handle)
	if err != nil {
		util.LogShellError("starting shell: " + err.Error())
		os.Exit(1)
	}
	bridge.Run()
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		util.LogConfigError(fmt.Sprintf("config %s: %v, using defaults", path, err))
		return config.Default()
	}
	util.LogConfigInfo("loaded config from " + path)
	return cfg
}
