package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"darkgrid/pkg/engine/input"
	"darkgrid/pkg/engine/logging"
	"darkgrid/pkg/game/config"
	"darkgrid/pkg/game/gamelog"
	"darkgrid/pkg/game/gameplay"
	"darkgrid/pkg/game/locale"
	"darkgrid/pkg/game/menu"
	"darkgrid/pkg/game/renderer"
	"darkgrid/pkg/game/renderer/tui"
)

func main() {
	cfg := config.Load()

	seed := flag.Int64("seed", cfg.Seed, "map seed (0 picks a new map every game)")
	gamelogPath := flag.String("gamelog", "", "where finished games are recorded (default "+config.DefaultGameLogPath+", or "+config.DefaultSQLiteLogPath+" for sqlite)")
	driver := flag.String("driver", cfg.GameLogDriver, "game log backend: json or sqlite")
	raw := flag.Bool("raw", cfg.RawInput, "read moves as single key presses when stdin is a terminal")
	dumpDir := flag.String("dump", cfg.DumpDir, "directory to write a full map dump of each new game (for developer testing)")
	flag.Parse()

	cfg.Seed = *seed
	cfg.SetGameLogDriver(*driver)
	if *gamelogPath != "" {
		cfg.GameLogPath = *gamelogPath
	}
	cfg.RawInput = *raw
	cfg.DumpDir = *dumpDir

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	logFile, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
		logging.Discard()
	} else {
		defer logFile.Close()
	}

	if err := locale.Init(cfg.Language); err != nil {
		return err
	}

	store, err := gamelog.Open(cfg.GameLogDriver, cfg.GameLogPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.GameLogPath).Msg("could not open game log")
		return err
	}
	defer store.Close()

	log.Info().
		Str("driver", cfg.GameLogDriver).
		Str("path", cfg.GameLogPath).
		Int64("seed", cfg.Seed).
		Msg("starting")

	reader := input.NewReader(os.Stdin, os.Stdout)
	reader.SetRaw(cfg.RawInput)

	console := menu.NewConsole(reader, tui.New(os.Stdout, renderer.DefaultPalette()))
	console.DumpDir = cfg.DumpDir
	recorder := gamelog.NewRecorder(store)
	rng := gameplay.NewRand(cfg.Seed)

	for {
		action, err := menu.RunMainMenu(console)
		if err == nil {
			switch action {
			case menu.MainMenuActionPlay:
				err = menu.PlayGame(console, rng, recorder)
			case menu.MainMenuActionSettings:
				err = menu.RunSettings(console)
			case menu.MainMenuActionHistory:
				err = menu.RunHistory(console, store)
			case menu.MainMenuActionExit:
				console.Renderer.Clear()
				console.Renderer.ShowMessage(locale.Get("GOODBYE"))
				return nil
			}
		}

		if errors.Is(err, io.EOF) || errors.Is(err, input.ErrInterrupted) {
			log.Info().Err(err).Msg("input closed")
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
	}
}
