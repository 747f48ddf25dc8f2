// termoca is a terminal version of the Game of the Goose for four players.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"termoca/config"
	"termoca/engine"
	"termoca/record"
	"termoca/types"
	"termoca/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "termoca",
		Usage:   "play the Game of the Goose in the terminal",
		Version: Version,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "seed",
				Usage: "die seed, 0 picks one from the clock",
			},
			&cli.BoolFlag{
				Name:  "record",
				Usage: "write a transcript of the game to the history dir",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log every turn to the log file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "colors",
				Usage:  "choose the border color of each kind of cell",
				Action: runColors,
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.InitConfig()
	if err != nil {
		return err
	}

	logger, closeLog := setupLogging(cmd.Bool("debug"))
	defer closeLog()

	gameCfg := engine.DefaultConfig()
	gameCfg.Seed = cmd.Int("seed")
	gameCfg.Record = cmd.Bool("record") || cfg.Record.Enabled

	die := engine.NewDie(gameCfg.Seed)
	game := engine.NewGame(die, logger.WithField("seed", die.Seed()))
	defer game.Close()

	if gameCfg.Record {
		names := make([]string, 0, types.PlayerCount)
		for _, p := range game.State().Players {
			names = append(names, p.Name)
		}
		tr, err := record.NewTranscript(cfg.HistoryDir(), die.Seed(), names)
		if err != nil {
			logger.WithError(err).Warn("transcript disabled")
		} else {
			logger.WithField("path", tr.FilePath).Info("recording transcript")
			game.SetRecorder(tr)
		}
	}

	app := tview.NewApplication()
	view := ui.NewGameView(cfg)
	view.ConnectEngine(game)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		event, quit := view.HandleKey(event)
		if quit {
			app.Stop()
		}
		return event
	})

	logger.Info("game started")
	return app.SetRoot(view.Pages, true).Run()
}

// runColors opens the color configuration screen and saves the choice.
func runColors(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.InitConfig()
	if err != nil {
		return err
	}

	app := tview.NewApplication()
	var saveErr error
	colorConfig := ui.NewColorConfig(cfg, func(err error) {
		saveErr = err
		app.Stop()
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == cfg.Keys.Quit) {
			app.Stop()
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	if err := app.SetRoot(colorConfig.Flex(), true).Run(); err != nil {
		return err
	}
	if saveErr != nil {
		return fmt.Errorf("save config: %w", saveErr)
	}
	return nil
}

// setupLogging sends logs to the XDG state dir, since the terminal belongs to the UI.
func setupLogging(debug bool) (*log.Logger, func()) {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	logger.SetLevel(log.InfoLevel)
	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	path, err := config.LogFile()
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger, func() {}
	}
	logger.SetOutput(f)
	return logger, func() { f.Close() }
}
