// othello-local is a two-player Othello game for the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"othello-local/config"
	"othello-local/engine"
	"othello-local/game"
	"othello-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagHint        = flag.Bool("hint", false, "Mark legal moves with + without asking")
	flagTUI         = flag.Bool("tui", false, "Play on a full-screen board instead of the line console")
	flagVersion     = flag.Bool("version", false, "Print version and exit")
	flagWriteConfig = flag.Bool("write-config", false, "Write the current configuration to the config file and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("othello-local %s\n", Version)
		return
	}

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if *flagWriteConfig {
		path, err := cfg.Save()
		if err != nil {
			fmt.Printf("Failed to write config: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	logger, err := NewLogger(cfg.Log)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %s\n", err)
		os.Exit(1)
	}

	if *flagTUI {
		err = runTUI(cfg, logger)
	} else {
		err = runConsole(cfg, logger)
	}
	if err != nil {
		switch {
		case engine.IsInvariant(err):
			logger.Errorw("game aborted", zap.Error(err))
		case errors.Is(err, game.ErrInputClosed):
			logger.Warnw("game abandoned", zap.Error(err))
		default:
			logger.Errorw("game failed", zap.Error(err))
		}
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// NewLogger builds a production zap logger writing to the configured path.
func NewLogger(c config.LogConfig) (*zap.SugaredLogger, error) {
	level, err := c.ZapLevel()
	if err != nil {
		return nil, err
	}
	path := c.File
	if path == "" {
		path = "stderr"
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// runConsole plays the line-based game on stdin and stdout.
func runConsole(cfg *config.Config, log *zap.SugaredLogger) error {
	console := game.NewConsole(os.Stdin, os.Stdout, cfg.Glyphs(), log)

	switch {
	case *flagHint || cfg.Hints == config.HintsAlways:
		console.Hints = true
	case cfg.Hints == config.HintsNever:
		console.Hints = false
	default:
		if _, err := console.AskHints(); err != nil {
			return err
		}
	}

	_, err := console.Run()
	return err
}

// runTUI plays on a tview board until the user quits.
func runTUI(cfg *config.Config, log *zap.SugaredLogger) error {
	var fatal error

	app := tview.NewApplication()
	rootPage := tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ○ othello ● ")

	// Game view setup
	gameHint := tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	infoPanel := ui.NewGameInfoPanel()
	gameBoard := ui.NewBoard(cfg, gameHint, infoPanel, log)
	gameFrame := ui.CreateGameLayout(gameBoard, infoPanel, gameHint)

	gameBoard.OnFatal(func(err error) {
		fatal = err
		app.Stop()
	})
	gameBoard.OnGameEnd(func(res game.Result) {
		glyphs := cfg.Glyphs()
		modal := tview.NewModal().
			SetText(fmt.Sprintf("GAME OVER\n\n%c: %d\n%c: %d\n\n%s",
				glyphs.First, res.Score.First, glyphs.Second, res.Score.Second, gameBoard.Verdict(res))).
			AddButtons([]string{"Board", "New Game", "Quit"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("gameover")
				switch buttonLabel {
				case "New Game":
					rootPage.SwitchToPage("setup")
				case "Quit":
					app.Stop()
				}
			})
		rootPage.AddPage("gameover", modal, true, true)
	})

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyDown:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyRight:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyEnter:
			gameBoard.PlayMove()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(0, -1)
			case 'j':
				gameBoard.MoveSelection(1, 0)
			case 'k':
				gameBoard.MoveSelection(-1, 0)
			case 'l':
				gameBoard.MoveSelection(0, 1)
			}
		}
		return event
	})

	// Game setup screen
	setupUI := ui.NewGameSetup(
		*flagHint || cfg.Hints == config.HintsAlways,
		func(showHints bool) {
			gameBoard.NewGame(showHints)
			rootPage.SwitchToPage("gameview")
		},
		func() {
			app.Stop()
		},
	)

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 48), true, true)
	rootPage.AddPage("gameview", gameFrame, true, false)

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		return err
	}
	return fatal
}
