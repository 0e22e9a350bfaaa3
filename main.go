// termfifteen is a sliding-tile puzzle for the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"termfifteen/audio"
	"termfifteen/config"
	"termfifteen/engine"
	"termfifteen/logging"
	"termfifteen/store"
	"termfifteen/types"
	"termfifteen/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := newCommand(run).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:    "termfifteen",
		Usage:   "slide the tiles back into order before the clock runs out",
		Version: Version,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Usage: "board size (3, 4 or 5)"},
			&cli.IntFlag{Name: "limit", Usage: "time limit in seconds (at least 60)"},
			&cli.BoolFlag{Name: "play", Usage: "start a new puzzle immediately"},
			&cli.BoolFlag{Name: "resume", Usage: "continue the saved puzzle, if there is one"},
			&cli.BoolFlag{Name: "debug", Usage: "write a debug log", Sources: cli.EnvVars("TERMFIFTEEN_DEBUG")},
			&cli.BoolFlag{Name: "no-save", Usage: "keep games, records and settings in memory only"},
		},
		Action: action,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.InitConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg, cmd.Bool("debug"))
	defer log.Sync()

	st := store.New(newBackend(cmd.Bool("no-save"), log), log)
	opts := startOptions(cfg, st, cmd)
	log.Info("starting", zap.String("version", Version), zap.Int("size", opts.Size), zap.Int("limit", opts.LimitSeconds))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	sound := audio.NewController(st, clock.New(), log)
	sound.SetBeeper(screen)

	app := tview.NewApplication()
	app.SetScreen(screen)
	app.EnableMouse(true)
	rootPage := tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ▦ termfifteen ")

	// Game view setup
	hint := tview.NewTextView()
	hint.SetBorder(true)
	hint.SetBorderPadding(0, 0, 1, 1)
	hint.SetTitle(" Keys ")
	hint.SetTitleAlign(tview.AlignLeft)
	board := ui.NewBoard(cfg, hint)
	panel := ui.NewStatusPanel()
	panel.SetSound(sound.Prefs(), sound.Audible())
	gameFrame := ui.CreateGameLayout(board, panel, hint)

	var (
		session     *engine.Session
		view        *ui.View
		colorConfig *ui.ColorConfigUI
	)

	menu := ui.NewMenu(opts, ui.MenuActions{
		NewGame: func(o types.Options) {
			session.Shuffle(o)
		},
		LoadGame: func() {
			if !session.Resume() {
				st.Clear()
				view.ShowMenu()
			}
		},
		Colors: func() {
			colorConfig.Reset()
			rootPage.SwitchToPage(ui.PageColors)
		},
		Quit: app.Stop,
	})
	menu.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc && session.State() != engine.NotStarted {
			view.HideMenu()
			return nil
		}
		return event
	})

	view = ui.NewView(rootPage, board, panel, menu, sound)
	session = engine.NewSession(st, view,
		engine.WithOptions(opts),
		engine.WithLogger(log),
		engine.WithDispatcher(func(f func()) {
			// Ticks arrive on the clock goroutine; QueueUpdateDraw blocks
			// until the event loop takes them.
			go app.QueueUpdateDraw(f)
		}),
	)
	defer session.Close()
	view.Attach(session, st.HasSaved)
	board.SetMover(session)

	// Game board input handling
	board.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event = board.HandleKey(event); event == nil {
			return nil
		}
		if event.Key() == tcell.KeyEsc {
			view.ShowMenu()
			return nil
		}
		if event.Key() != tcell.KeyRune {
			return event
		}
		switch event.Rune() {
		case 'q':
			if board.SelectedTile() != -1 {
				board.ResetSelection()
			} else {
				view.ShowMenu()
			}
		case 'n':
			session.Shuffle(session.Options())
		case 'r':
			session.Reset()
		case 'm':
			sound.ToggleMute()
			panel.SetSound(sound.Prefs(), sound.Audible())
		case '+', '=':
			sound.AdjustVolume(1)
			panel.SetSound(sound.Prefs(), sound.Audible())
		case '-':
			sound.AdjustVolume(-1)
			panel.SetSound(sound.Prefs(), sound.Audible())
		case 'f':
			if board.ToggleFocusMode() {
				ui.BuildFocusLayout(gameFrame, board)
			} else {
				ui.RebuildNormalLayout(gameFrame, board, panel, hint)
			}
		default:
			return event
		}
		return nil
	})

	// Tile colour screen
	colorConfig = ui.NewColorConfig(cfg, log, func() {
		board.SetConfig(cfg)
		view.ShowMenu()
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			view.ShowMenu()
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage(ui.PageMenu, ui.CreateCenteredForm(menu.Form(), 64), true, true)
	rootPage.AddPage(ui.PageGame, gameFrame, true, false)
	rootPage.AddPage(ui.PageColors, colorConfig.Flex(), true, false)

	view.Render(session.Board(), nil)
	switch {
	case cmd.Bool("resume") && session.Resume():
	case cmd.Bool("play"):
		session.Shuffle(opts)
	default:
		view.ShowMenu()
	}

	go func() {
		<-ctx.Done()
		app.Stop()
	}()
	return app.SetRoot(rootPage, true).Run()
}

// newLogger writes to the configured or default log file when debugging is
// on, or when a log path is configured. Otherwise nothing is logged.
func newLogger(cfg *config.Config, debug bool) *zap.Logger {
	debug = debug || cfg.Log.Debug
	path := cfg.Log.Path
	if path == "" && debug {
		p, err := logging.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "no log file: %s\n", err)
			return zap.NewNop()
		}
		path = p
	}
	log, err := logging.New(path, debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "no log file: %s\n", err)
		return zap.NewNop()
	}
	return log
}

// newBackend picks where games, records and settings are kept.
func newBackend(noSave bool, log *zap.Logger) store.Backend {
	if noSave {
		return store.NewMemoryBackend()
	}
	b, err := store.NewXDGBackend()
	if err != nil {
		log.Warn("data directory unavailable, nothing will be saved", zap.Error(err))
		return store.NewMemoryBackend()
	}
	return b
}

// startOptions layers the stored options over the config defaults and the
// command-line flags over both.
func startOptions(cfg *config.Config, st *store.Store, cmd *cli.Command) types.Options {
	opts := types.Options{
		Size:         cfg.Game.DefaultBoardSize,
		LimitSeconds: cfg.Game.DefaultLimitSeconds,
	}
	if o, ok := st.LoadOptions(); ok {
		opts = o
	}
	if cmd.IsSet("size") {
		opts.Size = int(cmd.Int("size"))
	}
	if cmd.IsSet("limit") {
		opts.LimitSeconds = int(cmd.Int("limit"))
	}
	return opts.Clamp()
}
