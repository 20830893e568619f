// Package ui specifies custom controls for tview to play Othello in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"othello-local/config"
	"othello-local/engine"
	"othello-local/game"
	"othello-local/types"
)

// Offset of the board from the left edge, leaving room for row labels.
const labelWidth = 3

type BoardUI struct {
	Box       *tview.Box
	turn      game.Turn
	moves     engine.Moves
	hint      *tview.TextView
	infoPanel *GameInfoPanel
	cfg       *config.Config
	glyphs    engine.Glyphs
	showHints bool
	started   bool
	finished  bool
	result    game.Result
	message   string
	selRow    int
	selCol    int
	styles    []tcell.Color
	baseLog   *zap.SugaredLogger
	log       *zap.SugaredLogger

	endCallback   func(game.Result)
	fatalCallback func(error)
}

func NewBoard(c *config.Config, hint *tview.TextView, panel *GameInfoPanel, log *zap.SugaredLogger) *BoardUI {
	board := &BoardUI{
		Box:       tview.NewBox(),
		turn:      game.NewTurn(),
		hint:      hint,
		infoPanel: panel,
		baseLog:   log,
		log:       log,
		selRow:    -1,
		selCol:    -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		if !board.started {
			return x, y, 1, 1
		}
		for row := 0; row < engine.Size; row++ {
			for col := 0; col < engine.Size; col++ {
				board.drawCell(screen, x+labelWidth, y+1, row, col)
			}
		}
		drawCoordinates(screen, x, y, board)
		return x, y, engine.Size*2 + labelWidth, engine.Size + 1
	})
	return board
}

// OnGameEnd registers a callback for when both players have passed.
func (b *BoardUI) OnGameEnd(f func(game.Result)) {
	b.endCallback = f
}

// OnFatal registers a callback for engine invariant failures.
func (b *BoardUI) OnFatal(f func(error)) {
	b.fatalCallback = f
}

// NewGame resets the board to the starting position.
func (b *BoardUI) NewGame(showHints bool) {
	b.log = b.baseLog.With("game", uuid.NewString())
	b.log.Infow("game started", "hints", showHints, "frontend", "tui")
	b.showHints = showHints
	b.started = true
	b.finished = false
	b.result = game.Result{}
	b.message = ""
	b.ResetSelection()
	b.advance(game.NewTurn())
}

// Turn returns the current game state.
func (b *BoardUI) Turn() game.Turn {
	return b.turn
}

// IsFinished returns true if the game is over.
func (b *BoardUI) IsFinished() bool {
	return b.finished
}

func (b *BoardUI) SelectedTile() *types.Coord {
	if b.selRow == -1 && b.selCol == -1 {
		return nil
	}
	return &types.Coord{Row: b.selRow, Col: b.selCol}
}

// MoveSelection moves the cursor by dr rows and dc columns, staying on the board.
func (b *BoardUI) MoveSelection(dr, dc int) {
	if b.finished {
		b.ResetSelection()
		return
	}
	if b.SelectedTile() == nil {
		b.selRow, b.selCol = b.turn.LastMove.Row, b.turn.LastMove.Col
		if b.SelectedTile() == nil {
			// No previous move made, start next to the centre
			b.selRow, b.selCol = engine.Size/2-1, engine.Size/2-1
		}
		return
	}
	if !engine.IsInside(b.selRow+dr, b.selCol+dc) {
		return
	}
	b.selRow += dr
	b.selCol += dc
}

func (b *BoardUI) ResetSelection() {
	b.selRow = -1
	b.selCol = -1
}

// PlayMove plays the active player's stone at the cursor. Rejected moves
// leave the game untouched and explain why in the status view.
func (b *BoardUI) PlayMove() {
	sel := b.SelectedTile()
	if b.finished || !b.started || sel == nil {
		return
	}
	b.Play(*sel)
}

// Play plays the active player's stone at c.
func (b *BoardUI) Play(c types.Coord) {
	if b.finished || !b.started {
		return
	}
	if err := game.Check(c, b.turn.Board, b.moves); err != nil {
		var inputErr *game.InputError
		if errors.As(err, &inputErr) {
			b.log.Debugw("input rejected", "kind", int(inputErr.Kind), "row", c.Row, "col", c.Col)
		}
		b.message = err.Error()
		b.refreshHint()
		return
	}

	next, err := b.turn.Play(c, b.moves)
	if err != nil {
		b.fail(err)
		return
	}
	b.log.Debugw("move",
		"player", b.turn.Active.String(),
		"row", c.Row,
		"col", c.Col,
		"flips", len(b.moves[c]),
		"move", next.MoveNumber,
	)
	b.message = ""
	b.advance(next)
}

// advance installs next and passes for every side left without a legal move.
func (b *BoardUI) advance(next game.Turn) {
	b.turn = next
	for {
		b.moves = b.turn.LegalMoves()
		if len(b.moves) > 0 {
			break
		}
		passed, over := b.turn.Pass()
		if over {
			b.finish()
			return
		}
		b.log.Debugw("pass", "player", b.turn.Active.String(), "move", b.turn.MoveNumber)
		b.message = fmt.Sprintf("%c has no legal moves. Passing.", b.glyph(b.turn.Active))
		b.turn = passed
	}
	b.refreshHint()
}

func (b *BoardUI) finish() {
	b.finished = true
	b.moves = nil
	b.result = game.Finish(b.turn)
	b.ResetSelection()
	b.log.Infow("game over",
		"first", b.result.Score.First,
		"second", b.result.Score.Second,
		"draw", b.result.Verdict.Draw,
		"moves", b.turn.MoveNumber,
	)
	b.refreshHint()
	if b.endCallback != nil {
		b.endCallback(b.result)
	}
}

func (b *BoardUI) fail(err error) {
	b.finished = true
	b.log.Errorw("engine invariant violated", "error", err)
	if b.fatalCallback != nil {
		b.fatalCallback(err)
	}
}

// Verdict describes the result of a finished game in one line.
func (b *BoardUI) Verdict(res game.Result) string {
	if res.Verdict.Draw {
		return "It's a draw!"
	}
	return fmt.Sprintf("%c wins!", b.glyph(res.Verdict.Winner))
}

func (b *BoardUI) glyph(p types.Player) rune {
	r, err := b.glyphs.Player(p)
	if err != nil {
		return '?'
	}
	return r
}

func (b *BoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.FirstColor),        // 1
		tcell.PaletteColor(c.Theme.Colors.SecondColor),       // 2
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // 3
		tcell.PaletteColor(c.Theme.Colors.HintColor),         // 4
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 5
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 6
	}
	b.cfg = c
	b.glyphs = c.Glyphs()
}

func (b *BoardUI) refreshHint() {
	if b.infoPanel != nil {
		b.infoPanel.SetTurn(b.turn, b.glyphs)
	}

	var statusLine, turnLine, controlsLine string

	if b.finished {
		statusLine = "───────── GAME OVER ─────────\n\n"
		turnLine = fmt.Sprintf("  %s\n", b.Verdict(b.result))
		controlsLine = "\n  q · return to menu"
	} else {
		if b.message != "" {
			statusLine = fmt.Sprintf("  %s\n\n", b.message)
		}
		turnLine = fmt.Sprintf("  %c's turn!\n", b.glyph(b.turn.Active))
		controlsLine = `
  hjkl/↑↓←→ move   ⏎ play
  q quit`
	}

	b.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// drawCell draws one square, two characters wide.
func (b *BoardUI) drawCell(s tcell.Screen, l, t, row, col int) {
	bg := b.styles[0]
	if (row+col)%2 == 1 {
		bg = b.styles[3]
	}

	cell := b.turn.Board[row][col]
	r, err := b.glyphs.Of(cell)
	if err != nil {
		r = '?'
	}
	fg := tcell.ColorDefault
	switch cell {
	case types.First:
		fg = b.styles[1]
	case types.Second:
		fg = b.styles[2]
	}

	at := types.Coord{Row: row, Col: col}
	if b.showHints && b.moves.Has(at) {
		r = b.glyphs.Hint
		fg = b.styles[4]
	}

	if row == b.selRow && col == b.selCol {
		if b.cfg.Theme.DrawCursorBackground {
			bg = b.styles[6]
		}
	} else if at == b.turn.LastMove && b.cfg.Theme.DrawLastPlayedBackground {
		bg = b.styles[5]
	}

	style := tcell.StyleDefault.Background(bg).Foreground(fg)
	s.SetContent(l+col*2, t+row, r, nil, style)
	s.SetContent(l+col*2+1, t+row, ' ', nil, style)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[6])

	for col := 0; col < engine.Size; col++ {
		_style := style
		if col == ui.selCol {
			_style = highlight
		}
		s.SetContent(x+labelWidth+col*2, y, rune('0'+col), nil, _style)
		s.SetContent(x+labelWidth+col*2+1, y, ' ', nil, _style)
	}

	for row := 0; row < engine.Size; row++ {
		_style := style
		if row == ui.selRow {
			_style = highlight
		}
		s.SetContent(x, y+1+row, rune('0'+row), nil, _style)
		s.SetContent(x+1, y+1+row, ':', nil, _style)
	}
}
