package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"othello-local/engine"
	"othello-local/game"
	"othello-local/types"
)

// GameInfoPanel displays the score and move count alongside the board.
type GameInfoPanel struct {
	box    *tview.TextView
	turn   game.Turn
	glyphs engine.Glyphs
	set    bool
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:    tview.NewTextView(),
		glyphs: engine.DefaultGlyphs,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetTurn updates the panel with the current game state.
func (p *GameInfoPanel) SetTurn(t game.Turn, g engine.Glyphs) {
	p.turn = t
	p.glyphs = g
	p.set = true
	p.refresh()
}

// Text returns the panel contents without color tags.
func (p *GameInfoPanel) Text() string {
	return p.box.GetText(true)
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if !p.set {
		p.box.SetText("")
		return
	}

	score := p.turn.Board.Count()

	var text string
	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", p.turn.MoveNumber)
	if p.turn.LastMove != types.NoCoord {
		text += fmt.Sprintf("[white]Last:[-:-:-] %d %d\n", p.turn.LastMove.Row, p.turn.LastMove.Col)
	}

	text += "\n[white::b]Stones[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	for _, player := range []types.Player{types.PlayerA, types.PlayerB} {
		marker := " "
		if player == p.turn.Active {
			marker = "[yellow]>[-]"
		}
		glyph, err := p.glyphs.Player(player)
		if err != nil {
			glyph = '?'
		}
		text += fmt.Sprintf("%s %c  %2d\n", marker, glyph, score.Of(player))
	}
	text += fmt.Sprintf("[dimgray]  empty %2d[-]\n", score.Empty)

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, infoPanel *GameInfoPanel, hint *tview.TextView) *tview.Flex {
	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, status below
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 7, 0, false)

	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}
