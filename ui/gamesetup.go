package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// GameSetupUI provides a form for starting a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(showHints bool)
	onCancel func()

	showHints bool
}

// NewGameSetup creates a new game setup form. showHints is the initial state
// of the legal move checkbox.
func NewGameSetup(showHints bool, onStart func(showHints bool), onCancel func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:   onStart,
		onCancel:  onCancel,
		showHints: showHints,
	}

	form := tview.NewForm()

	form.AddCheckbox("Show legal moves (+)", showHints, func(checked bool) {
		setup.showHints = checked
	})

	form.AddButton("Start Game", func() {
		onStart(setup.showHints)
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(tcell.ColorDarkCyan)
	form.SetButtonTextColor(tcell.ColorWhite)

	// Create help text
	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Space: toggle  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	// Create flex layout with form and help text
	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// ShowHints returns the current checkbox state.
func (s *GameSetupUI) ShowHints() bool {
	return s.showHints
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
