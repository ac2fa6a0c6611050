package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Dialog is a modal View that maps clicks inside its frame.
type Dialog interface {
	View
	Clickable
}

// dialogFrame renders body above a button row and a hint line inside the
// modal box. It returns the dialog and the button row's y inside it.
func dialogFrame(body string, buttons *ButtonRow, help string) (string, int) {
	content := body + "\n\n" + buttons.View()
	rowY := dialogBorder + dialogPadY + strings.Count(body, "\n") + 2
	if help != "" {
		content += "\n\n" + ModalStyles.Help.Render(help)
	}
	return ModalStyles.Box.Render(content), rowY
}

// clickButtons forwards a dialog-relative click to the button row.
func clickButtons(buttons *ButtonRow, rowY, x, y int) tea.Cmd {
	if y != rowY {
		return nil
	}
	return buttons.Click(x - dialogBorder - dialogPadX)
}
