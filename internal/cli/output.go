package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// PrintList renders a titled list of rows.
func PrintList(title string, rows []string) {
	fmt.Println(titleStyle.Render(title))
	if len(rows) == 0 {
		fmt.Println(itemStyle.Render(dimStyle.Render("nothing here yet")))
		return
	}
	for _, row := range rows {
		fmt.Println(itemStyle.Render(row))
	}
}

// PrintWarn renders a non-fatal warning line.
func PrintWarn(msg string) {
	fmt.Println(warnStyle.Render("⚠ " + msg))
}

// Dim renders secondary text.
func Dim(s string) string {
	return dimStyle.Render(s)
}

// confirmFunc is swapped out in tests to avoid an interactive prompt.
var confirmFunc = func(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	return confirmed, err
}

// ConfirmDelete prompts before a destructive operation. Deletes never run
// without explicit confirmation.
func ConfirmDelete(what string) (bool, error) {
	return confirmFunc(fmt.Sprintf("Delete %s?", what))
}
