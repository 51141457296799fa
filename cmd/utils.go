package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tagirov/rusk/models"
	"github.com/tagirov/rusk/parse"
)

var (
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	unchangedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	dateStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boldStyle      = lipgloss.NewStyle().Bold(true)
)

// resolveDateArg turns a raw --date argument into a calendar date. The
// relative keywords are resolved here, before the flexible parser runs, so
// the parser itself stays a pure string-to-date function.
func resolveDateArg(raw string, today models.Date) (models.Date, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	}
	return parse.Date(raw)
}

// terminalWidth returns the current terminal width, or a sane default when
// stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapTextByWords wraps text into lines of at most width characters, breaking
// on word boundaries. Words longer than the width are split hard.
func wrapTextByWords(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for len([]rune(word)) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
		}
		switch {
		case current == "":
			current = word
		case len([]rune(current))+1+len([]rune(word)) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// reportNotFound prints a single summary line for the IDs a batch operation
// could not find.
func reportNotFound(ids []int) {
	if len(ids) == 0 {
		return
	}
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = fmt.Sprintf("%d", id)
	}
	fmt.Println(warnStyle.Render("Tasks not found IDs:"), strings.Join(strs, " "))
}
