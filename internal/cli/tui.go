package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/protolab/protoboard/pkg/bom"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listExcludedStyle = lipgloss.NewStyle().Foreground(colorDim).Strikethrough(true)
)

// =============================================================================
// ReviewModel - Interactive BOM review
// =============================================================================

// ReviewModel is the bubbletea model for reviewing a BOM before layout.
// Each record can be toggled in or out of the run; enter accepts the
// remaining set, q or esc aborts the layout.
type ReviewModel struct {
	Records  bom.BOM
	Excluded map[int]bool
	Cursor   int
	Accepted bool
	Height   int
	Offset   int
}

// NewReviewModel creates a review model over the given records.
func NewReviewModel(records bom.BOM) ReviewModel {
	return ReviewModel{
		Records:  records,
		Excluded: make(map[int]bool),
		Height:   15,
	}
}

func (m ReviewModel) Init() tea.Cmd {
	return nil
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Records)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "x":
			m.Excluded[m.Cursor] = !m.Excluded[m.Cursor]
		case "enter":
			if m.includedCount() == 0 {
				return m, nil
			}
			m.Accepted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ReviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Review BOM"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ␣ toggle  ⏎ layout  q abort"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Records) {
		end = len(m.Records)
	}
	for i := m.Offset; i < end; i++ {
		r := m.Records[i]
		line := fmt.Sprintf("%-12s ×%-3d %s", r.Type, r.Quantity, r.Value)

		switch {
		case m.Excluded[i]:
			line = listExcludedStyle.Render(line)
		case i == m.Cursor:
			line = listSelectedStyle.Render(line)
		default:
			line = listNormalStyle.Render(line)
		}

		cursor := "  "
		if i == m.Cursor {
			cursor = listSelectedStyle.Render("❯ ")
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d of %d included", m.includedCount(), len(m.Records))))
	b.WriteString("\n")

	return b.String()
}

// includedCount counts the records not toggled out.
func (m ReviewModel) includedCount() int {
	n := len(m.Records)
	for i := range m.Records {
		if m.Excluded[i] {
			n--
		}
	}
	return n
}

// Included returns the records that survived review, in their original order.
func (m ReviewModel) Included() bom.BOM {
	out := make(bom.BOM, 0, len(m.Records))
	for i, r := range m.Records {
		if !m.Excluded[i] {
			out = append(out, r)
		}
	}
	return out
}

// reviewBOM runs the interactive review and returns the accepted records.
// A nil BOM with nil error means the user aborted.
func reviewBOM(records bom.BOM) (bom.BOM, error) {
	model, err := tea.NewProgram(NewReviewModel(records)).Run()
	if err != nil {
		return nil, fmt.Errorf("run review: %w", err)
	}
	final, ok := model.(ReviewModel)
	if !ok || !final.Accepted {
		return nil, nil
	}
	return final.Included(), nil
}
