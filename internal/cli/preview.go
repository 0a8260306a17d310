package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/protolab/protoboard/pkg/board"
	"github.com/protolab/protoboard/pkg/bom"
	"github.com/protolab/protoboard/pkg/pipeline"
	"github.com/protolab/protoboard/pkg/place/breadboard"
	"github.com/protolab/protoboard/pkg/place/stripboard"
)

// Preview styles. Each component family gets its own hue so runs of the
// same glyph stay readable.
var (
	previewFrame = lipgloss.NewStyle().Foreground(colorDim)
	previewHole  = lipgloss.NewStyle().Foreground(colorDim)
	previewRail  = lipgloss.NewStyle().Foreground(colorRed)
	previewCut   = lipgloss.NewStyle().Foreground(colorRed)
	previewWire  = lipgloss.NewStyle().Foreground(colorYellow)

	previewGlyphStyles = map[bom.ComponentType]lipgloss.Style{
		bom.TypeResistor:   lipgloss.NewStyle().Foreground(colorCyan),
		bom.TypeCapacitor:  lipgloss.NewStyle().Foreground(colorBlue),
		bom.TypeDiode:      lipgloss.NewStyle().Foreground(colorWhite),
		bom.TypeLED:        lipgloss.NewStyle().Foreground(colorGreen),
		bom.TypeTransistor: lipgloss.NewStyle().Foreground(colorYellow),
		bom.TypeIC:         lipgloss.NewStyle().Foreground(colorCyan),
	}
)

// previewGlyphs maps component families to their single-character glyph.
var previewGlyphs = map[bom.ComponentType]rune{
	bom.TypeResistor:   'R',
	bom.TypeCapacitor:  'C',
	bom.TypeDiode:      'D',
	bom.TypeLED:        'L',
	bom.TypeTransistor: 'Q',
	bom.TypeIC:         'U',
}

// previewCell is one hole in the rendered grid.
type previewCell struct {
	glyph rune
	style lipgloss.Style
}

// boardPreview renders a text preview of the layout's occupied surface.
func boardPreview(l pipeline.Layout) string {
	if l.Breadboard != nil {
		return breadboardPreview(*l.Breadboard, columnsOf(l))
	}
	if l.Stripboard != nil {
		return stripboardPreview(*l.Stripboard, rowsOf(l), columnsOf(l))
	}
	return ""
}

func columnsOf(l pipeline.Layout) int {
	cols := 0
	if l.Breadboard != nil {
		for _, p := range l.Breadboard.Placements {
			for _, a := range p.Addresses {
				if a.Column > cols {
					cols = a.Column
				}
			}
		}
		if cols < board.DefaultBreadboardColumns {
			cols = board.DefaultBreadboardColumns
		}
		return cols
	}
	for _, p := range l.Stripboard.Placements {
		for _, a := range p.Addresses {
			if a.Column+1 > cols {
				cols = a.Column + 1
			}
		}
	}
	for _, cut := range l.Stripboard.Cuts {
		if cut.Column+1 > cols {
			cols = cut.Column + 1
		}
	}
	if cols < board.DefaultStripboardColumns {
		cols = board.DefaultStripboardColumns
	}
	return cols
}

func rowsOf(l pipeline.Layout) int {
	rows := 0
	for _, p := range l.Stripboard.Placements {
		for _, a := range p.Addresses {
			if a.Row+1 > rows {
				rows = a.Row + 1
			}
		}
	}
	if rows < board.DefaultStripboardRows {
		rows = board.DefaultStripboardRows
	}
	return rows
}

// breadboardPreview draws the two rails and rows a-j with the center gap.
// Occupied holes show the component glyph, jumper endpoints show 'w'.
func breadboardPreview(l breadboard.Layout, columns int) string {
	grid := map[board.BreadboardAddress]previewCell{}
	for _, p := range l.Placements {
		cell := previewCell{
			glyph: previewGlyphs[p.Instance.Type],
			style: previewGlyphStyles[p.Instance.Type],
		}
		for _, a := range p.Addresses {
			grid[a] = cell
		}
	}
	for _, j := range l.Jumpers {
		wire := previewCell{glyph: 'w', style: previewWire}
		grid[j.From] = wire
		grid[j.To] = wire
	}

	var b strings.Builder
	writeRailRow := func(rail board.Rail) {
		b.WriteString(previewRail.Render(string(rail)) + " ")
		for col := 1; col <= columns; col++ {
			b.WriteString(holeAt(grid, board.RailAt(rail, col)))
		}
		b.WriteByte('\n')
	}

	writeRailRow(board.RailPositive)
	for _, row := range []byte("abcdefghij") {
		if row == 'f' {
			b.WriteString(previewFrame.Render("  "+strings.Repeat("─", columns)) + "\n")
		}
		b.WriteString(previewFrame.Render(string(row)) + " ")
		for col := 1; col <= columns; col++ {
			b.WriteString(holeAt(grid, board.Grid(row, col)))
		}
		b.WriteByte('\n')
	}
	writeRailRow(board.RailNegative)

	return b.String()
}

// stripboardPreview draws the copper-side grid. Cuts render as 'x' in red;
// they sever the strip at that hole.
func stripboardPreview(l stripboard.Layout, rows, columns int) string {
	grid := map[board.StripboardAddress]previewCell{}
	for _, p := range l.Placements {
		cell := previewCell{
			glyph: previewGlyphs[p.Instance.Type],
			style: previewGlyphStyles[p.Instance.Type],
		}
		for _, a := range p.Addresses {
			grid[a] = cell
		}
	}
	for _, cut := range l.Cuts {
		grid[board.At(cut.Row, cut.Column)] = previewCell{glyph: 'x', style: previewCut}
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.WriteString(previewFrame.Render(fmt.Sprintf("%2d ", row)))
		for col := 0; col < columns; col++ {
			b.WriteString(holeAt(grid, board.At(row, col)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// holeAt renders one hole: the occupying glyph, or a dim dot when empty.
func holeAt[A comparable](grid map[A]previewCell, a A) string {
	if cell, ok := grid[a]; ok {
		return cell.style.Render(string(cell.glyph))
	}
	return previewHole.Render("·")
}
