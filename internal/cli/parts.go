package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/protolab/protoboard/pkg/codec/diode"
)

// partsCommand creates the parts command listing the diode part database.
func (c *CLI) partsCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "parts",
		Short: "List the known diode and LED parts",
		Long: `List the diode part database: part number, category, voltage, and
display attributes. Part numbers outside this list still resolve, but to a
generic signal diode.

Example:
  protoboard parts --category zener`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := diode.Parts()
			if category != "" {
				want := diode.Category(strings.ToLower(category))
				filtered := specs[:0]
				for _, s := range specs {
					if s.Category == want {
						filtered = append(filtered, s)
					}
				}
				specs = filtered
			}
			if len(specs) == 0 {
				printInfo("No parts match category %q", category)
				return nil
			}

			fmt.Println(partsTable(specs))
			printDetail("%d parts", len(specs))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category: signal, rectifier, zener")

	return cmd
}

// partsTable renders the part list as a bordered table.
func partsTable(specs []diode.Spec) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Inherit(headerStyle)
			}
			return cellStyle
		}).
		Headers("PART", "CATEGORY", "VOLTAGE", "BODY", "CATHODE")

	for _, s := range specs {
		voltage := ""
		if s.Voltage > 0 {
			voltage = fmt.Sprintf("%gV", s.Voltage)
		}
		t.Row(s.PartNumber, string(s.Category), voltage, s.BodyColor, s.CathodeMark)
	}

	return t.Render()
}
