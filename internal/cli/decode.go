package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/protolab/protoboard/pkg/codec/capacitor"
	"github.com/protolab/protoboard/pkg/codec/diode"
	"github.com/protolab/protoboard/pkg/codec/resistor"
)

// decodeCommand creates the decode command with one subcommand per codec.
func (c *CLI) decodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode component markings to canonical values",
	}

	cmd.AddCommand(c.decodeResistorCommand())
	cmd.AddCommand(c.decodeCapacitorCommand())
	cmd.AddCommand(c.decodeDiodeCommand())
	cmd.AddCommand(c.decodeLEDCommand())

	return cmd
}

// decodeResistorCommand creates the "decode resistor" subcommand.
func (c *CLI) decodeResistorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resistor <color> <color> <color> <color> [color]",
		Short: "Decode a resistor color band sequence",
		Long: `Decode a resistor color band sequence into ohms and tolerance.

Accepts 4 or 5 bands. Colors may use either "grey" or "gray" spelling.

Example:
  protoboard decode resistor yellow violet red gold`,
		Args: cobra.RangeArgs(4, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := resistor.DecodeNames(args)
			if err != nil {
				return err
			}

			printBands("Bands", spec.Bands)
			printKeyValue("Resistance", resistor.FormatOhms(spec.Ohms))
			if spec.TolerancePercent > 0 {
				printKeyValue("Tolerance", fmt.Sprintf("±%g%%", spec.TolerancePercent))
			}
			if spec.Series != resistor.SeriesNone {
				printKeyValue("Series", string(spec.Series))
			} else if spec.NearestE96 > 0 {
				printKeyValue("Series", "none (nearest E96: "+resistor.FormatOhms(spec.NearestE96)+")")
			}
			return nil
		},
	}
}

// decodeCapacitorCommand creates the "decode capacitor" subcommand.
func (c *CLI) decodeCapacitorCommand() *cobra.Command {
	var hint string

	cmd := &cobra.Command{
		Use:   "capacitor <marking>",
		Short: "Decode a capacitor body marking",
		Long: `Decode a capacitor body marking into picofarads.

Understands EIA three-digit codes ("473K100"), alphanumeric film codes
("47nK100"), R-decimal values ("4R7", "2u2") and plain electrolytic
prints ("47uF 25V").

Example:
  protoboard decode capacitor 473K100
  protoboard decode capacitor 2u2 --hint film`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := capacitor.DecodeHint(args[0], capacitor.Type(hint))
			if err != nil {
				return err
			}

			printKeyValue("Capacitance", capacitor.FormatPicofarads(spec.Picofarads))
			if spec.TolerancePercent > 0 {
				printKeyValue("Tolerance", fmt.Sprintf("±%g%%", spec.TolerancePercent))
			}
			if spec.MaxVoltage > 0 {
				printKeyValue("Voltage", fmt.Sprintf("%dV", spec.MaxVoltage))
			}
			if spec.Type != capacitor.TypeUnknown {
				label := string(spec.Type)
				if spec.TypeInferred {
					label += " (inferred)"
				}
				printKeyValue("Type", label)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&hint, "hint", "", "construction type hint: ceramic, film, electrolytic")

	return cmd
}

// decodeDiodeCommand creates the "decode diode" subcommand.
func (c *CLI) decodeDiodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diode <part-number>",
		Short: "Resolve a diode part number to display attributes",
		Long: `Resolve a diode part number to its category, voltage, and display
attributes. Unknown parts resolve to a generic signal diode rather than
failing.

Example:
  protoboard decode diode 1N4148`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printDiodeSpec(diode.Resolve(args[0]))
			return nil
		},
	}
}

// decodeLEDCommand creates the "decode led" subcommand.
func (c *CLI) decodeLEDCommand() *cobra.Command {
	var size string

	cmd := &cobra.Command{
		Use:   "led <color>",
		Short: "Resolve an LED color and size to display attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printDiodeSpec(diode.ResolveLED(args[0], size))
			return nil
		},
	}

	cmd.Flags().StringVar(&size, "size", "5mm", "LED package size: 3mm, 5mm, 10mm")

	return cmd
}

// printDiodeSpec prints a resolved diode or LED spec as key-value lines.
func printDiodeSpec(spec diode.Spec) {
	printKeyValue("Part", spec.PartNumber)
	printKeyValue("Category", string(spec.Category))
	if spec.Voltage > 0 {
		printKeyValue("Voltage", fmt.Sprintf("%gV", spec.Voltage))
	}
	if spec.BodyColor != "" {
		printKeyValue("Body", spec.BodyColor)
	}
	if spec.CathodeMark != "" {
		printKeyValue("Cathode", spec.CathodeMark)
	}
	if spec.Generic {
		printWarning("part not in database, attributes are a generic fallback")
	}
}

// formFromFlag maps the --form flag value to a resistor band form.
func formFromFlag(form string) (resistor.BandForm, error) {
	switch strings.ToLower(form) {
	case "", "auto":
		return resistor.FormAuto, nil
	case "4":
		return resistor.Form4, nil
	case "5":
		return resistor.Form5, nil
	default:
		return resistor.FormAuto, fmt.Errorf("invalid band form %q: want auto, 4, or 5", form)
	}
}
