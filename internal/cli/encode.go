package cli

import (
	"github.com/spf13/cobra"

	"github.com/protolab/protoboard/pkg/codec/capacitor"
	"github.com/protolab/protoboard/pkg/codec/resistor"
)

// encodeCommand creates the encode command with one subcommand per codec.
func (c *CLI) encodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode component values back into markings",
	}

	cmd.AddCommand(c.encodeResistorCommand())
	cmd.AddCommand(c.encodeCapacitorCommand())

	return cmd
}

// encodeResistorCommand creates the "encode resistor" subcommand.
func (c *CLI) encodeResistorCommand() *cobra.Command {
	var (
		tolerance float64
		form      string
	)

	cmd := &cobra.Command{
		Use:   "resistor <value>",
		Short: "Encode a resistance as a color band sequence",
		Long: `Encode a resistance value as a resistor color band sequence.

The value accepts free-form resistance notation: "4700", "4.7k", "4k7",
"10kΩ", "0R22". By default the encoder prefers the 4-band form and falls
back to 5 bands when the value needs three significant digits.

Example:
  protoboard encode resistor 4k7 --tolerance 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ohms, err := resistor.ParseOhms(args[0])
			if err != nil {
				return err
			}
			bandForm, err := formFromFlag(form)
			if err != nil {
				return err
			}

			bands, err := resistor.Encode(ohms, tolerance, bandForm)
			if err != nil {
				return err
			}

			printKeyValue("Resistance", resistor.FormatOhms(ohms))
			printBands("Bands", bands)
			return nil
		},
	}

	cmd.Flags().Float64Var(&tolerance, "tolerance", 5, "tolerance percentage (band color must exist for it)")
	cmd.Flags().StringVar(&form, "form", "auto", "band form: auto, 4, or 5")

	return cmd
}

// encodeCapacitorCommand creates the "encode capacitor" subcommand.
func (c *CLI) encodeCapacitorCommand() *cobra.Command {
	var (
		picofarads  float64
		nanofarads  float64
		microfarads float64
		tolerance   float64
		voltage     int
	)

	cmd := &cobra.Command{
		Use:   "capacitor",
		Short: "Encode a capacitance as printable markings",
		Long: `Encode a capacitance as its printable markings: the EIA three-digit
code and the alphanumeric film code. Exactly one magnitude unit must be
supplied.

Example:
  protoboard encode capacitor --nanofarads 47 --tolerance 10 --voltage 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value := capacitor.Value{
				Picofarads:  picofarads,
				Nanofarads:  nanofarads,
				Microfarads: microfarads,
			}

			marking, err := capacitor.Encode(value, tolerance, voltage)
			if err != nil {
				return err
			}

			if marking.EIA != "" {
				printKeyValue("EIA", marking.EIA)
			}
			printKeyValue("Alphanumeric", marking.Alphanumeric)
			if tolerance == 0 {
				printDetail("tolerance defaulted to ±10%%")
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&picofarads, "picofarads", 0, "capacitance in picofarads")
	cmd.Flags().Float64Var(&nanofarads, "nanofarads", 0, "capacitance in nanofarads")
	cmd.Flags().Float64Var(&microfarads, "microfarads", 0, "capacitance in microfarads")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "tolerance percentage (0 means the conventional 10%)")
	cmd.Flags().IntVar(&voltage, "voltage", 0, "voltage rating in volts (0 omits the rating)")

	return cmd
}
