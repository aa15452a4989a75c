package axis

import (
	"github.com/mfrox/mcb2go/internal/ui"
	"github.com/spf13/cobra"
)

var zeroCmd = &cobra.Command{
	Use:   "zero",
	Short: "Reset the position count of an axis to zero",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sensor, err := getSensor(axisId)
		if err != nil {
			return err
		}

		if err := sensor.Init(); err != nil {
			return err
		}

		if err := sensor.ResetPosition(); err != nil {
			return err
		}

		count, err := sensor.ReadPosition()
		if err != nil {
			return err
		}
		if count != 0 {
			ui.Warning("Counter read back %d after reset", count)
		} else {
			ui.Success("Done!")
		}

		return nil
	},
}

func init() {
	Command.AddCommand(zeroCmd)
}
