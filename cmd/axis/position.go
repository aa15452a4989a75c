package axis

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Get the current position count of an axis",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		axisIdFlag := cmd.Flag("id")
		axisId := axisIdFlag.Value.String()

		sensor, err := getSensor(axisId)
		if err != nil {
			return err
		}

		if err := sensor.Init(); err != nil {
			return err
		}

		count, err := sensor.ReadPosition()
		if err != nil {
			return err
		}

		fmt.Printf("%d", count)
		return nil
	},
}

func init() {
	Command.AddCommand(positionCmd)
}
