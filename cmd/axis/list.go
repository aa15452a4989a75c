package axis

import (
	"bytes"
	"fmt"

	"github.com/mfrox/mcb2go/cmd/global"
	"github.com/mfrox/mcb2go/internal/configuration"
	"github.com/mfrox/mcb2go/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the configured axes to console",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configuration.DetectConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()

		err := configuration.Validate()
		if err != nil {
			ui.Fatal(err.Error())
		}

		tableConfig := &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		}

		rows := [][]string{}
		for _, axisConf := range configuration.CurrentConfig.Axes {
			var feedback string
			switch {
			case axisConf.Encoder.Spi != nil:
				feedback = axisConf.Encoder.Spi.Device
			case axisConf.Encoder.File != nil:
				feedback = axisConf.Encoder.File.Path
			}

			var output string
			switch {
			case axisConf.Dac.Spi != nil:
				output = fmt.Sprintf("%s ch%d", axisConf.Dac.Spi.Device, axisConf.Dac.Spi.Channel)
			case axisConf.Dac.File != nil:
				output = axisConf.Dac.File.Path
			}

			rows = append(rows, []string{
				axisConf.ID,
				fmt.Sprintf("%t", axisConf.Polarity.Get()),
				fmt.Sprintf("%.1f .. %.1f", axisConf.OutputRange.Min, axisConf.OutputRange.Max),
				fmt.Sprintf("%.3f / %.3f / %.3f", axisConf.Pid.Kp, axisConf.Pid.Ki, axisConf.Pid.Kd),
				feedback,
				output,
			})
		}

		tab := table.Table{
			Headers: []string{"ID", "Polarity", "Output Range", "Kp / Ki / Kd", "Encoder", "Dac"},
			Rows:    rows,
		}
		var buf bytes.Buffer
		if tableErr := tab.WriteTable(&buf, tableConfig); tableErr != nil {
			panic(tableErr)
		}
		ui.Printfln(buf.String())

		return nil
	},
}

func init() {
	Command.AddCommand(listCmd)
}
