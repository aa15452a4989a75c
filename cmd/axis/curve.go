package axis

import (
	"github.com/guptarohit/asciigraph"
	axes "github.com/mfrox/mcb2go/internal/axis"
	"github.com/mfrox/mcb2go/internal/configuration"
	"github.com/mfrox/mcb2go/internal/ui"
	"github.com/spf13/cobra"
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the effort to output code transfer of the axes to console",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configuration.DetectConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()

		err := configuration.Validate()
		if err != nil {
			ui.Fatal(err.Error())
		}

		for idx, axisConf := range configuration.CurrentConfig.Axes {
			if axisId != "" && axisConf.ID != axisId {
				continue
			}
			if idx > 0 {
				ui.Printfln("")
				ui.Printfln("")
			}

			a, err := axes.NewAxis(axisConf, nil, nil)
			if err != nil {
				return err
			}

			// sample well past both range limits so the saturation
			// plateaus are visible
			span := axisConf.OutputRange.Max - axisConf.OutputRange.Min
			start := axisConf.OutputRange.Min - 0.1*span
			step := 1.2 * span / 100

			values := make([]float64, 0, 101)
			for i := 0; i <= 100; i++ {
				effort := start + float64(i)*step
				values = append(values, float64(a.EffortToCode(effort)))
			}

			caption := "Code / Effort (" + axisConf.ID + ")"
			graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
			ui.Printfln(graph)
		}

		return nil
	},
}

func init() {
	Command.AddCommand(curveCmd)
}
