package axis

import (
	"fmt"

	"github.com/mfrox/mcb2go/internal/configuration"
	"github.com/mfrox/mcb2go/internal/encoder"
	"github.com/mfrox/mcb2go/internal/ui"
	"github.com/spf13/cobra"
	"periph.io/x/host/v3"
)

var axisId string

var Command = &cobra.Command{
	Use:              "axis",
	Short:            "Axis related commands",
	Long:             ``,
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&axisId,
		"id", "i",
		"",
		"Axis ID as specified in the config",
	)
}

func getAxisConfig(id string) (*configuration.AxisConfig, error) {
	availableAxisIds := []string{}
	for _, axisConf := range configuration.CurrentConfig.Axes {
		availableAxisIds = append(availableAxisIds, axisConf.ID)
		if id == axisConf.ID {
			return &axisConf, nil
		}
	}

	return nil, fmt.Errorf("No axis with id found: %s, options: %s", id, availableAxisIds)
}

func getSensor(id string) (encoder.PositionSensor, error) {
	configPath := configuration.DetectConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	err := configuration.Validate()
	if err != nil {
		ui.Fatal(err.Error())
	}

	axisConf, err := getAxisConfig(id)
	if err != nil {
		return nil, err
	}

	if _, err := host.Init(); err != nil {
		return nil, err
	}

	return encoder.NewPositionSensor(*axisConf)
}
