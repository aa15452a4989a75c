package configuration

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if config.ControllerTickRate <= 0 {
		return errors.New("controllerTickRate must be > 0")
	}
	if len(config.Axes) <= 0 {
		return errors.New("no axes configured")
	}

	var seenIds []string
	for _, axisConfig := range config.Axes {
		if slices.Contains(seenIds, axisConfig.ID) {
			return fmt.Errorf("axis %s: duplicate id", axisConfig.ID)
		}
		seenIds = append(seenIds, axisConfig.ID)

		if err := validateAxis(axisConfig); err != nil {
			return err
		}
	}

	return nil
}

func validateAxis(config AxisConfig) error {
	if config.OutputRange.Min >= config.OutputRange.Max {
		return fmt.Errorf("axis %s: invalid output range, min must be < max", config.ID)
	}

	if config.Pid.Kp < 0 || config.Pid.Ki < 0 || config.Pid.Kd < 0 {
		return fmt.Errorf("axis %s: PID gains must be >= 0, use polarity to invert the actuation direction", config.ID)
	}

	encoderConfigs := 0
	if config.Encoder.Spi != nil {
		encoderConfigs++
	}
	if config.Encoder.File != nil {
		encoderConfigs++
	}
	if encoderConfigs > 1 {
		return fmt.Errorf("axis %s: only one encoder type can be used per axis definition block", config.ID)
	}
	if encoderConfigs <= 0 {
		return fmt.Errorf("axis %s: sub-configuration for encoder is missing, use one of: spi | file", config.ID)
	}

	dacConfigs := 0
	if config.Dac.Spi != nil {
		dacConfigs++
	}
	if config.Dac.File != nil {
		dacConfigs++
	}
	if dacConfigs > 1 {
		return fmt.Errorf("axis %s: only one dac type can be used per axis definition block", config.ID)
	}
	if dacConfigs <= 0 {
		return fmt.Errorf("axis %s: sub-configuration for dac is missing, use one of: spi | file", config.ID)
	}

	if config.Dac.Spi != nil && config.Dac.Spi.Channel > 3 {
		return fmt.Errorf("axis %s: invalid dac channel, must be 0-3", config.ID)
	}

	return nil
}
