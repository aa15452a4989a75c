package dac

import (
	"fmt"

	"github.com/mfrox/mcb2go/internal/configuration"
	"periph.io/x/conn/v3/spi/spireg"
)

// Output is the digital-to-analog converter input of one axis.
type Output interface {
	// Init brings the converter into a usable state.
	Init() error

	// Write latches the given 16-bit code into the converter.
	Write(code uint16) error
}

func NewOutput(config configuration.AxisConfig) (Output, error) {
	if config.Dac.Spi != nil {
		port, err := spireg.Open(config.Dac.Spi.Device)
		if err != nil {
			return nil, err
		}
		return NewAD5754(port, config.Dac.Spi.Channel)
	}

	if config.Dac.File != nil {
		return &FileOutput{
			Path: config.Dac.File.Path,
		}, nil
	}

	return nil, fmt.Errorf("no matching dac type for axis: %s", config.ID)
}
