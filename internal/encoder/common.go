package encoder

import (
	"fmt"

	"github.com/mfrox/mcb2go/internal/configuration"
	"periph.io/x/conn/v3/spi/spireg"
)

// PositionSensor is the quadrature counter peripheral of one axis.
type PositionSensor interface {
	// Init brings the counter online and verifies communication.
	Init() error

	// ReadPosition returns the current counter value.
	ReadPosition() (int32, error)

	// ResetPosition zeroes the internal counter.
	ResetPosition() error
}

func NewPositionSensor(config configuration.AxisConfig) (PositionSensor, error) {
	if config.Encoder.Spi != nil {
		port, err := spireg.Open(config.Encoder.Spi.Device)
		if err != nil {
			return nil, err
		}
		return NewLS7366R(port)
	}

	if config.Encoder.File != nil {
		return &FileSensor{
			Path: config.Encoder.File.Path,
		}, nil
	}

	return nil, fmt.Errorf("no matching encoder type for axis: %s", config.ID)
}
