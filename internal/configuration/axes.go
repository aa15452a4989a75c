package configuration

type AxisConfig struct {
	ID string `json:"id"`

	// Polarity maps positive control effort to physical actuation
	// direction. Defaults to true (positive sense).
	Polarity DefaultTrueBool `json:"polarity"`

	// OutputRange is the electrical output span of the motor
	// amplifier input, e.g. -10V to +10V.
	OutputRange OutputRange `json:"outputRange"`

	Pid PidConfig `json:"pid"`

	Encoder EncoderConfig `json:"encoder"`
	Dac     DacConfig     `json:"dac"`
}

type PidConfig struct {
	Kp float64 `json:"kp"`
	Ki float64 `json:"ki"`
	Kd float64 `json:"kd"`
}

type EncoderConfig struct {
	Spi  *SpiEncoderConfig  `json:"spi,omitempty"`
	File *FileEncoderConfig `json:"file,omitempty"`
}

type SpiEncoderConfig struct {
	// Device is the SPI port registry name, e.g. "SPI0.0". The chip
	// select line of the port selects the physical counter instance.
	Device string `json:"device"`
}

type FileEncoderConfig struct {
	Path string `json:"path"`
}

type DacConfig struct {
	Spi  *SpiDacConfig  `json:"spi,omitempty"`
	File *FileDacConfig `json:"file,omitempty"`
}

type SpiDacConfig struct {
	Device string `json:"device"`
	// Channel is the DAC output channel this axis drives (0-3).
	Channel uint8 `json:"channel"`
}

type FileDacConfig struct {
	Path string `json:"path"`
}
