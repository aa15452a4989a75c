package dac

import (
	"github.com/mfrox/mcb2go/internal/ui"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// AD5754 register addresses (DB21-DB19 of the 24-bit input shift register).
const (
	regDac         = 0x00
	regOutputRange = 0x08
	regPower       = 0x10
)

const (
	// bipolar -10V..+10V output span
	rangeBipolar10V = 0x0004
	// power-up bits for all four DAC channels
	powerUpAll = 0x000F
)

// AD5754 drives one channel of an Analog Devices AD5754 quad 16-bit DAC.
type AD5754 struct {
	conn    spi.Conn
	channel uint8
}

// NewAD5754 connects to an AD5754 on the given SPI port.
func NewAD5754(port spi.Port, channel uint8) (*AD5754, error) {
	conn, err := port.Connect(10*physic.MegaHertz, spi.Mode2, 8)
	if err != nil {
		return nil, err
	}
	return &AD5754{
		conn:    conn,
		channel: channel,
	}, nil
}

// Init selects the bipolar 10V span for this channel and powers up
// the converter outputs.
func (d *AD5754) Init() error {
	if err := d.writeRegister(regOutputRange|d.channel, rangeBipolar10V); err != nil {
		return err
	}
	if err := d.writeRegister(regPower, powerUpAll); err != nil {
		return err
	}

	ui.Debug("AD5754 channel %d initialized: %s", d.channel, d.conn)
	return nil
}

func (d *AD5754) Write(code uint16) error {
	return d.writeRegister(regDac|d.channel, code)
}

func (d *AD5754) writeRegister(address uint8, value uint16) error {
	return d.conn.Tx([]byte{address, byte(value >> 8), byte(value)}, nil)
}
