package encoder

import (
	"encoding/binary"
	"fmt"

	"github.com/mfrox/mcb2go/internal/ui"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// LS7366R instruction bytes: op (B7-B6) | register (B5-B3).
const (
	cmdWriteMdr0 = 0x88
	cmdReadMdr0  = 0x48
	cmdWriteMdr1 = 0x90
	cmdReadMdr1  = 0x50
	cmdReadCntr  = 0x60
	cmdClearCntr = 0x20
)

const (
	// MDR0: 4x quadrature count mode, free-running, no index.
	mdr0Config = 0x03
	// MDR1: 4-byte counter, counting enabled.
	mdr1Config = 0x00
)

// LS7366R drives an LSI/CSI LS7366R 32-bit quadrature counter
// over a dedicated SPI chip select.
type LS7366R struct {
	conn spi.Conn
}

// NewLS7366R connects to an LS7366R on the given SPI port.
func NewLS7366R(port spi.Port) (*LS7366R, error) {
	conn, err := port.Connect(2*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return &LS7366R{
		conn: conn,
	}, nil
}

// Init configures the counter registers and verifies communication
// by reading the MDR0 register back.
func (e *LS7366R) Init() error {
	if err := e.conn.Tx([]byte{cmdWriteMdr0, mdr0Config}, nil); err != nil {
		return err
	}
	if err := e.conn.Tx([]byte{cmdWriteMdr1, mdr1Config}, nil); err != nil {
		return err
	}

	readBack := make([]byte, 2)
	if err := e.conn.Tx([]byte{cmdReadMdr0, 0x00}, readBack); err != nil {
		return err
	}
	if readBack[1] != mdr0Config {
		return fmt.Errorf("LS7366R MDR0 read-back mismatch: expected %#02x, got %#02x", mdr0Config, readBack[1])
	}

	ui.Debug("LS7366R initialized: %s", e.conn)
	return nil
}

// ReadPosition reads the CNTR register as a signed 32-bit count.
func (e *LS7366R) ReadPosition() (int32, error) {
	read := make([]byte, 5)
	if err := e.conn.Tx([]byte{cmdReadCntr, 0x00, 0x00, 0x00, 0x00}, read); err != nil {
		return 0, err
	}
	// CNTR is shifted out MSB first
	return int32(binary.BigEndian.Uint32(read[1:])), nil
}

// ResetPosition clears the CNTR register to zero.
func (e *LS7366R) ResetPosition() error {
	return e.conn.Tx([]byte{cmdClearCntr}, nil)
}
