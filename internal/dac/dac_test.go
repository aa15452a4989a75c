package dac

import (
	"path/filepath"
	"testing"

	"github.com/mfrox/mcb2go/internal/util"
	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/spi/spitest"
)

func TestAD5754Init(t *testing.T) {
	// GIVEN
	port := &spitest.Playback{
		Playback: conntest.Playback{
			Ops: []conntest.IO{
				{W: []byte{regOutputRange | 0x02, 0x00, rangeBipolar10V}},
				{W: []byte{regPower, 0x00, powerUpAll}},
			},
		},
	}
	output, err := NewAD5754(port, 2)
	assert.NoError(t, err)

	// WHEN
	err = output.Init()

	// THEN
	assert.NoError(t, err)
	assert.NoError(t, port.Close())
}

func TestAD5754Write(t *testing.T) {
	// GIVEN
	port := &spitest.Playback{
		Playback: conntest.Playback{
			Ops: []conntest.IO{
				{W: []byte{regDac | 0x01, 0xBF, 0xFF}},
			},
		},
	}
	output, err := NewAD5754(port, 1)
	assert.NoError(t, err)

	// WHEN
	err = output.Write(0xBFFF)

	// THEN
	assert.NoError(t, err)
	assert.NoError(t, port.Close())
}

func TestFileOutputWrite(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "dac")
	output := &FileOutput{Path: path}
	assert.NoError(t, output.Init())

	// WHEN
	err := output.Write(49151)

	// THEN
	assert.NoError(t, err)
	value, err := util.ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 49151, value)
}
