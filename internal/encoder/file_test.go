package encoder

import (
	"path/filepath"
	"testing"

	"github.com/mfrox/mcb2go/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestFileSensorReadPosition(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "count")
	assert.NoError(t, util.WriteIntToFile(-1234, path))
	sensor := &FileSensor{Path: path}

	// WHEN
	err := sensor.Init()
	count, readErr := sensor.ReadPosition()

	// THEN
	assert.NoError(t, err)
	assert.NoError(t, readErr)
	assert.Equal(t, int32(-1234), count)
}

func TestFileSensorInitMissingFile(t *testing.T) {
	// GIVEN
	sensor := &FileSensor{Path: filepath.Join(t.TempDir(), "missing")}

	// WHEN
	err := sensor.Init()

	// THEN
	assert.Error(t, err)
}

func TestFileSensorResetPosition(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "count")
	assert.NoError(t, util.WriteIntToFile(999, path))
	sensor := &FileSensor{Path: path}

	// WHEN
	err := sensor.ResetPosition()

	// THEN
	assert.NoError(t, err)
	count, err := sensor.ReadPosition()
	assert.NoError(t, err)
	assert.Equal(t, int32(0), count)
}
