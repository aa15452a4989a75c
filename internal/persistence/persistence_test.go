package persistence

import (
	"path/filepath"
	"testing"

	"github.com/mfrox/mcb2go/internal/pid"
	"github.com/stretchr/testify/assert"
)

func createPersistence(t *testing.T) Persistence {
	p := NewPersistence(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, p.Init())
	return p
}

func TestPersistence_SaveAxisGains(t *testing.T) {
	// GIVEN
	p := createPersistence(t)
	gains := pid.Gains{Kp: 0.05, Ki: 0.4, Kd: 0.01}

	// WHEN
	err := p.SaveAxisGains("axis1", gains)

	// THEN
	assert.NoError(t, err)
}

func TestPersistence_LoadAxisGains(t *testing.T) {
	// GIVEN
	p := createPersistence(t)
	gains := pid.Gains{Kp: 0.05, Ki: 0.4, Kd: 0.01}
	assert.NoError(t, p.SaveAxisGains("axis1", gains))

	// WHEN
	loaded, err := p.LoadAxisGains("axis1")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, gains, loaded)
}

func TestPersistence_LoadAxisGainsUnknownAxis(t *testing.T) {
	// GIVEN
	p := createPersistence(t)

	// WHEN
	_, err := p.LoadAxisGains("unknown")

	// THEN
	assert.Error(t, err)
}

func TestPersistence_DeleteAxisGains(t *testing.T) {
	// GIVEN
	p := createPersistence(t)
	assert.NoError(t, p.SaveAxisGains("axis1", pid.Gains{Kp: 1.0}))

	// WHEN
	err := p.DeleteAxisGains("axis1")
	assert.NoError(t, err)

	// THEN
	_, err = p.LoadAxisGains("axis1")
	assert.Error(t, err)
}
