package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadIntFromFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "count")
	err := WriteIntToFile(1337, path)
	assert.NoError(t, err)

	// WHEN
	value, err := ReadIntFromFile(path)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 1337, value)
}

func TestReadIntFromFileNotFound(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "does-not-exist")

	// WHEN
	value, err := ReadIntFromFile(path)

	// THEN
	assert.Error(t, err)
	assert.Equal(t, -1, value)
}

func TestWriteIntToFileAtomic(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "count")

	// WHEN
	err := WriteIntToFileAtomic(-42, path)

	// THEN
	assert.NoError(t, err)
	value, err := ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, -42, value)
}
