package dac

import (
	"github.com/mfrox/mcb2go/internal/util"
)

// FileOutput writes the DAC code to a plain text file. It is meant
// for development setups and tests, where no converter hardware is
// available.
type FileOutput struct {
	Path string `json:"path"`
}

func (output *FileOutput) Init() error {
	return nil
}

func (output *FileOutput) Write(code uint16) error {
	return util.WriteIntToFileAtomic(int(code), output.Path)
}
