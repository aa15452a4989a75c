package encoder

import (
	"os/user"
	"path/filepath"
	"strings"

	"github.com/mfrox/mcb2go/internal/util"
)

// FileSensor reads the axis position from a plain text file. It is
// meant for development setups and tests, where no counter hardware
// is available.
type FileSensor struct {
	Path string `json:"path"`
}

func (sensor *FileSensor) Init() error {
	_, err := sensor.ReadPosition()
	return err
}

func (sensor *FileSensor) ReadPosition() (int32, error) {
	value, err := util.ReadIntFromFile(sensor.resolvedPath())
	if err != nil {
		return 0, err
	}
	return int32(value), nil
}

func (sensor *FileSensor) ResetPosition() error {
	return util.WriteIntToFileAtomic(0, sensor.resolvedPath())
}

func (sensor *FileSensor) resolvedPath() string {
	filePath := sensor.Path
	// resolve home dir path
	if strings.HasPrefix(filePath, "~") {
		currentUser, err := user.Current()
		if err != nil {
			return filePath
		}
		filePath = filepath.Join(currentUser.HomeDir, filePath[1:])
	}
	return filePath
}
