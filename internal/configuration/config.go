package configuration

import (
	"os"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mfrox/mcb2go/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Configuration struct {
	DbPath string `json:"dbPath"`

	// Time interval between two control cycles of an axis.
	ControllerTickRate time.Duration `json:"controllerTickRate"`

	// Time interval between two position samples of the velocity monitor.
	MonitorPollingRate time.Duration `json:"monitorPollingRate"`
	// Number of position samples used for the velocity estimate.
	VelocityWindowSize int `json:"velocityWindowSize"`

	Api        ApiConfig        `json:"api"`
	Statistics StatisticsConfig `json:"statistics"`

	Axes []AxisConfig `json:"axes"`
}

type ApiConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

type StatisticsConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("mcb2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/mcb2go/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("DbPath", "/etc/mcb2go/mcb2go.db")

	viper.SetDefault("ControllerTickRate", 10*time.Millisecond)
	viper.SetDefault("MonitorPollingRate", 200*time.Millisecond)
	viper.SetDefault("VelocityWindowSize", 10)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.port", 9001)
	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("axes", []AxisConfig{})
}

// DetectConfigFile reads the detected configuration file and
// returns its path. The config file is required, so a missing
// file is fatal.
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		outputRangeHookFunc(),
		DefaultTrueBoolHookFunc(),
	))

	err := viper.Unmarshal(&CurrentConfig, decodeHook)
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}
