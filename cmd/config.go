package cmd

import (
	"github.com/golang/glog"
	"github.com/spf13/viper"
)

type Config struct {
	// Input
	Message  string
	File     string
	SelfTest bool

	// Logging
	LogDirectory string
	GlogV        uint64
	GlogVmodule  string
}

func LoadConfig() *Config {
	config := Config{}

	// Input
	config.Message = viper.GetString("message")
	config.File = viper.GetString("file")
	config.SelfTest = viper.GetBool("selftest")

	// Logging
	config.LogDirectory = viper.GetString("log-dir")
	config.GlogV = viper.GetUint64("glog-v")
	config.GlogVmodule = viper.GetString("glog-vmodule")

	return &config
}

func (config *Config) Print() {
	if config.LogDirectory != "" {
		glog.V(1).Infof("Logging to directory %s", config.LogDirectory)
	}

	if config.File != "" {
		glog.V(1).Infof("Hashing file: %s", config.File)
	}

	if config.Message != "" {
		glog.V(1).Infof("Hashing message of %d bytes", len(config.Message))
	}

	if config.SelfTest {
		glog.V(1).Infof("SELF-TEST MODE")
	}
}
