// Package conf holds library configuration loaded from an optional YAML file
package conf

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Setup conf variables
var (
	// Config File
	CONFIG_FILE = ""

	// Max bytes read from the head of a file for sniffing
	PREFIX_SIZE int64 = 32768

	// Logging
	PATH_LOGS = ""
	LOG_LEVEL = "info"
	DEBUG     = false
)

type fileConf struct {
	PrefixSize int64  `yaml:"prefix_size"`
	PathLogs   string `yaml:"logs_path"`
	LogLevel   string `yaml:"log_level"`
	Debug      bool   `yaml:"debug"`
}

// Initialize loads CONFIG_FILE, or the file named by the
// GALAXY_DATATYPES_CONF environment variable when CONFIG_FILE is unset.
// No file configured leaves the defaults in place.
func Initialize() (err error) {
	if CONFIG_FILE == "" {
		CONFIG_FILE = os.Getenv("GALAXY_DATATYPES_CONF")
	}
	if CONFIG_FILE == "" {
		return
	}
	source, err := os.ReadFile(CONFIG_FILE)
	if err != nil {
		return err
	}
	c := &fileConf{}
	if err = yaml.Unmarshal(source, c); err != nil {
		return err
	}
	if c.PrefixSize > 0 {
		PREFIX_SIZE = c.PrefixSize
	}
	if c.PathLogs != "" {
		PATH_LOGS = c.PathLogs
	}
	if c.LogLevel != "" {
		LOG_LEVEL = c.LogLevel
	}
	DEBUG = c.Debug
	return
}

func Bool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true
	}
	return false
}

func Print() {
	fmt.Printf("##### Sniffing #####\nprefix_size:\t%d\n\n", PREFIX_SIZE)
	fmt.Printf("##### Logging #####\nlogs_path:\t%s\nlog_level:\t%s\ndebug:\t%t\n\n", PATH_LOGS, LOG_LEVEL, DEBUG)
}
