package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/sagan/gtts-synthesize/constants"
	"github.com/sagan/gtts-synthesize/util"
)

type Config struct {
	Engine    string `toml:"engine" yaml:"engine" json:"engine"`
	GoogleUrl string `toml:"google_url" yaml:"google_url" json:"google_url"`
	LogLevel  string `toml:"log_level" yaml:"log_level" json:"log_level"`
}

var configExts = []string{".toml", ".yaml", ".yml"}

// Load returns the effective config. Priority: env > config file > defaults.
// configFile is optional, if empty, the GTTS_CONFIG env is used,
// then CONFIG_DIR/gtts/config.{toml,yaml,yml} is tried and skipped if not exists.
func Load(configFile string) (*Config, error) {
	config := &Config{}
	if configFile == "" {
		configFile = os.Getenv(constants.ENV_CONFIG)
	}
	if configFile == "" {
		configFile = FindDefaultConfigFile()
	} else if exists, err := util.FileExists(configFile); err != nil || !exists {
		return nil, fmt.Errorf("config file %q not exists or access failed. err: %v", configFile, err)
	}
	if configFile != "" {
		log.Debugf("load config file %s", configFile)
		if err := util.UnmarshalFile(configFile, config); err != nil {
			return nil, err
		}
	}

	if engine := os.Getenv(constants.ENV_ENGINE); engine != "" {
		config.Engine = engine
	}
	if googleUrl := os.Getenv(constants.ENV_GOOGLE_URL); googleUrl != "" {
		config.GoogleUrl = googleUrl
	}
	if logLevel := os.Getenv(constants.ENV_LOG_LEVEL); logLevel != "" {
		config.LogLevel = logLevel
	}

	if config.Engine == "" {
		config.Engine = constants.DEFAULT_TTS
	}
	if config.GoogleUrl == "" {
		config.GoogleUrl = constants.DEFAULT_GOOGLE_URL
	}
	if config.LogLevel == "" {
		config.LogLevel = constants.DEFAULT_LOG_LEVEL
	}
	return config, nil
}

// Return the first existing CONFIG_DIR/gtts/config.{toml,yaml,yml}, or empty string if none.
func FindDefaultConfigFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, ext := range configExts {
		name := filepath.Join(configDir, constants.CONFIG_FOLDER_NAME, constants.CONFIG_BASENAME+ext)
		if exists, _ := util.FileExists(name); exists {
			return name
		}
	}
	return ""
}

// SetupLogging sets the logrus level and output. output should be stderr, stdout is reserved for result.
func SetupLogging(level string, output io.Writer) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetOutput(output)
	log.SetLevel(lvl)
	return nil
}
