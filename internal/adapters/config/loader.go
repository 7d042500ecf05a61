// Package config loads the rospkg environment.
package config

import (
	"path/filepath"
	"strings"

	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"github.com/kelseyhightower/envconfig"
	"go.trai.ch/zerr"
)

// Log formats accepted in ROSPKG_LOG_FORMAT.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Environment is the process configuration read from environment variables.
type Environment struct {
	ROSRoot        string   `envconfig:"ROS_ROOT"`
	ROSPackagePath string   `envconfig:"ROS_PACKAGE_PATH"`
	ROSHome        string   `envconfig:"ROS_HOME"`
	CrawlIgnore    []string `envconfig:"ROSPKG_CRAWL_IGNORE" default:".*"`
	LogFormat      string   `envconfig:"ROSPKG_LOG_FORMAT" default:"text"`
}

// Load reads the Environment from the process environment.
func Load() (*Environment, error) {
	var env Environment
	if err := envconfig.Process("", &env); err != nil {
		return nil, zerr.Wrap(domain.ErrConfigLoadFailed, err.Error())
	}

	env.LogFormat = strings.ToLower(strings.TrimSpace(env.LogFormat))
	switch env.LogFormat {
	case LogFormatText, LogFormatJSON:
	case "":
		env.LogFormat = LogFormatText
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigLoadFailed, "unknown log format"),
			"ROSPKG_LOG_FORMAT", env.LogFormat)
	}

	return &env, nil
}

// SearchConfig returns ROS_ROOT followed by the entries of ROS_PACKAGE_PATH.
func (e *Environment) SearchConfig() domain.SearchConfig {
	return domain.NewSearchConfig(e.ROSRoot, filepath.SplitList(e.ROSPackagePath)...)
}

// CacheDir returns the directory that holds the index cache files.
func (e *Environment) CacheDir() string {
	if e.ROSHome != "" {
		return e.ROSHome
	}
	return domain.DefaultHomePath()
}

// JSONLogs reports whether logs should be written as JSON.
func (e *Environment) JSONLogs() bool {
	return e.LogFormat == LogFormatJSON
}
