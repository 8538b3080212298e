package config

import (
	// Stdlib
	"fmt"
	"os"
	"sync"

	// Internal
	"github.com/salsaflow/cmake-bump/errs"
	"github.com/salsaflow/cmake-bump/log"

	// Vendor
	"gopkg.in/yaml.v2"
)

const (
	// DefaultFilename is the configuration file looked up
	// in the working directory when no other path is given.
	DefaultFilename = ".cmake-bump.yml"

	// DefaultFile is the build file bumped by default.
	DefaultFile = "CMakeLists.txt"
)

type Config struct {
	// File is the path of the file containing the version declaration.
	File string `yaml:"file"`

	// Project restricts the declaration to the given project name.
	Project string `yaml:"project"`

	// Commit makes the bump command commit the file using git.
	Commit bool `yaml:"commit"`

	// Tag makes the bump command tag the commit with the release tag.
	Tag bool `yaml:"tag"`
}

func Default() *Config {
	return &Config{File: DefaultFile}
}

func (config *Config) Validate() error {
	if config.File == "" {
		return &ErrKeyInvalid{"file", config.File}
	}
	return nil
}

// Load reads the configuration file at path on top of the defaults.
// A missing file is fine unless required is set.
func Load(path string, required bool) (*Config, error) {
	task := fmt.Sprintf("Load the configuration file '%v'", path)

	config := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			log.V(log.Debug).Log(fmt.Sprintf("'%v' not found, using defaults", path))
			return config, nil
		}
		return nil, errs.NewError(task, err)
	}

	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, errs.NewErrorWithHint(
			task, err, "Make sure the configuration file is valid YAML\n")
	}
	if err := config.Validate(); err != nil {
		return nil, errs.NewError(task, err)
	}
	return config, nil
}

var (
	currentLock sync.Mutex
	current     *Config
)

// Set makes config the one returned by Current.
func Set(config *Config) {
	currentLock.Lock()
	defer currentLock.Unlock()
	current = config
}

// Current returns the configuration set by Set, the defaults otherwise.
func Current() *Config {
	currentLock.Lock()
	defer currentLock.Unlock()
	if current == nil {
		return Default()
	}
	clone := *current
	return &clone
}
