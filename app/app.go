package app

import (
	// Internal
	"github.com/salsaflow/cmake-bump/app/appflags"
	"github.com/salsaflow/cmake-bump/config"
	"github.com/salsaflow/cmake-bump/errs"
	"github.com/salsaflow/cmake-bump/log"
)

// Init applies the global flags and loads the configuration file.
func Init() error {
	// Set up logging.
	log.SetV(log.MustStringToLevel(appflags.FlagLog.Value()))

	// Load the configuration. The default file is optional,
	// a file passed explicitly using -config must exist.
	path, required := config.DefaultFilename, false
	if appflags.FlagConfig != "" {
		path, required = appflags.FlagConfig, true
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return err
	}
	config.Set(cfg)
	return nil
}

func MustInit() {
	if err := Init(); err != nil {
		errs.Fatal(err)
	}
}
