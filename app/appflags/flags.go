package appflags

import (
	// Stdlib
	"flag"

	// Internal
	flags "github.com/salsaflow/cmake-bump/flag"
	"github.com/salsaflow/cmake-bump/log"
)

var (
	FlagConfig string
	FlagLog    *flags.StringEnumFlag = flags.NewStringEnumFlag(
		log.LevelStrings(), log.MustLevelToString(log.Info))
)

func RegisterGlobalFlags(flags *flag.FlagSet) {
	flags.StringVar(&FlagConfig, "config", FlagConfig,
		"set custom configuration file (default .cmake-bump.yml if present)")
	flags.Var(FlagLog, "log", "set logging verbosity; {trace|debug|verbose|info|off}")
}
