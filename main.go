package main

import (
	// Stdlib
	"os"

	// Internal
	"github.com/salsaflow/cmake-bump/app/appflags"
	"github.com/salsaflow/cmake-bump/commands/bump"
	"github.com/salsaflow/cmake-bump/commands/show"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

const version = "0.1.0"

func main() {
	// Initialise the application.
	app := gocli.NewApp("cmake-bump")
	app.UsageLine = "cmake-bump [-file=PATH] [-project=NAME] [-commit] [-tag] [SUBCMD]"
	app.Short = "bump the patch version in CMakeLists.txt"
	app.Version = version
	app.Long = `
  cmake-bump increments the patch number of the project version declaration,

    project(<NAME> VERSION <MAJOR>.<MINOR>.<PATCH>)

  rewrites the file and prints the new version to stdout. It is meant to be
  called from CI, the output can be captured to tag the release.

  Running cmake-bump with no subcommand is the same as running 'bump'.`

	// The application bumps when no subcommand is given.
	app.Action = bumpCmd.Run
	bumpCmd.RegisterFlags(&app.Flags)

	// Register global flags.
	appflags.RegisterGlobalFlags(&app.Flags)

	// Register subcommands.
	app.MustRegisterSubcommand(bumpCmd.Command)
	app.MustRegisterSubcommand(showCmd.Command)

	// Run the application.
	app.Run(os.Args[1:])
}
