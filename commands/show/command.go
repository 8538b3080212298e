package showCmd

import (
	// Stdlib
	"fmt"
	"io"
	"os"

	// Internal
	"github.com/salsaflow/cmake-bump/app"
	"github.com/salsaflow/cmake-bump/app/appflags"
	"github.com/salsaflow/cmake-bump/bump"
	"github.com/salsaflow/cmake-bump/config"
	"github.com/salsaflow/cmake-bump/errs"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "show [-file=PATH] [-project=NAME]",
	Short:     "print the current project version",
	Long: `
  Print the project version as stored in the version declaration.
  The file is never modified.
	`,
	Action: run,
}

var (
	flagFile    string
	flagProject string
)

var stdout io.Writer = os.Stdout

func init() {
	// Register flags.
	Command.Flags.StringVar(&flagFile, "file", flagFile,
		"file containing the version declaration (default CMakeLists.txt)")
	Command.Flags.StringVar(&flagProject, "project", flagProject,
		"print the version of the given project")

	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)
}

func run(cmd *gocli.Command, args []string) {
	if len(args) != 0 {
		cmd.Usage()
		os.Exit(2)
	}

	app.MustInit()

	if err := runMain(); err != nil {
		errs.Fatal(err)
	}
}

func runMain() error {
	cfg := config.Current()

	bumper := &bump.Bumper{
		Path:    cfg.File,
		Project: cfg.Project,
	}
	if flagFile != "" {
		bumper.Path = flagFile
	}
	if flagProject != "" {
		bumper.Project = flagProject
	}

	decl, err := bumper.Current()
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, decl.Version)
	return nil
}
