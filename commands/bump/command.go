package bumpCmd

import (
	// Stdlib
	"flag"
	"fmt"
	"io"
	"os"

	// Internal
	"github.com/salsaflow/cmake-bump/action"
	"github.com/salsaflow/cmake-bump/app"
	"github.com/salsaflow/cmake-bump/app/appflags"
	"github.com/salsaflow/cmake-bump/bump"
	"github.com/salsaflow/cmake-bump/config"
	"github.com/salsaflow/cmake-bump/errs"
	"github.com/salsaflow/cmake-bump/git/gitutil"
	"github.com/salsaflow/cmake-bump/log"
	"github.com/salsaflow/cmake-bump/version"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "bump [-file=PATH] [-project=NAME] [-commit] [-tag]",
	Short:     "increment the patch version",
	Long: `
  Increment the patch number of the project version declaration,

    project(<NAME> VERSION <MAJOR>.<MINOR>.<PATCH>)

  rewrite the file and print the new version to stdout.

  Only the first declaration in the file is bumped. In case -commit is set,
  the file is committed as well. In case -tag is set, the commit is also
  tagged as vMAJOR.MINOR.PATCH, which implies -commit.

  When committing or tagging fails, all the changes are rolled back.
	`,
	Action: Run,
}

var (
	flagFile    string
	flagProject string
	flagCommit  bool
	flagTag     bool
)

var stdout io.Writer = os.Stdout

func init() {
	// Register flags.
	RegisterFlags(&Command.Flags)

	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)
}

// RegisterFlags registers the bump flags with the given flag set,
// so that the application itself can bump when invoked with no subcommand.
func RegisterFlags(flags *flag.FlagSet) {
	flags.StringVar(&flagFile, "file", flagFile,
		"file containing the version declaration (default CMakeLists.txt)")
	flags.StringVar(&flagProject, "project", flagProject,
		"only bump the declaration of the given project")
	flags.BoolVar(&flagCommit, "commit", flagCommit,
		"commit the file containing the new version string")
	flags.BoolVar(&flagTag, "tag", flagTag,
		"tag the commit with the release tag; implies -commit")
}

func Run(cmd *gocli.Command, args []string) {
	if len(args) != 0 {
		cmd.Usage()
		os.Exit(2)
	}

	app.MustInit()

	if err := execute(); err != nil {
		errs.Fatal(err)
	}
}

// execute bumps the version and prints it. Nothing is printed on error.
func execute() error {
	ver, err := runMain()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, ver)
	return err
}

func runMain() (ver *version.Version, err error) {
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
	tag := flagTag || cfg.Tag
	commit := tag || flagCommit || cfg.Commit

	ver, act, err := bumper.Bump()
	if err != nil {
		return nil, err
	}

	if !commit {
		return ver, nil
	}

	// Undo whatever has been done in case a later step fails.
	chain := action.NewActionChain()
	defer chain.RollbackOnError(&err)

	chain.PushTask(fmt.Sprintf("Bump the patch version in '%v'", bumper.Path), act)

	task := fmt.Sprintf("Commit version %v", ver)
	log.Run(task)
	if err := gitutil.CommitFiles(fmt.Sprintf("Bump version to %v", ver), bumper.Path); err != nil {
		return nil, errs.NewError(task, err)
	}
	chain.PushTask(task, action.ActionFunc(gitutil.UndoLastCommit))

	if !tag {
		return ver, nil
	}

	task = fmt.Sprintf("Tag release %v", ver.ReleaseTagString())
	log.Run(task)
	if err := gitutil.Tag(ver.ReleaseTagString()); err != nil {
		return nil, errs.NewError(task, err)
	}
	return ver, nil
}
