package gitutil

import (
	// Stdlib
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	// Internal
	"github.com/salsaflow/cmake-bump/log"
)

var _ = Describe("committing files", func() {

	var (
		dir      string
		cwd      string
		previous io.Writer
	)

	BeforeEach(func() {
		if _, err := exec.LookPath("git"); err != nil {
			Skip("git is not available")
		}

		var err error
		dir, err = os.MkdirTemp("", "gitutil")
		Expect(err).To(BeNil())
		dir, err = filepath.EvalSymlinks(dir)
		Expect(err).To(BeNil())

		cwd, err = os.Getwd()
		Expect(err).To(BeNil())
		Expect(os.Chdir(dir)).To(BeNil())

		for k, v := range map[string]string{
			"GIT_AUTHOR_NAME":     "Release Bot",
			"GIT_AUTHOR_EMAIL":    "bot@example.com",
			"GIT_COMMITTER_NAME":  "Release Bot",
			"GIT_COMMITTER_EMAIL": "bot@example.com",
		} {
			Expect(os.Setenv(k, v)).To(BeNil())
		}

		previous = log.SetOutput(io.Discard)

		_, err = Run("init", "-q")
		Expect(err).To(BeNil())
	})

	AfterEach(func() {
		if dir == "" {
			return
		}
		log.SetOutput(previous)
		Expect(os.Chdir(cwd)).To(BeNil())
		os.RemoveAll(dir)
		dir = ""
	})

	commit := func(content, message string) {
		Expect(os.WriteFile("CMakeLists.txt", []byte(content), 0644)).To(BeNil())
		Expect(CommitFiles(message, "CMakeLists.txt")).To(BeNil())
	}

	subject := func() string {
		stdout, err := Run("log", "-1", "--format=%s")
		Expect(err).To(BeNil())
		return strings.TrimSpace(stdout.String())
	}

	It("should tag HEAD only once", func() {
		commit("project(A VERSION 1.0.1)\n", "Bump version to 1.0.1")

		Expect(Tag("v1.0.1")).To(BeNil())
		stdout, err := Run("tag", "--list")
		Expect(err).To(BeNil())
		Expect(strings.TrimSpace(stdout.String())).To(Equal("v1.0.1"))

		Expect(Tag("v1.0.1")).To(HaveOccurred())
	})

	It("should undo the last commit and keep the working tree", func() {
		commit("project(A VERSION 1.0.0)\n", "Initial commit")
		commit("project(A VERSION 1.0.1)\n", "Bump version to 1.0.1")

		Expect(UndoLastCommit()).To(BeNil())
		Expect(subject()).To(Equal("Initial commit"))

		content, err := os.ReadFile("CMakeLists.txt")
		Expect(err).To(BeNil())
		Expect(string(content)).To(Equal("project(A VERSION 1.0.1)\n"))
	})

	It("should commit only the given file", func() {
		Expect(os.WriteFile("CMakeLists.txt", []byte("project(A VERSION 1.0.1)\n"), 0644)).To(BeNil())
		Expect(os.WriteFile("other.txt", []byte("other\n"), 0644)).To(BeNil())

		Expect(CommitFiles("Bump version to 1.0.1", "CMakeLists.txt")).To(BeNil())
		Expect(subject()).To(Equal("Bump version to 1.0.1"))

		stdout, err := Run("ls-files")
		Expect(err).To(BeNil())
		Expect(strings.TrimSpace(stdout.String())).To(Equal("CMakeLists.txt"))
	})

	It("should fail for a missing file", func() {
		err := CommitFiles("Bump version", "missing.txt")
		Expect(err).To(HaveOccurred())
	})
})
