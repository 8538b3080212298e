package action

import (
	// Stdlib
	"bytes"
	"errors"
	"io"

	// Internal
	"github.com/salsaflow/cmake-bump/log"

	// Vendor
	"github.com/fatih/color"
)

var _ = Describe("rolling back an action chain", func() {

	var (
		chain    *ActionChain
		calls    []string
		output   bytes.Buffer
		previous io.Writer
		noColor  bool
	)

	record := func(name string, err error) Action {
		return ActionFunc(func() error {
			calls = append(calls, name)
			return err
		})
	}

	BeforeEach(func() {
		chain = NewActionChain()
		calls = nil
		output.Reset()
		previous = log.SetOutput(&output)
		noColor = color.NoColor
		color.NoColor = true
	})

	AfterEach(func() {
		log.SetOutput(previous)
		color.NoColor = noColor
	})

	It("should undo the steps in the reverse order", func() {
		chain.PushTask("Rewrite the file", record("rewrite", nil))
		chain.PushTask("Commit", record("commit", nil))
		chain.PushTask("Nothing", nil)

		Expect(chain.Rollback()).To(BeNil())
		Expect(calls).To(Equal([]string{"commit", "rewrite"}))
		Expect(output.String()).To(Equal(
			"[ROLLBACK] Commit\n[ROLLBACK] Rewrite the file\n"))
	})

	It("should undo every step only once", func() {
		chain.PushTask("Rewrite the file", record("rewrite", nil))
		Expect(chain.Rollback()).To(BeNil())
		Expect(chain.Rollback()).To(BeNil())
		Expect(calls).To(Equal([]string{"rewrite"}))
	})

	It("should keep going when a step fails", func() {
		chain.PushTask("Rewrite the file", record("rewrite", nil))
		chain.PushTask("Commit", record("commit", errors.New("boom")))

		Expect(chain.Rollback()).To(Equal(error(ErrRollbackFailed)))
		Expect(calls).To(Equal([]string{"commit", "rewrite"}))
	})

	Context("when deferred", func() {

		run := func(fail bool) (err error) {
			defer chain.RollbackOnError(&err)
			chain.PushTask("Rewrite the file", record("rewrite", nil))
			if fail {
				return errors.New("boom")
			}
			return nil
		}

		It("should roll back when an error is returned", func() {
			run(true)
			Expect(calls).To(Equal([]string{"rewrite"}))
		})

		It("should do nothing on success", func() {
			run(false)
			Expect(calls).To(BeEmpty())
		})
	})
})
