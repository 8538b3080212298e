package version

import (
	// Stdlib
	"fmt"
	"math"
	"regexp"
)

var _ = Describe("version", func() {

	Context("incrementing the patch number", func() {

		type testingData struct {
			input    *Version
			expected string
		}

		data := []testingData{
			{New(1, 2, 3), "1.2.4"},
			{New(0, 0, 0), "0.0.1"},
			{New(1, 2, 9), "1.2.10"},
			{New(4, 5, 99), "4.5.100"},
		}

		for _, td := range data {
			func(d testingData) {
				It(fmt.Sprintf("should turn %v into %v", d.input, d.expected), func() {
					before := d.input.String()

					next, err := d.input.IncrementPatch()
					Expect(err).To(BeNil())
					Expect(next.String()).To(Equal(d.expected))
					Expect(d.input.String()).To(Equal(before))
				})
			}(td)
		}

		It("should refuse to wrap the patch number around", func() {
			next, err := New(1, 2, math.MaxUint64).IncrementPatch()
			Expect(next).To(BeNil())
			Expect(err).To(Equal(ErrPatchOverflow))
		})
	})

	It("should build the release tag", func() {
		Expect(New(1, 2, 3).ReleaseTagString()).To(Equal("v1.2.3"))
	})

	It("should provide a matcher for version strings", func() {
		re := regexp.MustCompile("^" + GroupMatcherString + "$")
		Expect(re.FindStringSubmatch("10.20.30")).To(Equal([]string{"10.20.30", "10", "20", "30"}))
		Expect(re.MatchString("1.2")).To(BeFalse())
	})
})
