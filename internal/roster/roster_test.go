package roster_test

import (
	"bytes"
	"errors"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/mgnsk/listdemo/internal/roster"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func names(seq iter.Seq[*roster.Student]) []string {
	var out []string
	for s := range seq {
		out = append(out, s.FirstName+" "+s.LastName)
	}
	return out
}

var _ = Describe("loading students", func() {
	var r *roster.Roster

	BeforeEach(func() {
		r = roster.New()
		n, err := r.LoadFile("testdata/students.txt")
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(5))
	})

	AfterEach(func() {
		r.Close()
		Expect(r.Len()).To(BeZero())
		Expect(r.MajorsLen()).To(BeZero())
	})

	Specify("all students are ordered by last then first name", func() {
		Expect(names(r.Students())).To(Equal([]string{
			"Grace Adams",
			"Tom Baker",
			"Alice Smith",
			"John Smith",
			"Ada Young",
		}))
	})

	Specify("majors keep file order", func() {
		Expect(r.Major()).To(Equal("csc"))
		Expect(names(r.Majors())).To(Equal([]string{
			"John Smith",
			"Alice Smith",
			"Ada Young",
		}))
	})

	Specify("the first student with the lowest gpa is reported", func() {
		s, ok := r.LowestGPA()
		Expect(ok).To(BeTrue())
		Expect(s.ID).To(Equal("100000004"))
		Expect(s.GPA).To(Equal(2.7))
	})

	Specify("the last student with the highest gpa is reported", func() {
		s, ok := r.HighestGPA()
		Expect(ok).To(BeTrue())
		Expect(s.FirstName).To(Equal("Ada"))
	})

	Specify("students can be looked up by id", func() {
		s, ok := r.Lookup("100000002")
		Expect(ok).To(BeTrue())
		Expect(s.LastName).To(Equal("Adams"))

		_, ok = r.Lookup("missing")
		Expect(ok).To(BeFalse())
	})

	When("a student is withdrawn", func() {
		Specify("they leave every view", func() {
			Expect(r.Withdraw("100000003")).To(BeTrue())
			Expect(r.Len()).To(Equal(4))
			Expect(names(r.Students())).NotTo(ContainElement("Alice Smith"))
			Expect(names(r.Majors())).To(Equal([]string{"John Smith", "Ada Young"}))
		})

		Specify("other views are unaffected", func() {
			Expect(r.Withdraw("100000002")).To(BeTrue())
			Expect(r.MajorsLen()).To(Equal(3))
		})

		Specify("a student who changed into the major is only on the name view", func() {
			s, ok := r.Lookup("100000004")
			Expect(ok).To(BeTrue())
			s.Major = "csc"

			Expect(r.Withdraw("100000004")).To(BeTrue())
			Expect(r.Len()).To(Equal(4))
			Expect(r.MajorsLen()).To(Equal(3))
		})

		Specify("a student who changed out of the major leaves the major view", func() {
			s, ok := r.Lookup("100000001")
			Expect(ok).To(BeTrue())
			s.Major = "bio"

			Expect(r.Withdraw("100000001")).To(BeTrue())
			Expect(r.Len()).To(Equal(4))
			Expect(names(r.Majors())).To(Equal([]string{"Alice Smith", "Ada Young"}))
		})

		Specify("unknown ids are ignored", func() {
			Expect(r.Withdraw("missing")).To(BeFalse())
			Expect(r.Len()).To(Equal(5))
		})
	})

	When("majors are ranked", func() {
		Specify("they are ordered by descending gpa", func() {
			r.RankMajors()
			Expect(names(r.Majors())).To(Equal([]string{
				"Ada Young",
				"John Smith",
				"Alice Smith",
			}))
			Expect(names(r.Students())).To(HaveLen(5))
		})
	})
})

var _ = Describe("adding students", func() {
	Specify("students with equal names keep insertion order", func() {
		r := roster.New(roster.WithMajor("mat"))
		first := roster.NewStudent("1", "Doe", "Jane", "mat", "X", 3)
		second := roster.NewStudent("2", "Doe", "Jane", "bio", "Y", 2)

		r.Add(first)
		r.Add(second)

		var ids []string
		for s := range r.Students() {
			ids = append(ids, s.ID)
		}
		Expect(ids).To(Equal([]string{"1", "2"}))
		Expect(r.MajorsLen()).To(Equal(1))
	})

	Specify("fields are truncated to record widths", func() {
		s := roster.NewStudent("1234567890123", strings.Repeat("a", 30), "b", "math", "c", 1)
		Expect(s.ID).To(Equal("123456789"))
		Expect(s.LastName).To(HaveLen(19))
		Expect(s.Major).To(Equal("mat"))
	})

	Specify("truncation does not split multi-byte characters", func() {
		s := roster.NewStudent("1", strings.Repeat("a", 18)+"é", "Zoë", "csc", "c", 1)
		Expect(s.LastName).To(Equal(strings.Repeat("a", 18)))
		Expect(utf8.ValidString(s.LastName)).To(BeTrue())
		Expect(s.FirstName).To(Equal("Zoë"))
	})

	Specify("additions are logged", func() {
		core, logs := observer.New(zap.DebugLevel)
		r := roster.New(roster.WithLogger(zap.New(core)))

		r.Add(roster.NewStudent("1", "Doe", "Jane", "csc", "X", 3))

		Expect(logs.FilterMessage("student added").Len()).To(Equal(1))
	})
})

var _ = Describe("an empty roster", func() {
	var r *roster.Roster

	BeforeEach(func() {
		r = roster.New()
	})

	Specify("has no lowest or highest gpa", func() {
		_, ok := r.LowestGPA()
		Expect(ok).To(BeFalse())
		_, ok = r.HighestGPA()
		Expect(ok).To(BeFalse())
	})

	Specify("closing releases nothing", func() {
		Expect(r.Close()).To(BeZero())
	})
})

var _ = Describe("closing a roster", func() {
	Specify("releases every student", func() {
		r := roster.New()
		_, err := r.Load(strings.NewReader("1,A,B,csc,X,1.0\n2,C,D,bio,Y,2.0\n"))
		Expect(err).NotTo(HaveOccurred())

		s, ok := r.Lookup("1")
		Expect(ok).To(BeTrue())

		Expect(r.Close()).To(Equal(2))
		Expect(r.Len()).To(BeZero())
		Expect(r.MajorsLen()).To(BeZero())

		other := roster.New(roster.WithMajor("bio"))
		other.Add(s)
		Expect(other.Withdraw("1")).To(BeTrue())
		Expect(other.Len()).To(BeZero())
	})
})

var _ = Describe("parsing", func() {
	DescribeTable("malformed lines",
		func(line string) {
			_, err := roster.ParseStudent(line)
			Expect(errors.Is(err, roster.ErrMalformedRecord)).To(BeTrue())
		},
		Entry("too few fields", "1,Doe,Jane,csc"),
		Entry("invalid gpa", "1,Doe,Jane,csc,X,high"),
		Entry("empty gpa", "1,Doe,Jane,csc,X,"),
	)

	Specify("the line number is reported", func() {
		r := roster.New()
		n, err := r.Load(strings.NewReader("1,A,B,csc,X,1.0\nbroken\n"))
		Expect(n).To(Equal(1))
		Expect(err).To(MatchError(ContainSubstring("line 2")))
		Expect(errors.Is(err, roster.ErrMalformedRecord)).To(BeTrue())
	})

	Specify("windows line endings are accepted", func() {
		r := roster.New()
		n, err := r.Load(strings.NewReader("1,A,B,csc,X,1.5\r\n\r\n2,C,D,csc,Y,2.0\r\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(1))
	})

	Specify("a missing file is an error", func() {
		_, err := roster.New().LoadFile("testdata/missing.txt")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("reports", func() {
	var (
		r   *roster.Roster
		buf bytes.Buffer
	)

	BeforeEach(func() {
		buf.Reset()
		r = roster.New()
	})

	Specify("all students are printed with their details", func() {
		r.Add(roster.NewStudent("7", "Doe", "Jane", "csc", "Harms", 3.5))

		Expect(r.WriteAll(&buf)).To(Succeed())
		Expect(buf.String()).To(Equal("All students are:\n" +
			"Doe, Jane:\n" +
			"  id: 7\n" +
			"  advisor: Harms\n" +
			"  major: csc\n" +
			"  gpa: 3.500000\n"))
	})

	Specify("majors are printed by name", func() {
		r.Add(roster.NewStudent("7", "Doe", "Jane", "csc", "Harms", 3.5))

		Expect(r.WriteMajors(&buf)).To(Succeed())
		Expect(buf.String()).To(Equal("CSC majors:\nJane Doe\n"))
	})

	Specify("a missing major is reported", func() {
		Expect(r.WriteMajors(&buf)).To(Succeed())
		Expect(buf.String()).To(Equal("There are no CSC majors :-(\n"))
	})

	Specify("the lowest gpa is printed", func() {
		r.Add(roster.NewStudent("7", "Doe", "Jane", "csc", "Harms", 3.5))
		r.Add(roster.NewStudent("8", "Roe", "Jim", "bio", "Lopez", 2.25))

		Expect(r.WriteLowestGPA(&buf)).To(Succeed())
		Expect(buf.String()).To(Equal("Jim Roe has the lowest gpa of all students, which is 2.250000\n"))
	})

	Specify("an empty roster prints no lowest gpa", func() {
		Expect(r.WriteLowestGPA(&buf)).To(Succeed())
		Expect(buf.Len()).To(BeZero())
	})
})
