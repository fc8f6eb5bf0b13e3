package roster

import (
	"strings"
	"unicode/utf8"

	"github.com/mgnsk/listdemo/list"
)

// Field widths of a student record.
const (
	idWidth      = 9
	nameWidth    = 19
	majorWidth   = 3
	advisorWidth = 19
)

// Student is a student record. It can be on the roster's name ordered view
// and on its major view at the same time.
type Student struct {
	ID        string
	LastName  string
	FirstName string
	Major     string
	Advisor   string
	GPA       float64

	byName  list.Link[Student]
	byMajor list.Link[Student]
}

// NewStudent creates a student record, truncating fields to their record widths.
func NewStudent(id, lastName, firstName, major, advisor string, gpa float64) *Student {
	return &Student{
		ID:        truncate(id, idWidth),
		LastName:  truncate(lastName, nameWidth),
		FirstName: truncate(firstName, nameWidth),
		Major:     truncate(major, majorWidth),
		Advisor:   truncate(advisor, advisorWidth),
		GPA:       gpa,
	}
}

func nameLink(s *Student) *list.Link[Student] { return &s.byName }

func majorLink(s *Student) *list.Link[Student] { return &s.byMajor }

// nameLess orders students by last name, then first name.
func nameLess(a, b *Student) bool {
	if c := strings.Compare(a.LastName, b.LastName); c != 0 {
		return c < 0
	}
	return a.FirstName < b.FirstName
}

func gpaLess(a, b *Student) bool {
	return a.GPA < b.GPA
}

func gpaGreater(a, b *Student) bool {
	return a.GPA > b.GPA
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	for width > 0 && !utf8.RuneStart(s[width]) {
		width--
	}
	return s[:width]
}
