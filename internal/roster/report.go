package roster

import (
	"fmt"
	"io"
	"strings"
)

// WriteAll writes every student in name order.
func (r *Roster) WriteAll(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "All students are:"); err != nil {
		return err
	}

	for s := range r.Students() {
		if _, err := fmt.Fprintf(w, "%s, %s:\n  id: %s\n  advisor: %s\n  major: %s\n  gpa: %f\n",
			s.LastName, s.FirstName, s.ID, s.Advisor, s.Major, s.GPA); err != nil {
			return err
		}
	}

	return nil
}

// WriteMajors writes the names of the students of the tracked major.
func (r *Roster) WriteMajors(w io.Writer) error {
	major := strings.ToUpper(r.major)

	if r.majors.Empty() {
		_, err := fmt.Fprintf(w, "There are no %s majors :-(\n", major)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s majors:\n", major); err != nil {
		return err
	}

	for s := range r.Majors() {
		if _, err := fmt.Fprintf(w, "%s %s\n", s.FirstName, s.LastName); err != nil {
			return err
		}
	}

	return nil
}

// WriteLowestGPA writes the student with the lowest GPA.
// It writes nothing for an empty roster.
func (r *Roster) WriteLowestGPA(w io.Writer) error {
	s, ok := r.LowestGPA()
	if !ok {
		return nil
	}

	_, err := fmt.Fprintf(w, "%s %s has the lowest gpa of all students, which is %f\n",
		s.FirstName, s.LastName, s.GPA)

	return err
}
