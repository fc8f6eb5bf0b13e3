/*
Package roster keeps student records on two views: every student ordered by
name, and the students of one major in the order they were added.
*/
package roster

import (
	"iter"

	"github.com/mgnsk/listdemo/list"
	"go.uber.org/zap"
)

// Roster owns the student views. It is not safe for concurrent use.
type Roster struct {
	all    list.List[Student]
	majors list.List[Student]
	major  string
	log    *zap.Logger
}

// New creates an empty roster.
func New(opts ...Option) *Roster {
	o := newDefaultRosterOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	r := &Roster{
		major: o.major,
		log:   o.logger,
	}
	r.all.Init(nameLink)
	r.majors.Init(majorLink)

	return r
}

// Major returns the major tracked by the major view.
func (r *Roster) Major() string {
	return r.major
}

// Add adds a student to the name view and, if the student is in the
// tracked major, to the back of the major view.
func (r *Roster) Add(s *Student) {
	r.all.InsertOrdered(s, nameLess)

	if s.Major == r.major {
		r.majors.PushBack(s)
	}

	r.log.Debug("student added",
		zap.String("id", s.ID),
		zap.String("major", s.Major),
		zap.Bool("tracked", s.Major == r.major),
	)
}

// Len returns the number of students.
func (r *Roster) Len() int {
	return r.all.Len()
}

// MajorsLen returns the number of students on the major view.
func (r *Roster) MajorsLen() int {
	return r.majors.Len()
}

// Students returns an iterator over all students ordered by name.
func (r *Roster) Students() iter.Seq[*Student] {
	return r.all.All()
}

// Majors returns an iterator over the students of the tracked major.
func (r *Roster) Majors() iter.Seq[*Student] {
	return r.majors.All()
}

// LowestGPA returns the first student with the lowest GPA.
func (r *Roster) LowestGPA() (*Student, bool) {
	s := r.all.Min(gpaLess).Entry()
	return s, s != nil
}

// HighestGPA returns the last student in name order with the highest GPA.
func (r *Roster) HighestGPA() (*Student, bool) {
	s := r.all.Max(gpaLess).Entry()
	return s, s != nil
}

// Lookup returns the student with id.
func (r *Roster) Lookup(id string) (*Student, bool) {
	s := r.all.Find(func(s *Student) bool {
		return s.ID == id
	}).Entry()
	return s, s != nil
}

// Withdraw removes the student with id from every view.
func (r *Roster) Withdraw(id string) bool {
	s, ok := r.Lookup(id)
	if !ok {
		return false
	}

	r.all.Remove(s)
	if s.byMajor.Linked() {
		r.majors.Remove(s)
	}

	r.log.Debug("student withdrawn", zap.String("id", id))

	return true
}

// RankMajors orders the major view by descending GPA.
// Students with equal GPA keep their relative order.
func (r *Roster) RankMajors() {
	r.majors.Sort(gpaGreater)
}

// Close releases every student and returns how many were released.
func (r *Roster) Close() int {
	n := 0
	for !r.all.Empty() {
		r.all.PopFront()
		n++
	}

	for !r.majors.Empty() {
		r.majors.PopFront()
	}

	r.log.Debug("roster closed", zap.Int("released", n))

	return n
}
