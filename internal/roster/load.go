package roster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const numFields = 6

// ParseStudent parses a line of the form id,last,first,major,advisor,gpa.
func ParseStudent(line string) (*Student, error) {
	fields := strings.SplitN(line, ",", numFields)
	if len(fields) != numFields {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, numFields, len(fields))
	}

	gpa, err := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid gpa %q", ErrMalformedRecord, fields[5])
	}

	return NewStudent(fields[0], fields[1], fields[2], fields[3], fields[4], gpa), nil
}

// Load adds a student for each line read from rd and returns how many were added.
// Reading stops at the first empty line.
func (r *Roster) Load(rd io.Reader) (int, error) {
	sc := bufio.NewScanner(rd)
	n := 0

	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" {
			break
		}

		s, err := ParseStudent(text)
		if err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}

		r.Add(s)
		n++
	}

	if err := sc.Err(); err != nil {
		return n, err
	}

	r.log.Info("students loaded",
		zap.Int("count", n),
		zap.String("major", r.major),
		zap.Int("majors", r.MajorsLen()),
	)

	return n, nil
}

// LoadFile loads students from the file at path.
func (r *Roster) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return r.Load(f)
}
