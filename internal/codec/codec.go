// Package codec reads and writes the roster's line-oriented text format:
// one "name,age,grade" record per line, no header and no quoting.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"roster/internal/model"
)

const delimiter = ","

// Encode writes one line per student in roster order.
func Encode(w io.Writer, students []model.Student) error {
	bw := bufio.NewWriter(w)
	for _, s := range students {
		if _, err := bw.WriteString(FormatLine(s) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FormatLine renders a student without the trailing newline.
func FormatLine(s model.Student) string {
	return s.Name + delimiter + strconv.Itoa(s.Age) + delimiter + strconv.FormatFloat(s.Grade, 'f', -1, 64)
}

// Decode parses every line of r. Lines with the wrong field count or
// non-numeric age/grade are counted in skipped and dropped; blank lines are
// ignored. The returned error is only ever a read error from r.
func Decode(r io.Reader) ([]model.Student, int, error) {
	var (
		students []model.Student
		skipped  int
	)

	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if len(raw) > 0 {
			s, ok, blank := ParseLine(raw)
			switch {
			case blank:
			case ok:
				students = append(students, s)
			default:
				skipped++
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return students, skipped, err
		}
	}

	return students, skipped, nil
}

// DecodeString is Decode over an in-memory string.
func DecodeString(text string) ([]model.Student, int) {
	students, skipped, _ := Decode(strings.NewReader(text))
	return students, skipped
}

// ParseLine parses a single line. blank reports a line that was empty after
// trimming; such lines are neither records nor skips.
func ParseLine(raw string) (s model.Student, ok bool, blank bool) {
	line := strings.TrimSpace(strings.ToValidUTF8(raw, ""))
	if line == "" {
		return model.Student{}, false, true
	}

	parts := strings.Split(line, delimiter)
	if len(parts) != 3 {
		return model.Student{}, false, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	age, err := strconv.Atoi(parts[1])
	if err != nil {
		return model.Student{}, false, false
	}
	grade, err := ParseGrade(parts[2])
	if err != nil {
		return model.Student{}, false, false
	}

	return model.Student{Name: parts[0], Age: age, Grade: grade}, true, false
}

// ErrInvalidGrade reports a grade that is not a finite decimal number.
var ErrInvalidGrade = errors.New("grade must be a finite decimal number")

// ParseGrade parses a decimal grade. Hex notation, NaN, infinities and
// values that overflow float64 are rejected.
func ParseGrade(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, ErrInvalidGrade
	}

	grade, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(grade) || math.IsInf(grade, 0) {
		return 0, ErrInvalidGrade
	}
	return grade, nil
}

// Load reads the roster stored at path. A missing file is an empty roster.
func Load(path string) ([]model.Student, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Student{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	students, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

// Save overwrites path with the given roster.
func Save(path string, students []model.Student) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Encode(f, students); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
