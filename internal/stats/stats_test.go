package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"roster/internal/model"
)

func TestAverageGrade(t *testing.T) {
	tests := []struct {
		name     string
		students []model.Student
		expected float64
	}{
		{"Empty roster", nil, 0},
		{"Two students", []model.Student{{Grade: 80}, {Grade: 90}}, 85},
		{"Single student", []model.Student{{Grade: 42.5}}, 42.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, AverageGrade(tt.students), 1e-9)
		})
	}
}

func TestBestStudent(t *testing.T) {
	_, ok := BestStudent(nil)
	assert.False(t, ok)

	students := []model.Student{
		{Name: "Ann", Grade: 70},
		{Name: "Ben", Grade: 95},
		{Name: "Cat", Grade: 95},
	}
	best, ok := BestStudent(students)
	require.True(t, ok)
	assert.Equal(t, "Ben", best.Name)
}

func TestBestStudent_NegativeGrades(t *testing.T) {
	best, ok := BestStudent([]model.Student{{Name: "Ann", Grade: -5}, {Name: "Ben", Grade: -1}})
	require.True(t, ok)
	assert.Equal(t, "Ben", best.Name)
}

func TestFailingStudents(t *testing.T) {
	students := []model.Student{
		{Name: "Ann", Grade: 40},
		{Name: "Ben", Grade: 60},
		{Name: "Cat", Grade: 50},
		{Name: "Dan", Grade: 59.9},
	}

	tests := []struct {
		name      string
		threshold float64
		expected  []string
	}{
		{"Strictly below", 60, []string{"Ann", "Cat", "Dan"}},
		{"At minimum", 40, []string{}},
		{"Below minimum", 10, []string{}},
		{"Above maximum", 100, []string{"Ann", "Ben", "Cat", "Dan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FailingStudents(students, tt.threshold)
			names := make([]string, 0, len(result))
			for _, s := range result {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestGroupByAge(t *testing.T) {
	groups := GroupByAge([]model.Student{{Age: 10}, {Age: 10}, {Age: 12}})
	assert.Equal(t, map[int]int{10: 2, 12: 1}, groups)

	assert.Empty(t, GroupByAge(nil))
}

func TestAgeGroups_Sorted(t *testing.T) {
	groups := AgeGroups(map[int]int{12: 1, 9: 4, 10: 2})
	assert.Equal(t, []AgeGroup{{Age: 9, Count: 4}, {Age: 10, Count: 2}, {Age: 12, Count: 1}}, groups)
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]model.Student{
		{Name: "Ann", Age: 10, Grade: 80},
		{Name: "Ben", Age: 11, Grade: 90},
	})

	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 85.0, summary.Average, 1e-9)
	require.NotNil(t, summary.Best)
	assert.Equal(t, "Ben", summary.Best.Name)
	assert.Len(t, summary.AgeGroups, 2)

	empty := Summarize(nil)
	assert.Nil(t, empty.Best)
	assert.Zero(t, empty.Average)
	assert.Empty(t, empty.AgeGroups)
}

func rosterGen() *rapid.Generator[[]model.Student] {
	return rapid.SliceOf(rapid.Custom(func(t *rapid.T) model.Student {
		return model.Student{
			Name:  rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "name"),
			Age:   rapid.IntRange(5, 20).Draw(t, "age"),
			Grade: rapid.Float64Range(0, 100).Draw(t, "grade"),
		}
	}))
}

// TestFailingStudents_Property proves the result is exactly the ordered
// subsequence of grades below the threshold.
func TestFailingStudents_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		students := rosterGen().Draw(rt, "students")
		threshold := rapid.Float64Range(-10, 110).Draw(rt, "threshold")

		result := FailingStudents(students, threshold)

		j := 0
		for _, s := range students {
			if s.Grade < threshold {
				if j >= len(result) || result[j] != s {
					rt.Fatalf("missing or out of order: %+v", s)
				}
				j++
			}
		}
		if j != len(result) {
			rt.Fatalf("result has %d extra records", len(result)-j)
		}
	})
}

// TestBestStudent_Property proves the best grade bounds every grade and is
// the earliest record carrying it.
func TestBestStudent_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		students := rosterGen().Draw(rt, "students")

		best, ok := BestStudent(students)
		if ok != (len(students) > 0) {
			rt.Fatalf("ok = %v for %d students", ok, len(students))
		}
		if !ok {
			return
		}
		for i, s := range students {
			if s.Grade > best.Grade {
				rt.Fatalf("record %d grade %v exceeds best %v", i, s.Grade, best.Grade)
			}
			if s.Grade == best.Grade {
				if s != best {
					rt.Fatalf("tie not resolved to first occurrence")
				}
				break
			}
		}
	})
}

// TestGroupByAge_Property proves the counts add up to the roster size.
func TestGroupByAge_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		students := rosterGen().Draw(rt, "students")

		total := 0
		for age, count := range GroupByAge(students) {
			if count <= 0 {
				rt.Fatalf("age %d has non-positive count %d", age, count)
			}
			total += count
		}
		if total != len(students) {
			rt.Fatalf("counts sum to %d, want %d", total, len(students))
		}
	})
}
