// Package stats computes aggregates over a roster snapshot. Every function
// is pure and leaves its input untouched.
package stats

import (
	"sort"

	"roster/internal/model"
)

// AverageGrade returns the mean grade, or 0 for an empty roster.
func AverageGrade(students []model.Student) float64 {
	if len(students) == 0 {
		return 0
	}

	var total float64
	for _, s := range students {
		total += s.Grade
	}
	return total / float64(len(students))
}

// BestStudent returns the student with the highest grade. Ties go to the
// earliest record.
func BestStudent(students []model.Student) (model.Student, bool) {
	if len(students) == 0 {
		return model.Student{}, false
	}

	best := students[0]
	for _, s := range students[1:] {
		if s.Grade > best.Grade {
			best = s
		}
	}
	return best, true
}

// FailingStudents returns the students graded strictly below threshold, in
// roster order.
func FailingStudents(students []model.Student, threshold float64) []model.Student {
	result := make([]model.Student, 0)
	for _, s := range students {
		if s.Grade < threshold {
			result = append(result, s)
		}
	}
	return result
}

// GroupByAge counts students per age.
func GroupByAge(students []model.Student) map[int]int {
	groups := make(map[int]int)
	for _, s := range students {
		groups[s.Age]++
	}
	return groups
}

// AgeGroup is one age and the number of students with it.
type AgeGroup struct {
	Age   int `json:"age"`
	Count int `json:"count"`
}

// AgeGroups flattens a GroupByAge result ordered by age, for display.
func AgeGroups(groups map[int]int) []AgeGroup {
	result := make([]AgeGroup, 0, len(groups))
	for age, count := range groups {
		result = append(result, AgeGroup{Age: age, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Age < result[j].Age })
	return result
}

// Summary bundles the aggregates shown on the roster page.
type Summary struct {
	Count     int            `json:"count"`
	Average   float64        `json:"average"`
	Best      *model.Student `json:"best,omitempty"`
	AgeGroups []AgeGroup     `json:"age_groups"`
}

// Summarize computes every aggregate over one roster snapshot.
func Summarize(students []model.Student) Summary {
	summary := Summary{
		Count:     len(students),
		Average:   AverageGrade(students),
		AgeGroups: AgeGroups(GroupByAge(students)),
	}
	if best, ok := BestStudent(students); ok {
		summary.Best = &best
	}
	return summary
}
