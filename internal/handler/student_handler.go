package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"roster/internal/codec"
	"roster/internal/model"
	"roster/internal/service"
	"roster/internal/stats"
)

// StudentService is the roster behaviour the page and API handlers use.
type StudentService interface {
	List() []model.Student
	Add(name string, age int, grade float64) (model.Student, error)
	Failing(threshold float64) []model.Student
	Save() (string, error)
}

type StudentHandler struct {
	studentService StudentService
	flash          *Flasher
}

func NewStudentHandler(studentService StudentService, flash *Flasher) *StudentHandler {
	return &StudentHandler{studentService: studentService, flash: flash}
}

func (h *StudentHandler) Index(w http.ResponseWriter, r *http.Request) {
	notices := h.flash.Pop(w, r)
	students := h.studentService.List()
	render(w, "index", "Students", notices, map[string]any{
		"Students": students,
		"Summary":  stats.Summarize(students),
	})
}

func (h *StudentHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	render(w, "add", "Add student", h.flash.Pop(w, r), nil)
}

func (h *StudentHandler) AddStudent(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PostFormValue("name"))
	age, ageErr := strconv.Atoi(strings.TrimSpace(r.PostFormValue("age")))
	grade, gradeErr := codec.ParseGrade(strings.TrimSpace(r.PostFormValue("grade")))
	if ageErr != nil || gradeErr != nil {
		h.flash.Add(w, r, categoryDanger, "Age must be integer and grade must be a number.")
		http.Redirect(w, r, "/add", http.StatusSeeOther)
		return
	}

	if name == "" {
		h.flash.Add(w, r, categoryDanger, "Name is required.")
		http.Redirect(w, r, "/add", http.StatusSeeOther)
		return
	}

	student, err := h.studentService.Add(name, age, grade)
	if err != nil {
		log.Println("Error adding student:", err)
		message := "Failed to add student: " + err.Error()
		if errors.Is(err, service.ErrPersist) {
			message = fmt.Sprintf("Student %s added but could not be saved.", student.Name)
		}
		h.flash.Add(w, r, categoryDanger, message)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.flash.Add(w, r, categorySuccess, fmt.Sprintf("Student %s added.", student.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *StudentHandler) Failing(w http.ResponseWriter, r *http.Request) {
	notices := h.flash.Pop(w, r)
	result := []model.Student{}

	threshold, present := r.URL.Query()["threshold"]
	value := ""
	checked := false
	if present {
		value = threshold[0]
		t, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			notices = append(notices, Notice{Category: categoryDanger, Message: "Threshold must be a number."})
		} else {
			result = h.studentService.Failing(t)
			checked = true
		}
	}

	render(w, "failing", "Failing students", notices, map[string]any{
		"Students":  result,
		"Threshold": value,
		"Checked":   checked,
	})
}

func (h *StudentHandler) Save(w http.ResponseWriter, r *http.Request) {
	path, err := h.studentService.Save()
	if err != nil {
		log.Println("Error saving students:", err)
		h.flash.Add(w, r, categoryDanger, "Failed to save students to "+path)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.flash.Add(w, r, categorySuccess, "Students saved to "+path)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
