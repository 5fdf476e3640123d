package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"roster/internal/codec"
	"roster/internal/service"
)

const invalidPayload = "Invalid payload. Expecting name, age, grade."

type APIHandler struct {
	studentService StudentService
}

func NewAPIHandler(studentService StudentService) *APIHandler {
	return &APIHandler{studentService: studentService}
}

func (h *APIHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.studentService.List())
}

func (h *APIHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "Payload too large."})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": invalidPayload})
		return
	}

	name, okName := payload["name"].(string)
	age, okAge := intField(payload["age"])
	grade, okGrade := floatField(payload["grade"])
	if !okName || !okAge || !okGrade || strings.TrimSpace(name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": invalidPayload})
		return
	}

	if _, err := h.studentService.Add(name, age, grade); err != nil {
		if errors.Is(err, service.ErrInvalidStudent) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": invalidPayload})
			return
		}
		log.Println("Error adding student:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save student."})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// intField accepts an integral JSON number or a base-10 integer string.
func intField(v any) (int, bool) {
	switch value := v.(type) {
	case json.Number:
		if i, err := strconv.Atoi(value.String()); err == nil {
			return i, true
		}
		f, err := value.Float64()
		if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, false
		}
		return int(f), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(value))
		return i, err == nil
	default:
		return 0, false
	}
}

func floatField(v any) (float64, bool) {
	switch value := v.(type) {
	case json.Number:
		f, err := codec.ParseGrade(value.String())
		return f, err == nil
	case string:
		f, err := codec.ParseGrade(strings.TrimSpace(value))
		return f, err == nil
	default:
		return 0, false
	}
}

// writeJSON encodes body before the status line goes out, so an encoding
// failure still reaches the client as a 500.
func writeJSON(w http.ResponseWriter, status int, body any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
		buf.Reset()
		buf.WriteString(`{"error":"Failed to encode response."}` + "\n")
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Println("Error writing response:", err)
	}
}
