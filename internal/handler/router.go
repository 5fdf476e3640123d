package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Students *StudentHandler
	API      *APIHandler
	Upload   *UploadHandler
	Imports  *ImportHandler
}

// NewRouter wires every route. Request bodies larger than maxBodyBytes are
// rejected before any handler parses them.
func NewRouter(h Handlers, maxBodyBytes int64) *mux.Router {
	r := mux.NewRouter()
	r.Use(limitBody(maxBodyBytes))

	r.HandleFunc("/", h.Students.Index).Methods("GET")
	r.HandleFunc("/add", h.Students.AddForm).Methods("GET")
	r.HandleFunc("/add", h.Students.AddStudent).Methods("POST")
	r.HandleFunc("/failing", h.Students.Failing).Methods("GET", "POST")
	r.HandleFunc("/save", h.Students.Save).Methods("GET")

	r.HandleFunc("/upload", h.Upload.UploadForm).Methods("GET")
	r.HandleFunc("/upload", h.Upload.UploadStudents).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/students", h.API.ListStudents).Methods("GET")
	api.HandleFunc("/students", h.API.CreateStudent).Methods("POST")
	api.HandleFunc("/imports", h.Imports.GetAllImports).Methods("GET")
	api.HandleFunc("/imports/file", h.Imports.GetFileImport).Methods("GET")

	return r
}

func limitBody(maxBodyBytes int64) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBodyBytes {
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			next.ServeHTTP(w, r)
		})
	}
}
