package handler_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"roster/internal/config"
	"roster/internal/handler"
	"roster/internal/service"
	"roster/internal/store"
)

type testApp struct {
	router *mux.Router
	roster *store.Store
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	roster, err := store.New(filepath.Join(t.TempDir(), "students.txt"))
	require.NoError(t, err)
	return &testApp{router: newRouter(roster), roster: roster}
}

func newRouter(roster store.Roster) *mux.Router {
	studentService := service.NewStudentService(roster)
	uploadService := service.NewUploadService(roster)
	return newRouterWith(studentService, uploadService)
}

func newRouterWith(studentService handler.StudentService, uploadService handler.UploadService) *mux.Router {
	flash := handler.NewFlasher([]byte("test-session-key-0123456789abcdef"))
	return handler.NewRouter(handler.Handlers{
		Students: handler.NewStudentHandler(studentService, flash),
		API:      handler.NewAPIHandler(studentService),
		Upload:   handler.NewUploadHandler(uploadService, flash),
		Imports:  handler.NewImportHandler(uploadService),
	}, config.MaxUploadBytes)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// follow issues a GET to the redirect target carrying the session cookie,
// so flashed notices show up in the returned body.
func follow(t *testing.T, router http.Handler, w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, w.Code)

	req := httptest.NewRequest("GET", w.Header().Get("Location"), nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return serve(router, req)
}
