package handler

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = map[string]*template.Template{}

var templateFuncs = template.FuncMap{
	"grade": func(g float64) string { return strconv.FormatFloat(g, 'f', -1, 64) },
}

func init() {
	for _, page := range []string{"index", "add", "failing", "upload"} {
		pages[page] = template.Must(template.New("layout.html").Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html"))
	}
}

type pageData struct {
	Title   string
	Notices []Notice
	Data    any
}

func render(w http.ResponseWriter, page, title string, notices []Notice, data any) {
	tmpl, ok := pages[page]
	if !ok {
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, pageData{Title: title, Notices: notices, Data: data}); err != nil {
		log.Printf("Error rendering %s: %v", page, err)
	}
}
