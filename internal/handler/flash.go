package handler

import (
	"log"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "roster-session"

	categorySuccess = "success"
	categoryDanger  = "danger"
)

// Notice is a one-shot message shown on the next rendered page.
type Notice struct {
	Category string
	Message  string
}

// Flasher stores notices in a signed cookie session until they are shown.
type Flasher struct {
	store sessions.Store
}

// NewFlasher signs the session cookie with key, or with a random
// per-process key when key is empty.
func NewFlasher(key []byte) *Flasher {
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Flasher{store: store}
}

func (f *Flasher) Add(w http.ResponseWriter, r *http.Request, category, message string) {
	session, err := f.store.Get(r, sessionName)
	if err != nil {
		// A cookie signed with an old key decodes to a fresh session.
		log.Println("Discarding unreadable session:", err)
	}
	session.AddFlash(message, category)
	if err := session.Save(r, w); err != nil {
		log.Println("Error saving session:", err)
	}
}

// Pop returns and clears pending notices, successes first.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) []Notice {
	session, err := f.store.Get(r, sessionName)
	if err != nil {
		return nil
	}

	var notices []Notice
	for _, category := range []string{categorySuccess, categoryDanger} {
		for _, flash := range session.Flashes(category) {
			if message, ok := flash.(string); ok {
				notices = append(notices, Notice{Category: category, Message: message})
			}
		}
	}
	if len(notices) > 0 {
		if err := session.Save(r, w); err != nil {
			log.Println("Error saving session:", err)
		}
	}
	return notices
}
