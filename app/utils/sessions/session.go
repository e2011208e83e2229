package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/Rakhulsr/go-joias/app/search"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "joias-session"

	historySessionKey = "searchHistory"
)

// HistoryStore keeps a visitor's recent search terms.
type HistoryStore interface {
	GetHistory(r *http.Request) []string
	AppendHistory(w http.ResponseWriter, r *http.Request, term string) ([]string, error)
	ClearHistory(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

// NewCookieSessionStore signs with authKey and encrypts with encKey. secure
// restricts the cookie to HTTPS.
func NewCookieSessionStore(authKey, encKey []byte, secure bool) *CookieSessionStore {
	store := sessions.NewCookieStore(authKey, encKey)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

// getSession always returns a usable session. An unreadable cookie is
// replaced by a fresh one.
func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		log.Printf("getSession: discarding unreadable session cookie: %v", err)
	}
	return session
}

func (c *CookieSessionStore) GetHistory(r *http.Request) []string {
	history, ok := c.getSession(r).Values[historySessionKey].([]string)
	if !ok {
		return []string{}
	}
	return history
}

func (c *CookieSessionStore) AppendHistory(w http.ResponseWriter, r *http.Request, term string) ([]string, error) {
	session := c.getSession(r)
	current, _ := session.Values[historySessionKey].([]string)
	history := search.PushHistory(current, term)

	session.Values[historySessionKey] = history
	if err := session.Save(r, w); err != nil {
		return nil, err
	}
	return history, nil
}

func (c *CookieSessionStore) ClearHistory(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	delete(session.Values, historySessionKey)
	return session.Save(r, w)
}
