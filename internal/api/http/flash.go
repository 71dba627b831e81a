package http

import (
	"net/http"

	"relief-backoffice/internal/logger"

	"github.com/gorilla/sessions"
)

const flashSessionName = "relief_flash"

// FlashStore carries one-shot acknowledgments across a redirect. A message is
// consumed exactly once: reading it clears it from the cookie.
type FlashStore struct {
	store *sessions.CookieStore
}

func NewFlashStore(secret string) *FlashStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &FlashStore{store: store}
}

func (f *FlashStore) SetSuccess(w http.ResponseWriter, r *http.Request, msg string) {
	f.add(w, r, "success", msg)
}

func (f *FlashStore) SetError(w http.ResponseWriter, r *http.Request, msg string) {
	f.add(w, r, "error", msg)
}

func (f *FlashStore) add(w http.ResponseWriter, r *http.Request, key, msg string) {
	session, _ := f.store.Get(r, flashSessionName)
	session.AddFlash(msg, key)
	if err := session.Save(r, w); err != nil {
		logger.Warn("Failed to save flash session", "error", err)
	}
}

// Consume returns and clears the pending acknowledgments.
func (f *FlashStore) Consume(w http.ResponseWriter, r *http.Request) (success, errMsg string) {
	session, _ := f.store.Get(r, flashSessionName)
	if msgs := session.Flashes("success"); len(msgs) > 0 {
		success, _ = msgs[0].(string)
	}
	if msgs := session.Flashes("error"); len(msgs) > 0 {
		errMsg, _ = msgs[0].(string)
	}
	if err := session.Save(r, w); err != nil {
		logger.Warn("Failed to clear flash session", "error", err)
	}
	return success, errMsg
}
