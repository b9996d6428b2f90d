package app

import (
	"encoding/gob"
	"net/http"
)

func init() {
	// Seat selections are stored in the session as []string, which the
	// session codec needs to know about.
	gob.Register([]string{})
}

type sessionKey string

const (
	SessionKeyUserId = sessionKey("userID")
)

func (s sessionKey) String() string {
	return string(s)
}

func (app *Application) contextGetUserId(r *http.Request) string {
	userId, ok := r.Context().Value(SessionKeyUserId).(string)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}

// The seat ids a session is currently picking live only in the session, as an
// overlay over the persisted seat statuses. They never touch the ledger until
// a booking commit.
func selectionKey(showTimeID string) string {
	return "selection:" + showTimeID
}

func (app *Application) selectedSeats(r *http.Request, showTimeID string) []string {
	seatIds, ok := app.sessionManager.Get(r.Context(), selectionKey(showTimeID)).([]string)
	if !ok {
		return nil
	}

	return seatIds
}

func (app *Application) putSelectedSeats(r *http.Request, showTimeID string, seatIds []string) {
	if len(seatIds) == 0 {
		app.sessionManager.Remove(r.Context(), selectionKey(showTimeID))
		return
	}

	app.sessionManager.Put(r.Context(), selectionKey(showTimeID), seatIds)
}
