package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"cinebook/api"
	"cinebook/internal/payment"
	"cinebook/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator:       validator.NewValidator(),
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager:  scs.New(),
		paymentProvider: &payment.MockProvider{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// setupTestSession loads a session context onto the request and stamps the
// given user id into it, mimicking a logged-in client.
func setupTestSession(t *testing.T, app *Application, r *http.Request, userId string) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "session")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	if userId != "" {
		app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)
	}

	return r.WithContext(ctx)
}

// putSessionSelection seeds the session's transient seat selection. The
// request must already carry a session context.
func putSessionSelection(app *Application, r *http.Request, showTimeID string, seatIds []string) {
	app.sessionManager.Put(r.Context(), selectionKey(showTimeID), seatIds)
}

func withUrlParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()

	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if w.Code != wantStatus {
		t.Errorf("status = %d, want %d", w.Code, wantStatus)
	}

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			// Some 422s carry a plain error body rather than field issues.
			return
		}

		if len(validationResp.ValidationErrors) > 0 {
			errorSet := make(map[string]bool)
			for _, vErr := range validationResp.ValidationErrors {
				errorSet[vErr.Issue] = true
			}

			if wantErrMessage != "" && !errorSet[wantErrMessage] {
				t.Errorf("Expected validation error message %q not found in response", wantErrMessage)
			}

			return
		}

		if wantErrMessage != "" && validationResp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", validationResp.Message, wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if wantErrMessage != "" && errorResp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
		}
	}
}
