package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
)

func handle(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleError(c, err)

	var body ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body not json: %v", err)
	}
	return recorder.Code, body
}

func TestHandleError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"not found", serviceerrors.NewNotFoundError("product missing"), http.StatusNotFound, "not_found"},
		{"conflict", serviceerrors.NewConflictError("still referenced"), http.StatusConflict, "conflict"},
		{"unprocessable", serviceerrors.NewUnprocessableEntityError("insufficient stock"), http.StatusUnprocessableEntity, "unprocessable_entity"},
		{"invalid request", serviceerrors.NewInvalidRequestError("bad payload"), http.StatusBadRequest, "invalid_request"},
		{"unsupported maps to 500", serviceerrors.NewUnsupportedError("query store is read-only"), http.StatusInternalServerError, "unsupported_operation"},
		{"plain error maps to 500", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, body := handle(t, c.err)
			if status != c.wantStatus {
				t.Fatalf("expected status %d, got %d", c.wantStatus, status)
			}
			if body.Type != c.wantType {
				t.Fatalf("expected type %q, got %q", c.wantType, body.Type)
			}
			if body.Error != http.StatusText(c.wantStatus) {
				t.Fatalf("expected error %q, got %q", http.StatusText(c.wantStatus), body.Error)
			}
			if body.Message == "" {
				t.Fatal("expected the message carried through")
			}
		})
	}
}
