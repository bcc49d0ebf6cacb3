package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBuilderWritesTriggersAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHTMXResponse().
		TriggerGuestCreated(7).
		TriggerFormReset().
		TriggerSuccessNotification("saved").
		Write(rec)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var triggers map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &triggers); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	for _, name := range []string{"guest:created", "form:reset", "show-notification"} {
		if _, ok := triggers[name]; !ok {
			t.Fatalf("missing trigger %q in %v", name, triggers)
		}
	}
}

func TestBuilderNoTriggersOmitsHeader(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHTMXResponse().Status(http.StatusNoContent).Write(rec)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("HX-Trigger"); got != "" {
		t.Fatalf("unexpected HX-Trigger %q", got)
	}
}

func TestErrorResponseEscapesMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	UnprocessableEntityError(`<script>alert("x")</script>`).Write(rec)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<script>") {
		t.Fatalf("message not escaped: %s", body)
	}
	if !strings.Contains(body, `class="error"`) {
		t.Fatalf("missing error wrapper: %s", body)
	}
}

func TestMethodNotAllowedSetsAllow(t *testing.T) {
	rec := httptest.NewRecorder()

	MethodNotAllowedError("POST, DELETE").Write(rec)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Allow"); got != "POST, DELETE" {
		t.Fatalf("Allow = %q", got)
	}
}
