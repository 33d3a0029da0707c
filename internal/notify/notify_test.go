package notify

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"eventhub/internal/domain"
)

func TestLogNotifier_SendReminder(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	notifier := NewLogNotifier(zerolog.New(buf))

	event := domain.Event{ID: "e1", Title: "Launch Party"}
	attendee := domain.Attendee{ID: "a1", Name: "Alice", Email: "alice@example.com"}

	if err := notifier.SendReminder(context.Background(), event, attendee); err != nil {
		t.Fatalf("send reminder: %v", err)
	}

	out := buf.String()
	for _, substr := range []string{`"event_id":"e1"`, `"attendee":"Alice"`, "reminder dispatched"} {
		if !strings.Contains(out, substr) {
			t.Fatalf("expected log to contain %q, got %q", substr, out)
		}
	}
}
