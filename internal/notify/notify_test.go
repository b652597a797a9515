package notify

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecorderCollectsAlertsAndLogs(t *testing.T) {
	rec := NewRecorder()
	rec.Alert("first")
	rec.Alert("second")
	rec.Log("contact failed", "error", errors.New("refused"))

	if diff := cmp.Diff([]string{"first", "second"}, rec.Alerts()); diff != "" {
		t.Fatalf("alerts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"contact failed error=refused"}, rec.Logs()); diff != "" {
		t.Fatalf("logs mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorderDrain(t *testing.T) {
	rec := NewRecorder()
	rec.Alert("first")
	rec.Log("noise")

	if diff := cmp.Diff([]string{"first"}, rec.Drain()); diff != "" {
		t.Fatalf("drained alerts mismatch (-want +got):\n%s", diff)
	}
	if got := rec.Drain(); len(got) != 0 {
		t.Fatalf("expected an empty recorder after drain, got %v", got)
	}
	if got := rec.Logs(); len(got) != 0 {
		t.Fatalf("expected logs to be dropped, got %v", got)
	}
}

func TestWriterPrintsAlerts(t *testing.T) {
	var buf bytes.Buffer
	w := Writer{Out: &buf}
	w.Alert("bad line")
	w.Log("ignored without logger")

	if got := buf.String(); got != "! bad line\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestTeeFansOut(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	n := Tee(a, b, LogNotifier{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	n.Alert("x")

	if len(a.Alerts()) != 1 || len(b.Alerts()) != 1 {
		t.Fatalf("expected both recorders to receive the alert, got %v and %v", a.Alerts(), b.Alerts())
	}
}
