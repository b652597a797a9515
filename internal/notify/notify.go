package notify

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Notifier receives the user-visible alerts and diagnostic log lines raised by
// the input forms and the request orchestrator.
type Notifier interface {
	Alert(msg string)
	Log(msg string, args ...any)
}

// Recorder keeps every alert in memory. Web pages render the recorded alerts
// as banners; tests assert on them.
type Recorder struct {
	mu     sync.Mutex
	alerts []string
	logs   []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Alert(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, msg)
}

func (r *Recorder) Log(msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, formatLog(msg, args...))
}

// Alerts returns a snapshot of the recorded alerts.
func (r *Recorder) Alerts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.alerts...)
}

// Drain returns the recorded alerts and empties the recorder, logs included.
// Long-lived recorders call it once per page render.
func (r *Recorder) Drain() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string{}, r.alerts...)
	r.alerts = nil
	r.logs = nil
	return out
}

// Logs returns a snapshot of the recorded log lines.
func (r *Recorder) Logs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.logs...)
}

// LogNotifier forwards alerts and logs to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Alert(msg string) {
	n.Logger.Warn("alert", "message", msg)
}

func (n LogNotifier) Log(msg string, args ...any) {
	n.Logger.Error(msg, args...)
}

// Writer prints alerts to an io.Writer and sends logs to an optional logger.
type Writer struct {
	Out    io.Writer
	Logger *slog.Logger
}

func (w Writer) Alert(msg string) {
	fmt.Fprintf(w.Out, "! %s\n", msg)
}

func (w Writer) Log(msg string, args ...any) {
	if w.Logger == nil {
		return
	}
	w.Logger.Error(msg, args...)
}

// Tee fans every call out to all of the provided notifiers.
func Tee(notifiers ...Notifier) Notifier {
	return tee(notifiers)
}

type tee []Notifier

func (t tee) Alert(msg string) {
	for _, n := range t {
		n.Alert(msg)
	}
}

func (t tee) Log(msg string, args ...any) {
	for _, n := range t {
		n.Log(msg, args...)
	}
}

func formatLog(msg string, args ...any) string {
	out := msg
	for i := 0; i+1 < len(args); i += 2 {
		out += fmt.Sprintf(" %v=%v", args[i], args[i+1])
	}
	if len(args)%2 == 1 {
		out += fmt.Sprintf(" %v", args[len(args)-1])
	}
	return out
}
