package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	d := NoopDocumentHooks{}
	d.OnParseStart(ctx, "sample.json")
	d.OnParseComplete(ctx, "sample.json", 100, time.Second, nil)
	d.OnSearchComplete(ctx, "alice", 3, time.Millisecond, nil)
	d.OnRenderComplete(ctx, "html", 2048, time.Millisecond, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/api/documents", 201, time.Millisecond)
}

type recordingHooks struct {
	NoopDocumentHooks
	parses int
}

func (r *recordingHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {
	r.parses++
}

func TestSetDocumentHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingHooks{}
	SetDocumentHooks(rec)

	Document().OnParseComplete(context.Background(), "x", 1, 0, nil)
	if rec.parses != 1 {
		t.Errorf("recorded %d parses, want 1", rec.parses)
	}

	// nil registration keeps the current hooks
	SetDocumentHooks(nil)
	if Document() != DocumentHooks(rec) {
		t.Error("SetDocumentHooks(nil) should keep the registered hooks")
	}
}

func TestReset(t *testing.T) {
	SetDocumentHooks(&recordingHooks{})
	Reset()

	if _, ok := Document().(NoopDocumentHooks); !ok {
		t.Errorf("Reset should restore noop document hooks, got %T", Document())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("Reset should restore noop HTTP hooks, got %T", HTTP())
	}
}
