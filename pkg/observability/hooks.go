// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about document parsing, searching, and HTTP serving.
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDocumentHooks(&myDocumentHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Document().OnParseStart(ctx, label)
//	// ... do parsing ...
//	observability.Document().OnParseComplete(ctx, label, nodeCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Document Hooks
// =============================================================================

// DocumentHooks receives events from document processing.
type DocumentHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, label string)
	OnParseComplete(ctx context.Context, label string, nodeCount int, duration time.Duration, err error)

	// Search events
	OnSearchComplete(ctx context.Context, term string, hitCount int, duration time.Duration, err error)

	// Render events
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records a completed HTTP request.
	OnRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDocumentHooks is a no-op implementation of DocumentHooks.
type NoopDocumentHooks struct{}

func (NoopDocumentHooks) OnParseStart(context.Context, string) {}
func (NoopDocumentHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopDocumentHooks) OnSearchComplete(context.Context, string, int, time.Duration, error) {}
func (NoopDocumentHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	documentHooks DocumentHooks = NoopDocumentHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetDocumentHooks registers custom document hooks.
// This should be called once at application startup before any documents are
// processed.
func SetDocumentHooks(h DocumentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		documentHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Document returns the registered document hooks.
func Document() DocumentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return documentHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	documentHooks = NoopDocumentHooks{}
	httpHooks = NoopHTTPHooks{}
}
