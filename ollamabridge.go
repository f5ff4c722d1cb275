// Package ollamabridge provides a high-level façade over the ollama bridge:
// a translation layer between an agent orchestrator's conversation protocol
// and the streaming chat API of a local Ollama server. Most applications
// interact with this package by:
//  1. Creating a bridge via New() (optionally overriding config and logger)
//  2. Calling Stream() per request and consuming the lifecycle events, or
//     using StreamSync() to drain a whole response at once
//
// The façade delegates the actual formatting and translation to the ollama
// package. Defaults are safe for local development: a bridge pointed at
// http://localhost:11434 logging warnings and errors only.
package ollamabridge

import (
	"context"

	"github.com/hupe1980/ollamabridge/core"
	"github.com/hupe1980/ollamabridge/event"
	"github.com/hupe1980/ollamabridge/logging"
	"github.com/hupe1980/ollamabridge/ollama"
)

// Options configures the bridge instance.
type Options struct {
	// Config is the provider configuration (model, host, sampling parameters,
	// raw options/params bags).
	Config ollama.Config

	// Logger (defaults to the warn/error logger if nil)
	Logger logging.Logger

	// ClientOptions customize the underlying HTTP transport.
	ClientOptions []func(o *ollama.ClientOptions)
}

// New creates a new bridge with optional overrides.
func New(optFns ...func(o *Options)) *ollama.Bridge {
	opts := Options{
		Config: ollama.DefaultConfig(),
		Logger: logging.Default(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return ollama.NewBridge(func(o *ollama.Options) {
		o.Config = opts.Config
		o.Logger = opts.Logger
		o.ClientOptions = opts.ClientOptions
	})
}

// StreamSync is a synchronous helper that drains the async channels and
// returns all lifecycle events of one response. On failure it returns the
// events emitted before the transport error together with that error.
func StreamSync(
	ctx context.Context,
	b *ollama.Bridge,
	msgs []core.Message,
	opts core.StreamOptions,
) ([]event.Event, error) {
	eventsCh, errCh := b.Stream(ctx, msgs, opts)

	var events []event.Event
	for ev := range eventsCh {
		events = append(events, ev)
	}
	return events, <-errCh
}
