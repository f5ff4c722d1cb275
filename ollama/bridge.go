package ollama

import (
	"context"

	"github.com/hupe1980/ollamabridge/core"
	"github.com/hupe1980/ollamabridge/event"
	"github.com/hupe1980/ollamabridge/logging"
)

// Options configure a Bridge.
type Options struct {
	Config Config
	Logger logging.Logger
	// ClientOptions customize the underlying HTTP transport.
	ClientOptions []func(o *ClientOptions)
}

// Bridge adapts conversations to the Ollama chat protocol and its streaming
// responses to lifecycle events. Streams hold no state past one invocation;
// the configuration is the only shared state between invocations.
type Bridge struct {
	cfg        Config
	client     *Client
	clientOpts []func(o *ClientOptions)
	logger     logging.Logger
}

// NewBridge creates a Bridge with optional overrides. The default targets a
// local Ollama and logs warn/error only.
func NewBridge(optFns ...func(o *Options)) *Bridge {
	opts := Options{
		Config: DefaultConfig(),
		Logger: logging.Default(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Config.Host == "" {
		opts.Config.Host = DefaultHost
	}

	return &Bridge{
		cfg:        opts.Config,
		client:     buildClient(opts.Config.Host, opts.ClientOptions),
		clientOpts: opts.ClientOptions,
		logger:     opts.Logger,
	}
}

// buildClient composes the host taken from the configuration with the
// caller's client option functions, which apply last so they can override
// any transport detail.
func buildClient(host string, optFns []func(o *ClientOptions)) *Client {
	clientOpts := append([]func(o *ClientOptions){func(o *ClientOptions) {
		o.Host = host
	}}, optFns...)
	return NewClient(clientOpts...)
}

// Config returns a snapshot of the current configuration.
func (b *Bridge) Config() Config { return b.cfg }

// SetConfig replaces the configuration wholesale.
//
// Configuration changes are not synchronized against in-flight streams: a
// stream opened before an update keeps using the request it was built with.
// Callers needing consistency must serialize updates relative to invocations.
func (b *Bridge) SetConfig(cfg Config) {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	b.cfg = cfg
	b.client = buildClient(cfg.Host, b.clientOpts)
}

// UpdateConfig applies a partial configuration update. The same
// synchronization caveat as SetConfig applies.
func (b *Bridge) UpdateConfig(optFns ...func(c *Config)) {
	cfg := b.cfg
	for _, fn := range optFns {
		fn(&cfg)
	}
	b.SetConfig(cfg)
}

// Stream formats the conversation, opens the chat stream eagerly and returns
// the lifecycle event sequence plus an error channel.
//
// Events are delivered on an unbuffered channel, so each event is produced
// only when the caller pulls it. On success the event channel closes after
// MessageStopEvent and the error channel closes empty. On failure both
// channels close after the transport error (logged once at error level) is
// delivered on the error channel; no terminal event is emitted.
//
// There is no cancellation primitive beyond ctx: a caller that stops pulling
// leaves the transport to its own lifecycle.
func (b *Bridge) Stream(ctx context.Context, msgs []core.Message, opts core.StreamOptions) (<-chan event.Event, <-chan error) {
	out := make(chan event.Event)
	errCh := make(chan error, 1)

	req := BuildRequest(msgs, opts, b.cfg)

	stream, err := b.client.ChatStream(ctx, req)
	if err != nil {
		b.logger.Error("ollama chat request failed", "error", err, "model", req.Model)
		errCh <- err
		close(out)
		close(errCh)
		return out, errCh
	}

	go func() {
		defer close(out)
		defer close(errCh)
		defer stream.Close()
		translate(stream, out, errCh, b.logger)
	}()

	return out, errCh
}
