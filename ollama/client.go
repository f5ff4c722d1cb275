package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ClientOptions configure the HTTP transport to the Ollama endpoint.
type ClientOptions struct {
	Host       string
	HTTPClient *http.Client
}

// Client speaks the native /api/chat protocol: a JSON request body answered
// by a stream of newline-delimited JSON chunks.
type Client struct {
	host       string
	httpClient *http.Client
}

// NewClient creates a Client targeting a local Ollama by default.
func NewClient(optFns ...func(o *ClientOptions)) *Client {
	opts := ClientOptions{
		Host: DefaultHost,
		// Generation can legitimately take minutes on local hardware, so no
		// overall request timeout; cancellation comes from the context.
		HTTPClient: &http.Client{Timeout: 0},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Client{
		host:       strings.TrimRight(opts.Host, "/"),
		httpClient: opts.HTTPClient,
	}
}

// ChatStream opens a streaming chat completion. The request is sent eagerly;
// chunks are pulled on demand through the returned ChunkStream. Non-2xx
// responses are returned as errors carrying status and body.
func (c *Client) ChatStream(ctx context.Context, req ChatRequest) (*ChunkStream, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("chat request rejected: %s: %s", resp.Status, strings.TrimSpace(string(data)))
	}
	return &ChunkStream{body: resp.Body, decoder: json.NewDecoder(resp.Body)}, nil
}

// ChunkStream pulls response chunks one at a time:
//
//	for stream.Next() {
//		ck := stream.Current()
//		...
//	}
//	if err := stream.Err(); err != nil { ... }
//
// Next returns false on end of stream or error; Err distinguishes the two.
type ChunkStream struct {
	body    io.ReadCloser
	decoder *json.Decoder
	current ChatChunk
	err     error
	done    bool
}

// Next advances to the next chunk, blocking until the transport delivers it.
func (s *ChunkStream) Next() bool {
	if s.done || s.err != nil {
		return false
	}
	var ck ChatChunk
	if err := s.decoder.Decode(&ck); err != nil {
		if errors.Is(err, io.EOF) {
			s.done = true
		} else {
			s.err = fmt.Errorf("decode chat chunk: %w", err)
		}
		return false
	}
	s.current = ck
	return true
}

// Current returns the chunk read by the last successful Next.
func (s *ChunkStream) Current() ChatChunk { return s.current }

// Err returns the first error encountered while reading the stream.
func (s *ChunkStream) Err() error { return s.err }

// Close releases the underlying response body.
func (s *ChunkStream) Close() error { return s.body.Close() }
