package ollama

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/hupe1980/ollamabridge/event"
	"github.com/hupe1980/ollamabridge/logging"
)

// chunkSource is the pull contract the translator consumes. *ChunkStream
// satisfies it; tests substitute scripted sources.
type chunkSource interface {
	Next() bool
	Current() ChatChunk
	Err() error
}

// newToolUseID generates a locally unique tool-use block id. The wire
// protocol supplies none; ids only need to be unique within one response.
func newToolUseID() string {
	return "call_" + uuid.NewString()[:8]
}

// translate runs the chunk-to-event state machine for one invocation.
//
// It emits exactly one MessageStartEvent first, maps each incoming chunk to
// zero or more events in arrival order, and terminates with exactly one
// MessageStopEvent when the terminal chunk arrives. Tool-call blocks are
// emitted as an uninterleaved start/delta/stop triple per call. A transport
// error aborts the sequence: it is logged once at error level and forwarded
// unchanged on errCh, with no terminal event. A stream that ends without a
// terminal chunk is treated the same way, as an unexpected disconnect.
func translate(chunks chunkSource, out chan<- event.Event, errCh chan<- error, logger logging.Logger) {
	out <- event.MessageStartEvent{Role: "assistant"}

	toolUsed := false
	for chunks.Next() {
		ck := chunks.Current()

		if ck.Message.Content != "" {
			out <- event.ContentBlockDeltaEvent{Delta: event.TextDelta{Text: ck.Message.Content}}
		}

		for _, tc := range ck.Message.ToolCalls {
			toolUsed = true
			out <- event.ContentBlockStartEvent{
				Type: "tool_use",
				ID:   newToolUseID(),
				Name: tc.Function.Name,
			}
			out <- event.ContentBlockDeltaEvent{Delta: event.InputJSONDelta{
				PartialJSON: marshalArguments(tc.Function.Arguments),
			}}
			out <- event.ContentBlockStopEvent{}
		}

		if ck.Done {
			if ck.PromptEvalCount > 0 || ck.EvalCount > 0 {
				out <- event.MetadataEvent{Usage: event.TokenUsage{
					PromptTokens:     ck.PromptEvalCount,
					CompletionTokens: ck.EvalCount,
					TotalTokens:      ck.PromptEvalCount + ck.EvalCount,
				}}
			}
			reason := event.StopReasonEndTurn
			if toolUsed {
				reason = event.StopReasonToolUse
			}
			out <- event.MessageStopEvent{StopReason: reason}
			return
		}
	}

	// Reaching here means the stream ended without a terminal chunk: either
	// the transport failed, or the connection dropped cleanly at a chunk
	// boundary. Both are mid-stream disconnects from the caller's view.
	err := chunks.Err()
	if err == nil {
		err = fmt.Errorf("stream ended before terminal chunk: %w", io.ErrUnexpectedEOF)
	}
	logger.Error("ollama stream aborted", "error", err)
	errCh <- err
}

// marshalArguments serializes structured tool-call arguments for the
// tool-input delta. Empty arguments serialize as an empty object.
func marshalArguments(args map[string]any) string {
	if args == nil {
		return "{}"
	}
	data, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return string(data)
}
