package event

// StopReason is the terminal classification of why generation ended.
type StopReason string

const (
	// StopReasonToolUse signals that the model requested at least one tool call.
	StopReasonToolUse StopReason = "tool_use"
	// StopReasonEndTurn signals a natural end of the assistant turn.
	StopReasonEndTurn StopReason = "end_turn"
)

// TokenUsage captures token usage statistics for one response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Event is one normalized lifecycle increment of model output. Concrete
// event types implement the unexported isEvent marker enabling a closed set.
//
// A successful stream is always shaped as:
//
//	MessageStartEvent,
//	(ContentBlockStartEvent | ContentBlockDeltaEvent | ContentBlockStopEvent)*,
//	MetadataEvent?,
//	MessageStopEvent
//
// Failures never surface as events; the error channel terminates the stream.
type Event interface{ isEvent() }

// MessageStartEvent opens the assistant message. Emitted exactly once,
// before any other event.
type MessageStartEvent struct {
	Role string // Always "assistant"
}

// isEvent implements the Event interface for MessageStartEvent.
func (MessageStartEvent) isEvent() {}

// ContentBlockStartEvent opens a content block. For tool-use blocks the id
// is generated locally per response since the wire protocol supplies none.
type ContentBlockStartEvent struct {
	Type string // Block kind, e.g. "tool_use"
	ID   string // Locally generated block identifier
	Name string // Tool name for tool-use blocks
}

// isEvent implements the Event interface for ContentBlockStartEvent.
func (ContentBlockStartEvent) isEvent() {}

// Delta is the payload of a ContentBlockDeltaEvent. Concrete delta types
// implement the unexported isDelta marker enabling a closed set.
type Delta interface{ isDelta() }

// TextDelta is an incremental text fragment.
type TextDelta struct {
	Text string
}

// isDelta implements the Delta interface for TextDelta.
func (TextDelta) isDelta() {}

// InputJSONDelta is a serialized tool-input fragment.
type InputJSONDelta struct {
	PartialJSON string
}

// isDelta implements the Delta interface for InputJSONDelta.
func (InputJSONDelta) isDelta() {}

// ContentBlockDeltaEvent carries one content increment for the open block.
type ContentBlockDeltaEvent struct {
	Delta Delta
}

// isEvent implements the Event interface for ContentBlockDeltaEvent.
func (ContentBlockDeltaEvent) isEvent() {}

// ContentBlockStopEvent closes the most recently opened content block.
type ContentBlockStopEvent struct{}

// isEvent implements the Event interface for ContentBlockStopEvent.
func (ContentBlockStopEvent) isEvent() {}

// MetadataEvent reports token usage derived from the terminal chunk.
// Emitted at most once, immediately before MessageStopEvent.
type MetadataEvent struct {
	Usage TokenUsage
}

// isEvent implements the Event interface for MetadataEvent.
func (MetadataEvent) isEvent() {}

// MessageStopEvent terminates the event sequence on success.
type MessageStopEvent struct {
	StopReason StopReason
}

// isEvent implements the Event interface for MessageStopEvent.
func (MessageStopEvent) isEvent() {}
