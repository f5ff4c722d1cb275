package ollama

import "encoding/json"

// ToolCallFunction describes the concrete function target of a tool call.
// Arguments arrive as a structured object on the native chat API.
type ToolCallFunction struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ToolCall represents a function call request surfaced in a chat message.
type ToolCall struct {
	Function ToolCallFunction `json:"function"`
}

// ChatMessage is one flattened message in the wire request. Exactly one of
// Content, Images or ToolCalls is populated per message.
type ChatMessage struct {
	Role      string     `json:"role"`
	Content   string     `json:"content,omitempty"`
	Images    []string   `json:"images,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// ToolFunction describes an individual function (tool) exposed to the model.
// Parameters is a JSON Schema object (draft agnostic, minimal subset expected).
type ToolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Tool declaratively exposes a callable function to the model.
type Tool struct {
	Type     string       `json:"type"` // "function"
	Function ToolFunction `json:"function"`
}

// ChatRequest is the wire request body for the /api/chat endpoint.
//
// Params is an open bag shallow-merged over the entire serialized request,
// last-wins, including keys like "model", "messages" and "stream". This is
// override-everything semantics by design: a caller can silently disable
// streaming or redirect the model through it. Treat it as an escape hatch.
type ChatRequest struct {
	Model     string         `json:"model"`
	Messages  []ChatMessage  `json:"messages"`
	Options   map[string]any `json:"options,omitempty"`
	KeepAlive string         `json:"keep_alive,omitempty"`
	Tools     []Tool         `json:"tools,omitempty"`
	Stream    bool           `json:"stream"`
	Params    map[string]any `json:"-"`
}

// MarshalJSON serializes the request and applies the raw Params bag last.
func (r ChatRequest) MarshalJSON() ([]byte, error) {
	type plain ChatRequest
	data, err := json.Marshal(plain(r))
	if err != nil {
		return nil, err
	}
	if len(r.Params) == 0 {
		return data, nil
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	for k, v := range r.Params {
		body[k] = v
	}
	return json.Marshal(body)
}

// ChunkMessage is the message fragment carried by one response chunk.
type ChunkMessage struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// ChatChunk is one increment of the streaming response. Token counts are
// only populated on the terminal chunk (Done true).
type ChatChunk struct {
	Model           string       `json:"model"`
	CreatedAt       string       `json:"created_at"`
	Message         ChunkMessage `json:"message"`
	Done            bool         `json:"done"`
	DoneReason      string       `json:"done_reason,omitempty"`
	PromptEvalCount int          `json:"prompt_eval_count,omitempty"`
	EvalCount       int          `json:"eval_count,omitempty"`
}
