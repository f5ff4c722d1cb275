package core

// SystemPrompt is the per-call system prompt, supplied either as a plain
// string or as a block sequence. Concrete prompt types implement the
// unexported isSystemPrompt marker enabling a closed set.
type SystemPrompt interface{ isSystemPrompt() }

// SystemText is a system prompt given as a plain string.
type SystemText string

// isSystemPrompt implements the SystemPrompt interface for SystemText.
func (SystemText) isSystemPrompt() {}

// SystemBlocks is a system prompt given as a block sequence. Only text
// blocks contribute to the synthesized system message.
type SystemBlocks []Block

// isSystemPrompt implements the SystemPrompt interface for SystemBlocks.
func (SystemBlocks) isSystemPrompt() {}

// ToolSpec declaratively exposes a callable function to the model.
// InputSchema is a JSON Schema object (draft agnostic, minimal subset expected).
type ToolSpec struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// StreamOptions are the per-call options accompanying a conversation.
type StreamOptions struct {
	System SystemPrompt // Optional system prompt (nil when absent)
	Tools  []ToolSpec   // Declared tool specs
}
