package core

// Block represents a polymorphic segment of role-based message content.
// Concrete block types implement the unexported isBlock marker enabling a
// closed set with exhaustive handling at the formatting boundary.
type Block interface{ isBlock() }

// TextBlock is a plain text content segment.
type TextBlock struct {
	Text string // Plain UTF-8 text
}

// isBlock implements the Block interface for TextBlock.
func (TextBlock) isBlock() {}

// ImageSource describes where an image's payload lives. Concrete source
// types implement the unexported isImageSource marker enabling a closed set.
type ImageSource interface{ isImageSource() }

// Base64Source is an image provided as inlined base64-encoded bytes.
type Base64Source struct {
	MediaType string // MIME type, e.g. "image/png"
	Data      string // Base64 encoded payload
}

// isImageSource implements the ImageSource interface for Base64Source.
func (Base64Source) isImageSource() {}

// URLSource is an image available at an external URL.
type URLSource struct {
	URL string
}

// isImageSource implements the ImageSource interface for URLSource.
func (URLSource) isImageSource() {}

// ImageBlock is an image content segment.
type ImageBlock struct {
	Source ImageSource
}

// isBlock implements the Block interface for ImageBlock.
func (ImageBlock) isBlock() {}

// ToolUseBlock is a tool invocation request emitted by the assistant.
type ToolUseBlock struct {
	ID    string         // Optional id correlating a later tool result
	Name  string         // Tool name
	Input map[string]any // Structured arguments
}

// isBlock implements the Block interface for ToolUseBlock.
func (ToolUseBlock) isBlock() {}

// ResultItem is one unit of a tool result's content. Concrete item types
// implement the unexported isResultItem marker enabling a closed set.
type ResultItem interface{ isResultItem() }

// JSONItem is a structured tool result payload.
type JSONItem struct {
	Value any // Arbitrary JSON-serializable value
}

// isResultItem implements the ResultItem interface for JSONItem.
func (JSONItem) isResultItem() {}

// TextItem is a plain text tool result payload.
type TextItem struct {
	Text string
}

// isResultItem implements the ResultItem interface for TextItem.
func (TextItem) isResultItem() {}

// ToolResultBlock carries the outcome of a previously requested tool call.
type ToolResultBlock struct {
	ToolUseID string       // Matches the originating ToolUseBlock ID
	Content   []ResultItem // Ordered result items
	IsError   bool         // Marks the result as a tool failure
}

// isBlock implements the Block interface for ToolResultBlock.
func (ToolResultBlock) isBlock() {}

// Message holds role + ordered content blocks.
type Message struct {
	Role   string  // Conversation role (user, assistant, system, tool)
	Blocks []Block // Ordered heterogeneous content blocks
}

// NewTextMessage is a convenience constructor for a single-text-block message.
func NewTextMessage(role, text string) Message {
	return Message{Role: role, Blocks: []Block{TextBlock{Text: text}}}
}
