package ollama

import (
	"encoding/json"
	"strings"

	"github.com/hupe1980/ollamabridge/core"
)

// BuildRequest converts a conversation plus per-call options into the wire
// request shape of the /api/chat endpoint. It is a pure transform: no I/O,
// no id generation, deterministic for identical inputs.
//
// No validation happens here; malformed input propagates as malformed output
// and surfaces as a transport rejection.
func BuildRequest(msgs []core.Message, opts core.StreamOptions, cfg Config) ChatRequest {
	var messages []ChatMessage
	if system, ok := systemContent(opts.System); ok {
		messages = append(messages, ChatMessage{Role: "system", Content: system})
	}
	for _, m := range msgs {
		messages = append(messages, flattenMessage(m)...)
	}

	req := ChatRequest{
		Model:     cfg.Model,
		Messages:  messages,
		Options:   buildOptions(cfg),
		KeepAlive: cfg.KeepAlive,
		Tools:     buildTools(opts.Tools),
		Stream:    true,
		Params:    cfg.Params,
	}
	return req
}

// systemContent resolves the system prompt to a single string. A block
// sequence contributes the concatenated text of its text blocks only.
func systemContent(prompt core.SystemPrompt) (string, bool) {
	switch p := prompt.(type) {
	case nil:
		return "", false
	case core.SystemText:
		return string(p), true
	case core.SystemBlocks:
		var sb strings.Builder
		for _, b := range p {
			if tb, ok := b.(core.TextBlock); ok {
				sb.WriteString(tb.Text)
			}
		}
		return sb.String(), true
	default:
		return "", false
	}
}

// flattenMessage expands one conversation message into wire messages, one
// per content block (tool results expand further, one per result item).
func flattenMessage(m core.Message) []ChatMessage {
	var out []ChatMessage
	for _, b := range m.Blocks {
		switch block := b.(type) {
		case core.TextBlock:
			out = append(out, ChatMessage{Role: m.Role, Content: block.Text})
		case core.ImageBlock:
			// Only inlined bytes convert; other source kinds are skipped.
			if src, ok := block.Source.(core.Base64Source); ok {
				out = append(out, ChatMessage{Role: m.Role, Images: []string{src.Data}})
			}
		case core.ToolUseBlock:
			out = append(out, ChatMessage{
				Role: m.Role,
				ToolCalls: []ToolCall{{
					Function: ToolCallFunction{Name: block.Name, Arguments: block.Input},
				}},
			})
		case core.ToolResultBlock:
			for _, item := range block.Content {
				out = append(out, ChatMessage{Role: "tool", Content: resultText(item)})
			}
		}
	}
	return out
}

// resultText flattens one tool result item to its wire string form.
func resultText(item core.ResultItem) string {
	switch it := item.(type) {
	case core.TextItem:
		return it.Text
	case core.JSONItem:
		data, err := json.Marshal(it.Value)
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return ""
	}
}

// buildOptions maps the configured sampling parameters onto the Ollama
// options bag, then shallow-merges the raw options bag last-wins so caller
// supplied keys override the mapped ones.
func buildOptions(cfg Config) map[string]any {
	options := map[string]any{}
	if cfg.Temperature != nil {
		options["temperature"] = *cfg.Temperature
	}
	if cfg.MaxTokens != nil {
		options["num_predict"] = *cfg.MaxTokens
	}
	if cfg.TopP != nil {
		options["top_p"] = *cfg.TopP
	}
	if len(cfg.StopSequences) > 0 {
		options["stop"] = cfg.StopSequences
	}
	for k, v := range cfg.Options {
		options[k] = v
	}
	if len(options) == 0 {
		return nil
	}
	return options
}

// buildTools converts declared tool specs into wire tool declarations.
func buildTools(specs []core.ToolSpec) []Tool {
	if len(specs) == 0 {
		return nil
	}
	tools := make([]Tool, len(specs))
	for i, spec := range specs {
		tools[i] = Tool{
			Type: "function",
			Function: ToolFunction{
				Name:        spec.Name,
				Description: spec.Description,
				Parameters:  spec.InputSchema,
			},
		}
	}
	return tools
}
