package ollama

import (
	"encoding/json"
	"testing"

	"github.com/hupe1980/ollamabridge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequest_SystemString(t *testing.T) {
	msgs := []core.Message{core.NewTextMessage("user", "hi")}
	opts := core.StreamOptions{System: core.SystemText("You are terse.")}

	req := BuildRequest(msgs, opts, Config{Model: "llama3.2"})

	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "You are terse.", req.Messages[0].Content)
	assert.Equal(t, ChatMessage{Role: "user", Content: "hi"}, req.Messages[1])
	assert.True(t, req.Stream)
	assert.Equal(t, "llama3.2", req.Model)
}

func TestBuildRequest_SystemBlocksConcatenatesTextOnly(t *testing.T) {
	opts := core.StreamOptions{System: core.SystemBlocks{
		core.TextBlock{Text: "Be"},
		core.ImageBlock{Source: core.Base64Source{Data: "aaaa"}},
		core.TextBlock{Text: " brief."},
	}}

	req := BuildRequest(nil, opts, Config{})

	require.Len(t, req.Messages, 1)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "Be brief.", req.Messages[0].Content)
}

func TestBuildRequest_NoSystem(t *testing.T) {
	req := BuildRequest([]core.Message{core.NewTextMessage("user", "hi")}, core.StreamOptions{}, Config{})

	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
}

func TestBuildRequest_FlattensBlocks(t *testing.T) {
	msgs := []core.Message{
		{
			Role: "user",
			Blocks: []core.Block{
				core.TextBlock{Text: "what is this?"},
				core.ImageBlock{Source: core.Base64Source{MediaType: "image/png", Data: "aW1n"}},
				core.ImageBlock{Source: core.URLSource{URL: "https://example.com/x.png"}},
			},
		},
		{
			Role: "assistant",
			Blocks: []core.Block{
				core.ToolUseBlock{Name: "get_weather", Input: map[string]any{"city": "Berlin"}},
			},
		},
	}

	req := BuildRequest(msgs, core.StreamOptions{}, Config{})

	require.Len(t, req.Messages, 3) // URL-sourced image is not converted
	assert.Equal(t, ChatMessage{Role: "user", Content: "what is this?"}, req.Messages[0])
	assert.Equal(t, ChatMessage{Role: "user", Images: []string{"aW1n"}}, req.Messages[1])

	require.Len(t, req.Messages[2].ToolCalls, 1)
	assert.Equal(t, "assistant", req.Messages[2].Role)
	assert.Equal(t, "get_weather", req.Messages[2].ToolCalls[0].Function.Name)
	assert.Equal(t, map[string]any{"city": "Berlin"}, req.Messages[2].ToolCalls[0].Function.Arguments)
}

func TestBuildRequest_ToolResultFanOut(t *testing.T) {
	msgs := []core.Message{
		{
			Role: "user",
			Blocks: []core.Block{
				core.ToolResultBlock{
					ToolUseID: "call_1",
					Content: []core.ResultItem{
						core.JSONItem{Value: map[string]any{"temp": 21}},
						core.TextItem{Text: "sunny"},
						core.JSONItem{Value: []any{1, 2}},
					},
				},
			},
		},
	}

	req := BuildRequest(msgs, core.StreamOptions{}, Config{})

	require.Len(t, req.Messages, 3)
	for _, m := range req.Messages {
		assert.Equal(t, "tool", m.Role)
	}
	assert.JSONEq(t, `{"temp":21}`, req.Messages[0].Content)
	assert.Equal(t, "sunny", req.Messages[1].Content)
	assert.JSONEq(t, `[1,2]`, req.Messages[2].Content)
}

func TestBuildRequest_SamplingOptionsAndRawOverride(t *testing.T) {
	temp := 0.2
	maxTokens := 128
	topP := 0.9
	cfg := Config{
		Model:         "llama3.2",
		Temperature:   &temp,
		MaxTokens:     &maxTokens,
		TopP:          &topP,
		StopSequences: []string{"END"},
		KeepAlive:     "5m",
		Options:       map[string]any{"temperature": 0.7, "num_ctx": 8192},
	}

	req := BuildRequest(nil, core.StreamOptions{}, cfg)

	assert.Equal(t, "5m", req.KeepAlive)
	assert.Equal(t, 0.7, req.Options["temperature"]) // raw bag wins
	assert.Equal(t, 128, req.Options["num_predict"])
	assert.Equal(t, 0.9, req.Options["top_p"])
	assert.Equal(t, []string{"END"}, req.Options["stop"])
	assert.Equal(t, 8192, req.Options["num_ctx"])
}

func TestBuildRequest_ToolSpecs(t *testing.T) {
	opts := core.StreamOptions{Tools: []core.ToolSpec{{
		Name:        "get_weather",
		Description: "Current weather for a city",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{"city": map[string]any{"type": "string"}},
		},
	}}}

	req := BuildRequest(nil, opts, Config{})

	require.Len(t, req.Tools, 1)
	assert.Equal(t, "function", req.Tools[0].Type)
	assert.Equal(t, "get_weather", req.Tools[0].Function.Name)
	assert.Equal(t, "Current weather for a city", req.Tools[0].Function.Description)
	assert.Contains(t, req.Tools[0].Function.Parameters, "properties")
}

func TestChatRequest_ParamsOverrideEverything(t *testing.T) {
	cfg := Config{
		Model:  "llama3.2",
		Params: map[string]any{"model": "mistral", "stream": false, "format": "json"},
	}

	req := BuildRequest([]core.Message{core.NewTextMessage("user", "hi")}, core.StreamOptions{}, cfg)

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "mistral", body["model"])
	assert.Equal(t, false, body["stream"])
	assert.Equal(t, "json", body["format"])
}

func TestBuildRequest_Deterministic(t *testing.T) {
	temp := 0.5
	msgs := []core.Message{
		core.NewTextMessage("user", "hi"),
		{Role: "assistant", Blocks: []core.Block{
			core.ToolUseBlock{Name: "lookup", Input: map[string]any{"q": "go"}},
		}},
	}
	opts := core.StreamOptions{System: core.SystemText("sys")}
	cfg := Config{Model: "llama3.2", Temperature: &temp}

	first := BuildRequest(msgs, opts, cfg)
	second := BuildRequest(msgs, opts, cfg)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}
