// Package event defines the orchestrator-facing lifecycle event vocabulary
// emitted by the stream translator: message start/stop, content block
// start/delta/stop (with text and tool-input delta sub-kinds), and a token
// usage metadata event.
//
// The vocabulary is intentionally closed; consumers switch exhaustively over
// the Event and Delta variants. There is no error event: failures abort the
// sequence through the accompanying error channel instead.
package event
