// Package ollama implements the protocol bridge to Ollama's native /api/chat
// endpoint: a pure request formatter (conversation -> wire request) and a
// stream translator (wire chunks -> lifecycle events).
//
// The formatter flattens content blocks into the endpoint's message list,
// maps sampling parameters onto the options bag and merges the raw options
// and params bags last-wins. The translator turns the newline-delimited
// chunk stream into the closed event vocabulary of the event package,
// generating local tool-use ids and deriving the stop reason from whether
// any tool call was observed.
//
// Retry, reconnection and conversation state are deliberately left to the
// caller; transport failures are logged once and forwarded unchanged.
package ollama
