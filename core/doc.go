// Package core defines the transport-independent conversation data model
// shared by the formatter and translator: role-based messages composed of a
// closed set of content block variants (text, image, tool use, tool result)
// plus the per-call stream options (system prompt, tool specs).
//
// Block polymorphism is modeled as a closed tagged variant set via unexported
// marker methods rather than a class hierarchy, so adding a new block kind is
// a compile-time-checked change at every switch site.
package core
