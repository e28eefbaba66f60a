// Package ui renders pono results for people and for scripts.
//
// [TextReporter] implements link.Reporter and prints one colored line per
// processed entry as the engine works. [RenderEntries] and [RenderStatus]
// print whole results in text, JSON or YAML. Colors follow fatih/color,
// which disables them when the output is not a terminal or NO_COLOR is set.
package ui
