// Package tui is the Bubble Tea front end of the console: login flow, main
// menu, per-resource list and form screens, the confirmation overlay, and
// toast notifications. All data operations go through the resource
// controllers; the TUI renders their state and forwards user intent.
package tui
