// Package render formats engine state for human consumption: the
// two-decimal median line the CLI writes per input event, and the
// full-graph debug dump the CLI's fourth positional argument (dump-entry)
// requests after a chosen accepted event.
package render
