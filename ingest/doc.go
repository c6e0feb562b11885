// Package ingest turns raw input lines into Event values.
//
// Each line is expected to carry a JSON-shaped payment notification with
// created_time, target, and actor fields, in that order:
//
//	{"created_time": "2016-03-28T23:23:12Z", "target": "Bob", "actor": "Alice"}
//
// Parse is deliberately tolerant rather than a strict JSON decode: it
// extracts the three fields by pattern, exactly as the original
// implementation's sscanf-based parser does, so that lines with extra or
// reordered JSON fields still parse so long as these three appear in the
// expected order and shape.
package ingest
