package ingest

import (
	"regexp"
	"strconv"
	"time"
)

// MaxLineLength is the longest input line Parse will consider before
// truncating, matching the original implementation's 500-byte fgets
// buffer (499 usable bytes plus the trailing NUL).
const MaxLineLength = 499

// lineRE captures created_time's six numeric components, then target,
// then actor — mirroring the original sscanf format string's field order.
var lineRE = regexp.MustCompile(
	`"created_time"\s*:\s*"(\d+)-(\d+)-(\d+)T(\d+):(\d+):(\d+)Z".*?` +
		`"target"\s*:\s*"([^"]*)".*?` +
		`"actor"\s*:\s*"([^"]*)"`,
)

// Event is a single parsed payment: two names and the moment they
// transacted, as seconds since the Unix epoch.
type Event struct {
	Timestamp int64
	Actor     string
	Target    string
}

// Parse extracts an Event from one input line. It reports ok == false if
// the line does not match the expected shape, or if the actor or target
// field is empty — matching the original parser's "actor empty, target
// empty, or time zero" rejection rule. Lines longer than MaxLineLength
// are truncated before matching, matching the original's fixed line
// buffer.
//
// Timestamps are interpreted as UTC, not local time: the original
// implementation feeds the same six integer fields to mktime, which
// resolves them against the host's local timezone. Since the engine only
// ever compares timestamp deltas against the window width, the choice of
// timezone does not change which events fall inside or outside the
// window, and UTC avoids making parsing depend on the host's configured
// timezone.
func Parse(line string) (Event, bool) {
	if len(line) > MaxLineLength {
		line = line[:MaxLineLength]
	}

	m := lineRE.FindStringSubmatch(line)
	if m == nil {
		return Event{}, false
	}

	year, errYear := strconv.Atoi(m[1])
	month, errMonth := strconv.Atoi(m[2])
	day, errDay := strconv.Atoi(m[3])
	hour, errHour := strconv.Atoi(m[4])
	minute, errMinute := strconv.Atoi(m[5])
	second, errSecond := strconv.Atoi(m[6])
	if errYear != nil || errMonth != nil || errDay != nil || errHour != nil || errMinute != nil || errSecond != nil {
		return Event{}, false
	}

	target := m[7]
	actor := m[8]
	if actor == "" || target == "" {
		return Event{}, false
	}

	ts := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC).Unix()
	if ts == 0 {
		return Event{}, false
	}

	return Event{Timestamp: ts, Actor: actor, Target: target}, true
}
