package transcript

import "regexp"

// Regular expression for a parenthesized timestamp token, e.g. "(00:03:42)"
var timestampRegex = regexp.MustCompile(`\((\d{2}:\d{2}:\d{2})\)`)

// ExtractTimestamp finds the first (HH:MM:SS) token in a line of dialogue
// and returns the captured HH:MM:SS value. The digits are not validated as
// a sensible duration. ok is false when no token occurs.
func ExtractTimestamp(text string) (string, bool) {
	matches := timestampRegex.FindStringSubmatch(text)
	if matches == nil {
		return "", false
	}
	return matches[1], true
}
