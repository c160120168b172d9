package test

import (
	"fmt"
	"strings"
)

// BuildMessage is a helper function for tests that wraps a message body in
// a valid envelope: it prepends the BeginString and BodyLength fields and
// appends a correct CheckSum field. The body must already use sep as its
// field separator and end with it. It panics on a malformed body, which
// makes it usable inline.
func BuildMessage(sep byte, beginString string, body string) []byte {
	if len(body) > 0 && body[len(body)-1] != sep {
		panic("message body does not end with the separator")
	}
	msg := fmt.Sprintf(
		"8=%s%c9=%d%c%s",
		beginString,
		sep,
		len(body),
		sep,
		body,
	)
	sum := 0
	for _, b := range []byte(msg) {
		sum += int(b)
	}
	return []byte(fmt.Sprintf("%s10=%03d%c", msg, sum%256, sep))
}

// SOH replaces every '|' in a human-readable fixture with the standard
// FIX separator byte
func SOH(s string) string {
	return strings.ReplaceAll(s, "|", "\x01")
}
