package mcp

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// charsPerToken is the approximate number of characters per token for
// English text. Threshold estimation only, not exact counting.
const charsPerToken = 4

// DefaultStorageMaxTokens caps tool output persisted into step records and
// evidence, protecting readers from massive text blobs.
const DefaultStorageMaxTokens = 8000

// EstimateTokens returns an approximate token count for a serialized
// payload: ceil(len/4), clamped to a minimum of 1. The clamp guarantees
// every tool result reports at least one token even for empty payloads.
//
// len counts bytes, not runes. Multi-byte UTF-8 content overestimates — a
// safe direction, since budgets trip slightly early rather than late.
func EstimateTokens(payload []byte) int {
	if len(payload) == 0 {
		return 1
	}
	n := (len(payload) + charsPerToken - 1) / charsPerToken
	if n < 1 {
		n = 1
	}
	return n
}

// TruncateForStorage cuts oversized tool output at a line boundary before
// persistence. Content at or under the limit passes through unchanged.
func TruncateForStorage(content string) string {
	maxChars := DefaultStorageMaxTokens * charsPerToken
	if len(content) <= maxChars {
		return content
	}
	// Don't split a multi-byte UTF-8 character.
	cut := maxChars
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	truncated := content[:cut]
	if idx := strings.LastIndex(truncated, "\n"); idx > 0 {
		truncated = truncated[:idx]
	}
	return truncated + fmt.Sprintf(
		"\n\n[TRUNCATED: output exceeded storage limit — original %dB, limit %dB]",
		len(content), maxChars)
}
