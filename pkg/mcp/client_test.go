package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResultEnvelope(t *testing.T) {
	result, tokens, err := decodeResult([]byte(`{"result": {"hits": 3}, "tokensUsed": 42}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"hits": float64(3)}, result)
	assert.Equal(t, 42, tokens)
}

func TestDecodeResultEnvelopeWithoutTokens(t *testing.T) {
	raw := []byte(`{"result": "hello"}`)
	result, tokens, err := decodeResult(raw)
	require.NoError(t, err)
	assert.Equal(t, "hello", result)
	// Estimated from the serialized result, never zero.
	assert.GreaterOrEqual(t, tokens, 1)
}

func TestDecodeResultBarePayload(t *testing.T) {
	result, tokens, err := decodeResult([]byte(`{"answer": 7}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"answer": float64(7)}, result)
	assert.GreaterOrEqual(t, tokens, 1)
}

func TestDecodeResultBareArray(t *testing.T) {
	result, tokens, err := decodeResult([]byte(`[1, 2, 3]`))
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, result)
	assert.GreaterOrEqual(t, tokens, 1)
}

func TestDecodeResultInvalidJSON(t *testing.T) {
	_, _, err := decodeResult([]byte(`not json`))
	require.Error(t, err)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 1, EstimateTokens(nil))
	assert.Equal(t, 1, EstimateTokens([]byte("ab")))
	assert.Equal(t, 1, EstimateTokens([]byte("abcd")))
	assert.Equal(t, 2, EstimateTokens([]byte("abcde")))
	assert.Equal(t, 25, EstimateTokens(make([]byte, 100)))
}

func TestTruncateForStorage(t *testing.T) {
	small := "short output"
	assert.Equal(t, small, TruncateForStorage(small))

	big := ""
	for i := 0; i < 3000; i++ {
		big += "line of structured output\n"
	}
	truncated := TruncateForStorage(big)
	assert.Less(t, len(truncated), len(big))
	assert.Contains(t, truncated, "[TRUNCATED")
}
