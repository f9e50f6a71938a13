package tools

import (
	"encoding/json"

	"github.com/loom-agents/loom/pkg/mcp"
)

// estimatePayloadTokens serializes a local handler's output and applies the
// shared ceil(len/4) estimator. Unserializable output still charges the
// one-token minimum.
func estimatePayloadTokens(payload any) int {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 1
	}
	return mcp.EstimateTokens(raw)
}
