package approval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateNotRequired(t *testing.T) {
	gate := NewGate(false, nil)
	assert.False(t, gate.Required())
	assert.NoError(t, gate.Check(context.Background(), Request{Capability: "codemod"}))
}

func TestGateApproves(t *testing.T) {
	gate := NewGate(true, func(_ context.Context, _ Request) (Decision, error) {
		return DecisionApproved, nil
	})
	assert.True(t, gate.Required())
	assert.NoError(t, gate.Check(context.Background(), Request{Capability: "draft"}))
}

func TestGateDenies(t *testing.T) {
	gate := NewGate(true, func(_ context.Context, req Request) (Decision, error) {
		if req.Capability == "codemod" {
			return DecisionDenied, nil
		}
		return DecisionApproved, nil
	})

	err := gate.Check(context.Background(), Request{Capability: "codemod"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrApprovalDenied)
	assert.Contains(t, err.Error(), "codemod")

	assert.NoError(t, gate.Check(context.Background(), Request{Capability: "draft"}))
}

func TestGateErrorPropagates(t *testing.T) {
	boom := errors.New("gate backend down")
	gate := NewGate(true, func(_ context.Context, _ Request) (Decision, error) {
		return "", boom
	})

	err := gate.Check(context.Background(), Request{Capability: "deploy"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrApprovalDenied)
}
