package future

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func NewCallsRegistry(expectedCalls uint) *callsRegistry {
	registry := callsRegistry{
		expectedCalls: expectedCalls,
	}

	return &registry
}

// callsRegistry records which reactions ran and in what order. Settlement
// is synchronous, so assertions can run right after the producing call.
type callsRegistry struct {
	registry      []string
	expectedCalls uint
}

func (r *callsRegistry) Register(place string) {
	if 0 == r.expectedCalls {
		panic("trying to register unexpected call: " + place)
	}

	r.registry = append(r.registry, place)
	r.expectedCalls--
}

func (r *callsRegistry) Summarize() string {
	return strings.Join(r.registry, "|")
}

func (r *callsRegistry) AssertCurrentCallsStackIs(t *testing.T, expectedRegistry string) {
	require.Equal(t, expectedRegistry, r.Summarize())
}

func (r *callsRegistry) AssertThereAreNCallsLeft(t *testing.T, callsLeftNumber uint) {
	require.Equal(t, callsLeftNumber, r.expectedCalls)
}
