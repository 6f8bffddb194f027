package future

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedViolation struct {
	op  string
	err error
}

type recordingDiagnostics struct {
	violations []recordedViolation
}

func (d *recordingDiagnostics) Violation(op string, err error) {
	d.violations = append(d.violations, recordedViolation{op: op, err: err})
}

// recordViolations swaps in a recording sink for the duration of a test.
func recordViolations(t *testing.T) *recordingDiagnostics {
	t.Helper()

	recorder := &recordingDiagnostics{}
	SetDiagnostics(recorder)
	t.Cleanup(func() {
		SetDiagnostics(nil)
	})

	return recorder
}

func (d *recordingDiagnostics) assertReported(t *testing.T, sentinel error) {
	t.Helper()

	for _, violation := range d.violations {
		if errors.Is(violation.err, sentinel) {
			return
		}
	}
	require.Failf(t, "expected violation not reported", "no violation matching %v in %v", sentinel, d.violations)
}

func TestSetDiagnostics(t *testing.T) {
	t.Run("Replaced sink receives violations", func(t *testing.T) {
		recorder := recordViolations(t)

		var promise Promise[int]
		promise.Fulfill(1)

		require.Len(t, recorder.violations, 1)
		require.Equal(t, "Promise.Fulfill", recorder.violations[0].op)
		require.ErrorIs(t, recorder.violations[0].err, ErrEmptyHandle)
	})

	t.Run("Nil restores the default reporter", func(t *testing.T) {
		SetDiagnostics(nil)

		require.NotNil(t, diagnostics)
		require.IsType(t, &LogDiagnostics{}, diagnostics)
	})
}
