package future

import "github.com/sirupsen/logrus"

// Diagnostics is the host-supplied channel for contract violations:
// double settlement, wrong-type access, empty-handle use. The library
// reports and then falls back to safe behavior; it never panics on a
// violation.
type Diagnostics interface {
	Violation(op string, err error)
}

// LogDiagnostics reports violations through a logrus logger.
type LogDiagnostics struct {
	Log logrus.FieldLogger
}

func (d *LogDiagnostics) Violation(op string, err error) {
	d.Log.WithField("op", op).WithError(err).Warn("future contract violation")
}

var diagnostics Diagnostics = &LogDiagnostics{Log: logrus.StandardLogger()}

// SetDiagnostics replaces the process-wide violation sink. Passing nil
// restores the default logrus reporter.
func SetDiagnostics(d Diagnostics) {
	if nil == d {
		d = &LogDiagnostics{Log: logrus.StandardLogger()}
	}
	diagnostics = d
}

func reportViolation(op string, err error) {
	diagnostics.Violation(op, err)
}
