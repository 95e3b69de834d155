package log

// nullLogger discards everything. Used by default in tests and by
// embedders that have no logging sink to offer.
type nullLogger struct{}

// Null returns a Logger that discards all output.
func Null() Logger {
	return nullLogger{}
}

func (nullLogger) Infof(format string, args ...interface{})  {}
func (nullLogger) Errorf(format string, args ...interface{}) {}
func (nullLogger) Debugf(format string, args ...interface{}) {}
func (nullLogger) Warnf(format string, args ...interface{})  {}
