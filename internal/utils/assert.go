package utils

import "fmt"

// FatalError is the panic value raised by Fatal. The binary recovers it at the
// top of main, runs cleanup and exits non-zero.
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string {
	return "fatal: " + e.Message
}

// Fatal logs the message at FATAL level and aborts the current goroutine.
func Fatal(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	logMessage(LevelFatal, "%s", msg)
	panic(&FatalError{Message: msg})
}

// Assert calls Fatal with the given message when test is false.
func Assert(test bool, format string, v ...interface{}) {
	if test {
		return
	}
	Fatal("Assertion failed: "+format, v...)
}

// AsFatal reports whether a recovered panic value came from Fatal.
func AsFatal(r interface{}) (*FatalError, bool) {
	fe, ok := r.(*FatalError)
	return fe, ok
}
