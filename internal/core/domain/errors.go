package domain

import "go.trai.ch/zerr"

var (
	// ErrNotATaskModule is returned when a task descriptor has no module/class separator.
	ErrNotATaskModule = zerr.New("not a task module")

	// ErrUnknownTaskModule is returned when a descriptor names a module that is not registered.
	ErrUnknownTaskModule = zerr.New("unknown task module")

	// ErrUnknownTaskClass is returned when a registered module does not define the named class.
	ErrUnknownTaskClass = zerr.New("task module does not define class")

	// ErrNoSuiteCases is returned when a suite is executed with no test cases.
	ErrNoSuiteCases = zerr.New("suite has no cases")

	// ErrSuiteFailed is returned by the application when the suite ran but had failing cases.
	ErrSuiteFailed = zerr.New("test suite failed")
)
