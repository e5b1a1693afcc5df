package tools

import "fmt"

// FaultKind classifies dispatch failures.
type FaultKind string

const (
	// KindUnknownOperation means the requested name is not in the registry.
	KindUnknownOperation FaultKind = "unknown_operation"
	// KindInvalidArguments means the arguments violated the tool's schema.
	KindInvalidArguments FaultKind = "invalid_arguments"
	// KindRemoteCallFailed means the Affinity API call did not complete or
	// returned an error status.
	KindRemoteCallFailed FaultKind = "remote_call_failed"
)

// Fault is the error type surfaced by the dispatch adapter. Remote failures
// wrap the underlying request error; caller errors carry only a detail string.
type Fault struct {
	Kind   FaultKind
	Detail string
	Err    error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Kind, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// UnknownOperation creates a fault for an unregistered name.
func UnknownOperation(name string) *Fault {
	return &Fault{Kind: KindUnknownOperation, Detail: fmt.Sprintf("unknown tool %q", name)}
}

// InvalidArguments creates a fault describing a schema violation.
func InvalidArguments(format string, args ...any) *Fault {
	return &Fault{Kind: KindInvalidArguments, Detail: fmt.Sprintf(format, args...)}
}

// RemoteCallFailed wraps a failed Affinity API call.
func RemoteCallFailed(err error) *Fault {
	return &Fault{Kind: KindRemoteCallFailed, Err: err}
}
