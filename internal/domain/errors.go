package domain

import "fmt"

// ConfigurationError reports a symbolic name that no lookup table knows
// about (an ear, LED, direction or color name). It is surfaced at the call
// that used the name and is never retried.
type ConfigurationError struct {
	Kind string
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown %s name %q", e.Kind, e.Name)
}

// TransportError wraps a network or HTTP failure while talking to the
// service. The core never retries; callers decide.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError means the HTTP exchange succeeded but the service reply did
// not acknowledge one of the dispatched commands. Command is the label of
// the first verifier that failed, Response the full decoded reply.
type ServiceError struct {
	Command  string
	Response string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service did not confirm %s command: %s", e.Command, e.Response)
}
