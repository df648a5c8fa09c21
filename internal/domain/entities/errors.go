package entities

import "fmt"

// ConfigurationError means the changesets and the workspace disagree, e.g. a
// changeset releases a package that does not exist. Resolution stops at the
// first one.
type ConfigurationError struct {
	Package string
	Reason  string
	Err     error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration error for package %q: %s", e.Package, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// MalformedPlanError means a release plan, or a release commit that should
// contain one, is structurally invalid.
type MalformedPlanError struct {
	Reason string
	Err    error
}

func (e *MalformedPlanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed release plan: %s: %v", e.Reason, e.Err)
	}
	return "malformed release plan: " + e.Reason
}

func (e *MalformedPlanError) Unwrap() error { return e.Err }
