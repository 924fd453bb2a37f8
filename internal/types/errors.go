package types

import "fmt"

// UnknownUserTypeError represents a user whose type matches no removal
// endpoint. The removal is skipped locally and the remote API is not called.
type UnknownUserTypeError struct {
	Login string
	Type  UserType
}

func (e *UnknownUserTypeError) Error() string {
	return fmt.Sprintf("unknown user type '%s' for %s", e.Type, e.Login)
}
