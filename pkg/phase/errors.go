package phase

import (
	"errors"
	"fmt"
)

// ErrBlueprintEmpty is returned when a run is started without a blueprint.
var ErrBlueprintEmpty = errors.New("blueprint must not be empty")

// ValidatorFailure records a validator that returned an error instead of a
// report. The failure becomes a blocker on the phase verdict, but the run
// continues so every validator still produces evidence.
type ValidatorFailure struct {
	Validator string
	Err       error
}

func (e *ValidatorFailure) Error() string {
	return fmt.Sprintf("validator %q failed: %v", e.Validator, e.Err)
}

func (e *ValidatorFailure) Unwrap() error {
	return e.Err
}
