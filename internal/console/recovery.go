package console

import (
	"fmt"
	"runtime/debug"

	apperrors "console-bank/internal/errors"
)

// recoverAction runs a menu action, turning a panic into a logged, rendered
// error so the session menu stays up
func (c *Controller) recoverAction(name string, action func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic recovered",
				"action", name,
				"panic", fmt.Sprintf("%v", r),
				"stack_trace", string(debug.Stack()),
			)
			c.println(apperrors.GetErrorMessage(apperrors.SystemUnexpectedError))
			err = nil
		}
	}()

	return action()
}
