package commander

import "fmt"

// NavigationError is returned by GotoDirectory when the requested path can
// not be shown. The target panel is left untouched.
type NavigationError struct {
	Side Side
	Path string
	Err  error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("can not go to %s in %s panel: %v", e.Path, e.Side, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}
