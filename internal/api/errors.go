package api

import "fmt"

// FetchError reports a failed odds request: either the provider could not be
// reached, answered with a non-2xx status, or sent a body we could not decode.
type FetchError struct {
	StatusCode int    // 0 when no response was received
	Body       string // response body, if any
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("odds fetch failed (status %d): %v", e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("odds fetch failed (status %d): %s", e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("odds fetch failed: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
