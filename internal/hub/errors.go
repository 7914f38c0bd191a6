package hub

import "errors"

// ErrNotFound indicates the hub has no such file for the requested model,
// typically a wrong model name or an export that was never published.
var ErrNotFound = errors.New("hub: artifact not found")
