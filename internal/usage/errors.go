package usage

import "errors"

// ErrLimitReached indicates the user exhausted their scan quota.
var ErrLimitReached = errors.New("limit reached")
