package cache

import (
	"errors"
	"time"
)

// DefaultTTL is how long a stored snapshot stays fresh.
const DefaultTTL = 30 * time.Minute

var (
	ErrNoSnapshot = errors.New("cache: no snapshot stored")
)
