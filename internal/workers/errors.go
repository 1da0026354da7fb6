package workers

import "errors"

var ErrMissingStats = errors.New("workers: stat line fields missing")
