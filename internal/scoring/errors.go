package scoring

import "errors"

var ErrNegativeStat = errors.New("scoring: negative stat")
