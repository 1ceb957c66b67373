package store

import "errors"

// ErrNotFound signals that a referenced record does not exist. Ownership
// failures surface as ErrNotFound too: the middlewares and reorder queries
// filter by owner, so a foreign record is indistinguishable from a missing one.
var ErrNotFound = errors.New("record not found")
