package index

import "errors"

// ErrNotADirectory is returned by Indexer.Index when the root path does not
// resolve to a directory.
var ErrNotADirectory = errors.New("index: root is not a directory")
