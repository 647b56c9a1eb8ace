package dictfile

import "errors"

// ErrOpenDictionary indicates the dictionary file could not be opened.
var ErrOpenDictionary = errors.New("dictfile: failed to open dictionary file")

// ErrMalformedRow indicates a row could not be parsed as CSV.
var ErrMalformedRow = errors.New("dictfile: malformed row")
