package finder

import "errors"

// ErrDictionaryTooLarge indicates a dictionary passed to NewWithConfig
// exceeds the configured MaxDictionarySize.
var ErrDictionaryTooLarge = errors.New("finder: dictionary exceeds MaxDictionarySize")
