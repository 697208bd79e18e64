package syllable

import "errors"

// ErrUnrecognizedSymbol indicates the word contains material outside the
// phoneme inventory (and outside the opaque delimiters '/' and ' ').
// Returned only by the strict entry points; Syllabify itself never errors.
// Usage: if errors.Is(err, ErrUnrecognizedSymbol) { /* reject the line */ }.
var ErrUnrecognizedSymbol = errors.New("syllable: symbol outside inventory")
