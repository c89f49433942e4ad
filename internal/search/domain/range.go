package domain

// Range is the inclusive key length range of a search.
type Range struct {
	Min int
	Max int
}

// NewRange builds a Range. A min above max is lowered to max rather than
// rejected. Lengths below one return ErrInvalidRange.
func NewRange(minLength, maxLength int) (Range, error) {
	if maxLength < 1 || minLength < 1 {
		return Range{}, ErrInvalidRange
	}
	if minLength > maxLength {
		minLength = maxLength
	}
	return Range{Min: minLength, Max: maxLength}, nil
}
