package constants

// Closed range of integers that can end up in a results file.
const (
	MinInteger = -1023
	MaxInteger = 1023
)
