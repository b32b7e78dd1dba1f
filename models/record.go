package models

// Record is one "<word> <count>" line of a reduced-output file.
type Record struct {
	Word  string
	Count int
}
