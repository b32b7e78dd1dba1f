package models

// Counts is a word frequency map that remembers the order in which each
// word was first inserted. Iteration via Keys follows that order.
type Counts struct {
	keys   []string
	values map[string]int
}

// NewCounts returns an empty Counts.
func NewCounts() *Counts {
	return &Counts{values: make(map[string]int)}
}

// Add increments the count for word by n.
func (c *Counts) Add(word string, n int) {
	if _, ok := c.values[word]; !ok {
		c.keys = append(c.keys, word)
	}
	c.values[word] += n
}

// Set overwrites the count for word. A word seen for the first time keeps
// its insertion position; an existing word keeps its original position.
func (c *Counts) Set(word string, n int) {
	if _, ok := c.values[word]; !ok {
		c.keys = append(c.keys, word)
	}
	c.values[word] = n
}

// Get returns the count for word and whether it is present.
func (c *Counts) Get(word string) (int, bool) {
	n, ok := c.values[word]
	return n, ok
}

// Keys returns the words in first-insertion order.
// The returned slice must not be modified.
func (c *Counts) Keys() []string {
	return c.keys
}

// Len returns the number of distinct words.
func (c *Counts) Len() int {
	return len(c.keys)
}

// Total returns the sum of all counts.
func (c *Counts) Total() int {
	total := 0
	for _, n := range c.values {
		total += n
	}
	return total
}
