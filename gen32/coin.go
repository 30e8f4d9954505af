package gen32

// Coin deals single random bits economically: one raw word funds 32 tosses,
// handed out low bit first. Gen.Bool spends a whole word per boolean; use a
// Coin when booleans are drawn in bulk and word consumption matters.
//
// A Coin with only S set is ready to use. It is a plain value like the
// generators: single-owner, no synchronization.
type Coin struct {
	S    Source
	word uint32
	left int
}

// Toss returns the next bit.
func (c *Coin) Toss() bool {
	if c.left == 0 {
		c.word = c.S.Uint32()
		c.left = 32
	}
	bit := c.word&1 == 1
	c.word >>= 1
	c.left--
	return bit
}
