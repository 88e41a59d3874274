package demangle

import "strings"

// cursor is a shrinking view over the remaining input. Reads trim consumed
// bytes from the front; there is no separate position counter. Slicing a Go
// string shares the backing bytes, so the cursor never copies input.
type cursor struct {
	rest string
}

func (c *cursor) empty() bool { return len(c.rest) == 0 }

// peek returns the next byte, or 0 at end of input.
func (c *cursor) peek() byte {
	if len(c.rest) == 0 {
		return 0
	}
	return c.rest[0]
}

func (c *cursor) trim(n int) { c.rest = c.rest[n:] }

// get consumes and returns the next byte.
func (c *cursor) get() (byte, error) {
	if len(c.rest) == 0 {
		return 0, &DecodeError{Err: ErrUnexpectedEnd}
	}
	b := c.rest[0]
	c.rest = c.rest[1:]
	return b, nil
}

// consume trims s from the front if the remaining input starts with it.
func (c *cursor) consume(s string) bool {
	if strings.HasPrefix(c.rest, s) {
		c.rest = c.rest[len(s):]
		return true
	}
	return false
}

// consumeDigit consumes a decimal digit and returns its value.
func (c *cursor) consumeDigit() (int, bool) {
	if len(c.rest) == 0 || c.rest[0] < '0' || c.rest[0] > '9' {
		return 0, false
	}
	d := int(c.rest[0] - '0')
	c.rest = c.rest[1:]
	return d, true
}
