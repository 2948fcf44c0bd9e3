// Package grid holds the square grid configuration the sieve is drawn on
// and the row-major mapping from values to cells.
package grid

const (
	MinSize     = 10
	MaxSize     = 18
	DefaultSize = MinSize
)

// Config is immutable; a resize replaces it.
type Config struct {
	size int
}

// New returns a Config with size clamped to [MinSize, MaxSize].
func New(size int) Config {
	return Config{size: Clamp(size)}
}

func Clamp(size int) int {
	if size < MinSize {
		return MinSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

func (c Config) Size() int { return c.size }

// Limit is the exclusive upper bound handed to the generator.
func (c Config) Limit() int { return c.size*c.size + 1 }

func (c Config) Cells() int { return c.size * c.size }

// CellIndex returns the zero-based row-major index of value.
func (c Config) CellIndex(value int) int { return value - 1 }

// CellPosition maps value (1-based) to its row and column.
func (c Config) CellPosition(value int) (row, col int) {
	return (value - 1) / c.size, (value - 1) % c.size
}

// ValueAt is the inverse of CellPosition.
func (c Config) ValueAt(row, col int) int {
	return row*c.size + col + 1
}

// SizeForDigit maps a digit key to a grid size: d -> d+9.
func SizeForDigit(d int) (int, bool) {
	if d < 1 || d > 9 {
		return 0, false
	}
	return d + 9, true
}

// SizeForKey is SizeForDigit for a key name as reported by the terminal.
func SizeForKey(key string) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	return SizeForDigit(int(key[0] - '0'))
}
