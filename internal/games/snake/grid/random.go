package grid

// Source supplies uniform integers in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// RandomCell samples a cell uniformly from the board.
func (b Bounds) RandomCell(rng Source) Cell {
	return Cell{
		X: rng.Intn(b.W),
		Y: rng.Intn(b.H),
	}
}

// IsOccupied reports whether c appears anywhere in occupied.
func IsOccupied(c Cell, occupied []Cell) bool {
	for _, o := range occupied {
		if o == c {
			return true
		}
	}
	return false
}

// RandomUnoccupiedCell samples up to maxAttempts cells and returns the first
// one not in occupied. When every attempt lands on an occupied cell the
// origin is returned instead, so placement always terminates.
func (b Bounds) RandomUnoccupiedCell(rng Source, occupied []Cell, maxAttempts int) Cell {
	for range maxAttempts {
		c := b.RandomCell(rng)
		if IsOccupied(c, occupied) {
			continue
		}
		return c
	}
	return Cell{}
}
