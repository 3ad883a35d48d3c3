package domain

import (
	"fmt"

	"github.com/kamstrup/intmap"
	"golang.org/x/exp/rand"
)

const spawnAttempts = 100

// FoodSpawner picks free cells for the apple.
type FoodSpawner struct {
	rng *rand.Rand
}

func NewFoodSpawner(seed uint64) *FoodSpawner {
	return &FoodSpawner{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Spawn returns a uniformly chosen cell of a boardWidth x boardHeight board
// that is not in occupied. Occupied cells off the board are ignored.
func (fs *FoodSpawner) Spawn(boardWidth, boardHeight int, occupied []Cell) (Cell, error) {
	grid := Grid{Width: boardWidth, Height: boardHeight, CellSize: 1}
	total := grid.Size()
	if total <= 0 {
		return Cell{}, fmt.Errorf("spawn on %dx%d board: %w", boardWidth, boardHeight, ErrNoSpace)
	}

	taken := intmap.New[int, struct{}](len(occupied))
	for _, c := range occupied {
		if grid.Contains(c) {
			taken.Put(grid.Index(c), struct{}{})
		}
	}

	if taken.Len() >= total {
		return Cell{}, fmt.Errorf("spawn on %dx%d board: %w", boardWidth, boardHeight, ErrNoSpace)
	}

	for attempts := 0; attempts < spawnAttempts; attempts++ {
		idx := fs.rng.Intn(total)
		if _, ok := taken.Get(idx); !ok {
			return grid.CellAt(idx), nil
		}
	}

	// Crowded board: pick among the free cells directly.
	free := make([]int, 0, total-taken.Len())
	for idx := 0; idx < total; idx++ {
		if _, ok := taken.Get(idx); !ok {
			free = append(free, idx)
		}
	}
	return grid.CellAt(free[fs.rng.Intn(len(free))]), nil
}
