package match

import (
	"errors"
	"math/rand/v2"

	"github.com/VoxDroid/mealr/internal/catalog"
)

// ErrEmptyCatalog is returned when there is nothing to pick from.
var ErrEmptyCatalog = errors.New("catalog is empty")

// Random picks one item uniformly. A nil rng uses the package-level source.
func Random(c *catalog.Catalog, rng *rand.Rand) (catalog.Entry, error) {
	n := c.Len()
	if n == 0 {
		return catalog.Entry{}, ErrEmptyCatalog
	}
	var i int
	if rng == nil {
		i = rand.IntN(n)
	} else {
		i = rng.IntN(n)
	}
	return c.At(i), nil
}
