package rules

const (
	// BirthNeighbors is the live neighbor count that brings any cell to life
	BirthNeighbors = 3
	// SurviveNeighbors additionally keeps an already live cell alive
	SurviveNeighbors = 2
)

/*
ApplyConwayRules reports whether a cell is alive in the next generation, given
how many of its eight neighbors are alive now and whether it is alive itself.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == BirthNeighbors || (alive && neighbors == SurviveNeighbors)
}
