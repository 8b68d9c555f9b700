package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Survives reports whether a live cell with the given number of live neighbors stays alive
func Survives(neighbors int) bool {
	return ApplyConwayRules(neighbors, true)
}

// Born reports whether a dead cell with the given number of live neighbors comes alive
func Born(neighbors int) bool {
	return ApplyConwayRules(neighbors, false)
}
