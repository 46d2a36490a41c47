package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

	neighbors == 2: the cell keeps its state
	neighbors == 3: the cell is alive (birth or survival)
	otherwise:      the cell is dead (starvation or overcrowding)
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
