package main

import "github.com/OJ-Dabiri/Sudoku-AC3-Solver/cmd"

func main() {
	cmd.Execute()
}
