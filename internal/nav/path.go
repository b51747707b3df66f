// Package nav computes shortest routes across the store grid.
//
// The grid is an unweighted 4-connected graph, so breadth-first search
// yields a route with the minimum number of unit moves. Neighbors are
// always expanded in the same order (right, left, down, up) so that ties
// between equally short routes resolve deterministically.
package nav

import (
	"strings"

	"github.com/pragadeesh891/trolley/internal/store"
)

// Move is a single unit step of the trolley.
type Move string

const (
	MoveRight Move = "right"
	MoveLeft  Move = "left"
	MoveDown  Move = "down"
	MoveUp    Move = "up"
)

// neighbor expansion order fixes which of several shortest routes wins.
var moves = []struct {
	dRow, dCol int
	dir        Move
}{
	{0, 1, MoveRight},
	{0, -1, MoveLeft},
	{1, 0, MoveDown},
	{-1, 0, MoveUp},
}

// ShortestPath returns the move sequence from start to goal.
//
// An empty result means either start == goal or the goal is unreachable;
// on a rectangular grid without obstacles the latter cannot happen, but
// callers that need to distinguish the two must compare the cells
// themselves. The function is pure and safe for concurrent use.
func ShortestPath(grid store.Grid, start, goal store.Cell) []Move {
	if start == goal {
		return nil
	}
	if !grid.Contains(start) || !grid.Contains(goal) {
		return nil
	}

	type node struct {
		cell store.Cell
		path []Move
	}

	queue := []node{{cell: start}}
	visited := make(map[store.Cell]bool, grid.Rows*grid.Cols)
	visited[start] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, m := range moves {
			next := store.Cell{Row: cur.cell.Row + m.dRow, Col: cur.cell.Col + m.dCol}
			if !grid.Contains(next) || visited[next] {
				continue
			}
			path := append(append(make([]Move, 0, len(cur.path)+1), cur.path...), m.dir)
			if next == goal {
				return path
			}
			visited[next] = true
			queue = append(queue, node{cell: next, path: path})
		}
	}

	return nil
}

// Describe renders a route the way the trolley announces it,
// e.g. "right → down". An empty route reads "you are already there".
func Describe(route []Move) string {
	if len(route) == 0 {
		return "you are already there"
	}
	parts := make([]string, len(route))
	for i, m := range route {
		parts[i] = string(m)
	}
	return strings.Join(parts, " → ")
}
