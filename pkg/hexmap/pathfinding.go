// pkg/hexmap/pathfinding.go
package hexmap

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"
)

// StepCost returns the extra cost of entering a hex, or ok=false when the hex
// cannot be entered. Every step costs 1 plus the returned extra.
type StepCost func(h Hex) (extra int, ok bool)

// UniformCost lets every hex be entered at no extra cost.
func UniformCost(Hex) (int, bool) {
	return 0, true
}

// OnBoard restricts steps to hexes of hm at uniform cost.
func OnBoard(hm *HexMap) StepCost {
	return func(h Hex) (int, bool) {
		return 0, hm.IsPassable(h)
	}
}

// FieldOfMovement returns every hex reachable from origin within budget.
// The origin is always part of the result.
func FieldOfMovement(origin Hex, budget int, cost StepCost) mapset.Set[Hex] {
	if cost == nil {
		cost = UniformCost
	}
	result := mapset.New[Hex]()
	result.Put(origin)
	if budget <= 0 {
		return result
	}

	spent := map[Hex]int{origin: 0}
	frontier := []Hex{origin}
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		for _, next := range current.AllPossibleNeighbors() {
			extra, ok := cost(next)
			if !ok {
				continue
			}
			total := spent[current] + 1 + extra
			if total > budget {
				continue
			}
			if prev, seen := spent[next]; seen && prev <= total {
				continue
			}
			spent[next] = total
			result.Put(next)
			frontier = append(frontier, next)
		}
	}
	return result
}

// AStar находит кратчайший путь от start до goal, включая оба конца.
// ok is false when goal cannot be reached.
func AStar(start, goal Hex, cost StepCost) (path []Hex, ok bool) {
	if cost == nil {
		cost = UniformCost
	}
	if start == goal {
		return []Hex{start}, true
	}
	if _, passable := cost(goal); !passable {
		return nil, false
	}

	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Hex: start, Cost: 0, Parent: nil})
	costSoFar := map[Hex]int{start: 0}
	closed := make(map[Hex]bool)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Hex == goal {
			return reconstructPath(current), true
		}
		if closed[current.Hex] {
			continue
		}
		closed[current.Hex] = true

		for _, neighbor := range current.Hex.AllPossibleNeighbors() {
			extra, passable := cost(neighbor)
			if !passable {
				continue
			}
			newCost := costSoFar[current.Hex] + 1 + extra
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				priority := newCost + neighbor.Distance(goal)
				heap.Push(pq, &Node{Hex: neighbor, Cost: priority, Parent: current, order: pq.pushed})
				pq.pushed++
			}
		}
	}
	return nil, false // Нет пути
}

// PriorityQueue для A*
type PriorityQueue struct {
	nodes  []*Node
	pushed int
}

type Node struct {
	Hex    Hex
	Cost   int
	Parent *Node
	order  int
}

func (pq PriorityQueue) Len() int { return len(pq.nodes) }

// Ties are broken by insertion order so paths are deterministic.
func (pq PriorityQueue) Less(i, j int) bool {
	if pq.nodes[i].Cost != pq.nodes[j].Cost {
		return pq.nodes[i].Cost < pq.nodes[j].Cost
	}
	return pq.nodes[i].order < pq.nodes[j].order
}

func (pq PriorityQueue) Swap(i, j int) { pq.nodes[i], pq.nodes[j] = pq.nodes[j], pq.nodes[i] }

func (pq *PriorityQueue) Push(x any) {
	pq.nodes = append(pq.nodes, x.(*Node))
}

func (pq *PriorityQueue) Pop() any {
	old := pq.nodes
	n := len(old)
	item := old[n-1]
	pq.nodes = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Hex {
	var path []Hex
	for node != nil {
		path = append(path, node.Hex)
		node = node.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
