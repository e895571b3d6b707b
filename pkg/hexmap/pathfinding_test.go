package hexmap

import "testing"

func TestFieldOfMovement_ZeroBudget(t *testing.T) {
	origin := Hex{1, 0}
	got := FieldOfMovement(origin, 0, nil)
	if got.Size() != 1 || !got.Has(origin) {
		t.Fatalf("budget 0: got %d hexes, want exactly the origin", got.Size())
	}
}

func TestFieldOfMovement_Sizes(t *testing.T) {
	// Unobstructed field of radius n holds 3n(n+1)+1 hexes.
	for budget := 0; budget <= 5; budget++ {
		got := FieldOfMovement(Hex{}, budget, UniformCost)
		want := 3*budget*(budget+1) + 1
		if got.Size() != want {
			t.Errorf("budget %d: got %d hexes, want %d", budget, got.Size(), want)
		}
	}
}

func TestFieldOfMovement_Monotonic(t *testing.T) {
	board := NewHexagon(Hex{}, 5)
	origin := Hex{1, 0}
	prev := FieldOfMovement(origin, 0, OnBoard(board))
	for budget := 1; budget <= 8; budget++ {
		cur := FieldOfMovement(origin, budget, OnBoard(board))
		prev.Each(func(h Hex) {
			if !cur.Has(h) {
				t.Errorf("budget %d lost %v reachable with budget %d", budget, h, budget-1)
			}
		})
		prev = cur
	}
}

func TestFieldOfMovement_RespectsBudget(t *testing.T) {
	origin := Hex{1, 0}
	got := FieldOfMovement(origin, 4, nil)
	got.Each(func(h Hex) {
		if h.Distance(origin) > 4 {
			t.Errorf("%v is %d steps away, outside budget 4", h, h.Distance(origin))
		}
	})
}

func TestFieldOfMovement_Obstacles(t *testing.T) {
	wall := map[Hex]bool{{1, 0}: true, {0, 1}: true, {1, -1}: true}
	cost := func(h Hex) (int, bool) { return 0, !wall[h] }
	got := FieldOfMovement(Hex{}, 1, cost)
	for h := range wall {
		if got.Has(h) {
			t.Errorf("blocked hex %v should not be reachable", h)
		}
	}
	if got.Size() != 4 {
		t.Errorf("got %d hexes, want origin plus 3 open neighbors", got.Size())
	}
}

func TestAStar_StraightLine(t *testing.T) {
	board := NewHexagon(Hex{}, 5)
	path, ok := AStar(Hex{1, 0}, Hex{3, 0}, OnBoard(board))
	if !ok {
		t.Fatal("expected a path")
	}
	want := []Hex{{1, 0}, {2, 0}, {3, 0}}
	if len(path) != len(want) {
		t.Fatalf("path %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path %v, want %v", path, want)
		}
	}
}

func TestAStar_ShortestAndContiguous(t *testing.T) {
	board := NewHexagon(Hex{}, 5)
	pairs := [][2]Hex{
		{{-5, 0}, {5, 0}},
		{{0, -5}, {-3, 5}},
		{{2, 2}, {-4, 1}},
	}
	for _, p := range pairs {
		path, ok := AStar(p[0], p[1], OnBoard(board))
		if !ok {
			t.Fatalf("%v -> %v: no path", p[0], p[1])
		}
		if len(path)-1 != p[0].Distance(p[1]) {
			t.Errorf("%v -> %v: %d steps, want %d", p[0], p[1], len(path)-1, p[0].Distance(p[1]))
		}
		for i := 1; i < len(path); i++ {
			if _, adjacent := path[i-1].NeighborDirection(path[i]); !adjacent {
				t.Fatalf("%v -> %v: step %v -> %v is not adjacent", p[0], p[1], path[i-1], path[i])
			}
			if !board.Contains(path[i]) {
				t.Fatalf("path leaves the board at %v", path[i])
			}
		}
	}
}

func TestAStar_Unreachable(t *testing.T) {
	board := NewHexagon(Hex{}, 2)
	if _, ok := AStar(Hex{}, Hex{7, 0}, OnBoard(board)); ok {
		t.Error("goal off the board must not be reachable")
	}

	island := NewHexMap(Hex{0, 0}, Hex{1, 0}, Hex{4, 0})
	if _, ok := AStar(Hex{0, 0}, Hex{4, 0}, OnBoard(island)); ok {
		t.Error("disconnected goal must not be reachable")
	}
}

func TestAStar_SameHex(t *testing.T) {
	path, ok := AStar(Hex{2, 2}, Hex{2, 2}, nil)
	if !ok || len(path) != 1 {
		t.Errorf("start == goal: got %v, %v", path, ok)
	}
}
