// internal/system/path.go
package system

import (
	"log"

	"go-hex-tactics/internal/component"
	"go-hex-tactics/internal/entity"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/pkg/hexmap"
)

// PathSystem plans a path on move confirmation and starts the unit moving.
type PathSystem struct {
	ecs       *entity.ECS
	board     *hexmap.HexMap
	confirmed *event.Reader[event.MoveTargetConfirmed]
}

func NewPathSystem(ecs *entity.ECS, board *hexmap.HexMap, queues *Queues) *PathSystem {
	return &PathSystem{
		ecs:       ecs,
		board:     board,
		confirmed: queues.MoveConfirmed.NewReader(),
	}
}

func (s *PathSystem) Update(deltaTime float64) {
	for _, ev := range s.confirmed.Read() {
		s.plan(ev)
	}
}

func (s *PathSystem) Skip() {
	s.confirmed.Skip()
}

// plan attaches Path and Moving to the unit. An unreachable target or a path
// without a single step leaves the unit where it is.
func (s *PathSystem) plan(ev event.MoveTargetConfirmed) {
	path, ok := hexmap.AStar(ev.From, ev.To, hexmap.OnBoard(s.board))
	if !ok {
		log.Printf("[PathSystem] No path from %v to %v", ev.From, ev.To)
		return
	}
	if len(path) < 2 {
		log.Printf("[PathSystem] Path %v has no steps, move ignored", path)
		return
	}
	dir, ok := path[0].NeighborDirection(path[1])
	if !ok {
		log.Printf("[PathSystem] %v and %v are not adjacent, move ignored", path[0], path[1])
		return
	}
	s.ecs.SetPath(ev.Unit, path[1:])
	s.ecs.SetMoving(ev.Unit, component.Moving{Towards: path[1], Direction: dir})
	log.Printf("[PathSystem] Unit %d path: %v", ev.Unit, path)
}
