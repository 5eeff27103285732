package solver

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/splitgrow/core"
)

// result classifies how a single-topology search ended without error.
type result int

const (
	resultExhausted result = iota // queue drained, goal unreachable
	resultFound
	resultCapped // MaxIterations hit
	resultBudget // MaxTotalIterations hit
)

// state is one node of the reverse search tree.
type state struct {
	g      *core.Graph
	parent *state // nil for the input configuration
	depth  int
}

// path returns the graphs from s back to the root. Because the search runs
// backwards, this is forward construction order.
func (s *state) path() []*core.Graph {
	out := make([]*core.Graph, 0, s.depth+1)
	for cur := s; cur != nil; cur = cur.parent {
		out = append(out, cur.g)
	}

	return out
}

// walker encapsulates the mutable BFS state of one topology.
type walker struct {
	opts     *Options
	log      logrus.FieldLogger
	stats    *Stats
	queue    *linkedlistqueue.Queue
	visited  map[string]struct{}
	expanded int
}

func newWalker(o *Options, log logrus.FieldLogger, stats *Stats) *walker {
	return &walker{
		opts:    o,
		log:     log,
		stats:   stats,
		queue:   linkedlistqueue.New(),
		visited: make(map[string]struct{}),
	}
}

// isGoal reports whether g is a lone white node.
func isGoal(g *core.Graph) bool {
	return g.Len() == 1 && g.WhiteCount() == 1
}

// search runs BFS backwards from start until the goal, a budget, or an empty
// queue. The only error it returns is the context's.
func (w *walker) search(start *core.Graph) (*state, result, error) {
	w.enqueue(&state{g: start})
	for !w.queue.Empty() {
		if err := w.opts.Ctx.Err(); err != nil {
			return nil, resultExhausted, err
		}
		if w.expanded >= w.opts.MaxIterations {
			return nil, resultCapped, nil
		}
		if w.opts.MaxTotalIterations > 0 && w.stats.Expansions >= w.opts.MaxTotalIterations {
			return nil, resultBudget, nil
		}

		s := w.dequeue()
		if isGoal(s.g) {
			return s, resultFound, nil
		}
		for _, prev := range s.g.Predecessors() {
			w.enqueue(&state{g: prev, parent: s, depth: s.depth + 1})
		}
	}

	return nil, resultExhausted, nil
}

// enqueue adds s unless an equivalent state was already seen.
func (w *walker) enqueue(s *state) {
	key := s.g.StateKey()
	if _, ok := w.visited[key]; ok {
		return
	}
	w.visited[key] = struct{}{}
	w.queue.Enqueue(s)
}

// dequeue pops the next state, counts the expansion and fires OnExpand.
func (w *walker) dequeue() *state {
	v, _ := w.queue.Dequeue()
	s := v.(*state)
	w.expanded++
	w.stats.Expansions++
	if w.stats.Expansions%progressEvery == 0 {
		w.log.WithField("expansions", w.stats.Expansions).
			WithField("queued", w.queue.Size()).
			WithField("depth", s.depth).
			Debug("solver progress")
	}
	w.opts.OnExpand(s.depth, s.g)

	return s
}
