package core

// Graph identifies which navigation graph the consumer should render.
type Graph int

const (
	GraphLoading Graph = iota
	GraphUnauthenticated
	GraphAuthenticated
)

func (g Graph) String() string {
	switch g {
	case GraphLoading:
		return "loading"
	case GraphUnauthenticated:
		return "unauthenticated"
	case GraphAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Decide maps a session snapshot to a navigation graph.
func Decide(s State) Graph {
	switch {
	case s.Loading:
		return GraphLoading
	case s.Authenticated():
		return GraphAuthenticated
	default:
		return GraphUnauthenticated
	}
}

// Gate chooses between the authenticated and unauthenticated navigation
// graphs based on the manager's session state.
type Gate struct {
	manager *Manager
}

func NewGate(m *Manager) *Gate {
	return &Gate{manager: m}
}

// Current returns the graph for the present session state.
func (g *Gate) Current() Graph {
	return Decide(g.manager.State())
}

// Watch emits the graph for every session transition, suppressing
// consecutive duplicates. The returned func stops watching.
func (g *Gate) Watch() (<-chan Graph, func()) {
	states, cancel := g.manager.Subscribe()
	out := make(chan Graph, 8)

	go func() {
		defer close(out)
		var last Graph = -1
		for s := range states {
			graph := Decide(s)
			if graph == last {
				continue
			}
			last = graph
			select {
			case out <- graph:
			default:
			}
		}
	}()

	return out, cancel
}
