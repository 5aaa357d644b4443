package navigation

// Observer is notified of every decision a Gate makes.
type Observer func(target Target, action Action)

// Gate binds a State to a set of observers so a host can install the guard once.
type Gate struct {
	state     *State
	observers []Observer
}

// Option configures a Gate.
type Option func(*Gate)

// WithObserver registers an observer. Observers run in registration order.
func WithObserver(o Observer) Option {
	return func(g *Gate) {
		if o != nil {
			g.observers = append(g.observers, o)
		}
	}
}

// NewGate creates a gate over state. A nil state is treated as Uninitialized.
func NewGate(state *State, opts ...Option) *Gate {
	if state == nil {
		state = NewState(false)
	}
	g := &Gate{state: state}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// State returns the state the gate consults.
func (g *Gate) State() *State {
	return g.state
}

// Check evaluates the guard for target and notifies observers.
func (g *Gate) Check(target Target) Action {
	action := Guard(target, g.state)
	for _, o := range g.observers {
		o(target, action)
	}
	return action
}

// Before is Check followed by exactly one call on next.
func (g *Gate) Before(target Target, next Continuation) Action {
	action := g.Check(target)
	dispatch(action, next)
	return action
}
