package picker

import (
	"reflect"
	"sort"
)

// State is a set of interaction state flags of a UI element.
type State uint

const (
	StateNormal      State = 0
	StateHighlighted State = 1 << 0
	StateDisabled    State = 1 << 1
	StateSelected    State = 1 << 2
	StateFocused     State = 1 << 3
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHighlighted:
		return "highlighted"
	case StateDisabled:
		return "disabled"
	case StateSelected:
		return "selected"
	case StateFocused:
		return "focused"
	default:
		return "combined"
	}
}

// StatePicker maps interaction states to pickers so one property can vary
// by element state as well as by theme. It only stores pickers; choosing
// the state to resolve is up to the element.
type StatePicker[T any] struct {
	values map[State]Resolvable[T]
}

// NewStatePicker returns nil when p is nil.
func NewStatePicker[T any](p Resolvable[T], state State) *StatePicker[T] {
	if isNil(p) {
		return nil
	}
	return EmptyStatePicker[T]().SetPicker(p, state)
}

func EmptyStatePicker[T any]() *StatePicker[T] {
	return &StatePicker[T]{values: make(map[State]Resolvable[T])}
}

// SetPicker stores p for state and returns the receiver for chaining.
// A nil p removes the state. On a nil receiver it does nothing and returns
// nil, so a chain started by a failed NewStatePicker stays nil.
func (s *StatePicker[T]) SetPicker(p Resolvable[T], state State) *StatePicker[T] {
	if s == nil {
		return nil
	}
	if isNil(p) {
		delete(s.values, state)
		return s
	}
	if s.values == nil {
		s.values = make(map[State]Resolvable[T])
	}
	s.values[state] = p
	return s
}

func (s *StatePicker[T]) Picker(state State) (Resolvable[T], bool) {
	if s == nil {
		return nil, false
	}
	p, ok := s.values[state]
	return p, ok
}

// States returns the configured states in ascending order.
func (s *StatePicker[T]) States() []State {
	if s == nil {
		return nil
	}
	states := make([]State, 0, len(s.values))
	for state := range s.values {
		states = append(states, state)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

func (s *StatePicker[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// typed nil pointers inside the interface count as nil too
func isNil[T any](p Resolvable[T]) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
