package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/huangsam/chakra/schema"
)

// ErrSignalGraph is returned when signal rules do not form a valid DAG.
var ErrSignalGraph = errors.New("invalid signal graph")

// evalEnv is what a signal rule sees while it is evaluated.
type evalEnv struct {
	t       []float64
	dt      float64
	signals map[schema.SignalName][]float64
}

// dep returns an already evaluated signal. Rules only ask for declared dependencies,
// which the topological order guarantees are present.
func (e *evalEnv) dep(name schema.SignalName) []float64 {
	return e.signals[name]
}

// signalRule produces one signal from the time vector and its dependencies.
type signalRule struct {
	name schema.SignalName
	deps []schema.SignalName
	eval func(env *evalEnv) []float64
}

// topoOrder sorts rules so that every rule comes after its dependencies.
// It is Kahn's algorithm; among ready rules the earliest declared one goes first,
// so the order is deterministic.
func topoOrder(rules []signalRule) ([]signalRule, error) {
	index := make(map[schema.SignalName]int, len(rules))
	for i, r := range rules {
		if _, dup := index[r.name]; dup {
			return nil, fmt.Errorf("%w: duplicate rule %s", ErrSignalGraph, r.name)
		}
		index[r.name] = i
	}

	indegree := make([]int, len(rules))
	dependents := make([][]int, len(rules))
	for i, r := range rules {
		for _, d := range r.deps {
			j, ok := index[d]
			if !ok {
				return nil, fmt.Errorf("%w: %s depends on unknown signal %s", ErrSignalGraph, r.name, d)
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	var ready []int
	for i := range rules {
		if indegree[i] == 0 {
			ready = append(ready, i)
		}
	}

	ordered := make([]signalRule, 0, len(rules))
	for len(ready) > 0 {
		// pick the earliest declared ready rule
		best := 0
		for k := 1; k < len(ready); k++ {
			if ready[k] < ready[best] {
				best = k
			}
		}
		i := ready[best]
		ready = append(ready[:best], ready[best+1:]...)
		ordered = append(ordered, rules[i])

		for _, j := range dependents[i] {
			indegree[j]--
			if indegree[j] == 0 {
				ready = append(ready, j)
			}
		}
	}

	if len(ordered) != len(rules) {
		var stuck []string
		for i, r := range rules {
			if indegree[i] > 0 {
				stuck = append(stuck, string(r.name))
			}
		}
		return nil, fmt.Errorf("%w: cycle among %s", ErrSignalGraph, strings.Join(stuck, ", "))
	}
	return ordered, nil
}
