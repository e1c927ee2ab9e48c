package space

import (
	"context"

	"github.com/formalcore/tvmc/bv"
	"github.com/formalcore/tvmc/precision"
	"github.com/formalcore/tvmc/system"
)

// StateID is a dense, positive integer identifying an allocated state
// node. The zero value is never a valid StateID.
type StateID uint64

// NodeID models a graph node that may be the fixed START node or an
// allocated state. The zero value is START (spec.md §4.5: "NodeId =
// Option<StateId> models START as the absent case").
type NodeID uint64

// IsStart reports whether n is the fixed START node.
func (n NodeID) IsStart() bool { return n == 0 }

// StateID converts n to a StateID, failing for START.
func (n NodeID) StateID() (StateID, error) {
	if n.IsStart() {
		return 0, ErrIsStart
	}

	return StateID(n), nil
}

// NodeOf returns the NodeID corresponding to id.
func NodeOf(id StateID) NodeID { return NodeID(id) }

// Node is one allocated state node: its abstract state, a possible-panic
// flag, its depth (distance in steps from START), adjacency, and whether
// its successors have been fully enumerated under the current precision.
type Node struct {
	ID     StateID
	State  system.State
	Panic  bv.Value
	Depth  int
	Preds  []NodeID
	Succs  []NodeID
	Closed bool
}

// Space is the abstract state-space graph of spec.md §4.3.
type Space struct {
	nodes       []*Node // nodes[i] has StateID i+1
	byKey       map[string]StateID
	startSuccs  []NodeID
	startByKey  map[string]StateID
	startClosed bool
}

// New returns an empty Space with only the (not yet expanded) START
// node.
func New() *Space {
	return &Space{
		byKey:      make(map[string]StateID),
		startByKey: make(map[string]StateID),
	}
}

// StartSuccessors returns START's current successor nodes, in
// insertion order.
func (s *Space) StartSuccessors() []NodeID {
	out := make([]NodeID, len(s.startSuccs))
	copy(out, s.startSuccs)

	return out
}

// Node returns the node for id, or nil if id has not been allocated.
func (s *Space) Node(id StateID) *Node {
	if id == 0 || int(id) > len(s.nodes) {
		return nil
	}

	return s.nodes[id-1]
}

// Len returns the number of allocated state nodes.
func (s *Space) Len() int { return len(s.nodes) }

// findOrCreate looks up st by meta-key, allocating a new node at depth
// if absent. Returns the node and whether it was newly created.
func (s *Space) findOrCreate(st system.State, panic_ bv.Value, depth int) (*Node, bool) {
	key := st.MetaKey()
	if id, ok := s.byKey[key]; ok {
		return s.nodes[id-1], false
	}

	id := StateID(len(s.nodes) + 1)
	n := &Node{ID: id, State: st, Panic: panic_, Depth: depth}
	s.nodes = append(s.nodes, n)
	s.byKey[key] = id

	return n, true
}

func (s *Space) addEdge(from, to NodeID) {
	if from.IsStart() {
		key := s.nodes[to.mustState()-1].State.MetaKey()
		if _, ok := s.startByKey[key]; ok {
			return
		}
		s.startByKey[key] = to.mustState()
		s.startSuccs = append(s.startSuccs, to)
		toNode := s.Node(to.mustState())
		toNode.Preds = append(toNode.Preds, from)

		return
	}

	fromNode := s.Node(from.mustState())
	for _, existing := range fromNode.Succs {
		if existing == to {
			return
		}
	}
	fromNode.Succs = append(fromNode.Succs, to)
	toNode := s.Node(to.mustState())
	toNode.Preds = append(toNode.Preds, from)
}

func (n NodeID) mustState() StateID {
	id, err := n.StateID()
	if err != nil {
		panic(err)
	}

	return id
}

// Expand enumerates, for every node still open (including START itself,
// on first call), the distinct abstract successors obtainable under the
// current precision store, allocating new nodes and edges as needed.
func (s *Space) Expand(ctx context.Context, sys system.System, store *precision.Store) error {
	inputShape, _ := sys.Shape()

	if !s.startClosed {
		if err := ctx.Err(); err != nil {
			return err
		}
		inputs, err := enumerateInputs(inputShape, store.InitMark())
		if err != nil {
			return err
		}
		for _, in := range inputs {
			res, err := sys.Init(in)
			if err != nil {
				return err
			}
			n, _ := s.findOrCreate(res.State, res.Panic, 0)
			s.addEdge(NodeID(0), NodeOf(n.ID))
		}
		s.startClosed = true
	}

	for i := 0; i < len(s.nodes); i++ {
		node := s.nodes[i]
		if node.Closed {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		stepMark := store.StepMark(node.Depth)
		inputs, err := enumerateInputs(inputShape, stepMark)
		if err != nil {
			return err
		}
		for _, in := range inputs {
			res, err := sys.Next(node.State, in)
			if err != nil {
				return err
			}
			child, _ := s.findOrCreate(res.State, res.Panic, node.Depth+1)
			s.addEdge(NodeOf(node.ID), NodeOf(child.ID))
		}
		node.Closed = true
	}

	return nil
}

// ReopenAfterRefine marks nodes for re-expansion after a precision
// refinement: if initChanged, START is reopened; every node whose Depth
// is in changedSteps is reopened. Prior successors are untouched (they
// remain reachable, per spec.md §4.3); Expand will only add to them.
func (s *Space) ReopenAfterRefine(initChanged bool, changedSteps map[int]bool) {
	if initChanged {
		s.startClosed = false
	}
	for _, n := range s.nodes {
		if changedSteps[n.Depth] {
			n.Closed = false
		}
	}
}
