package quantum

import (
	"fmt"
	"math/rand/v2"
)

// GateKind identifies one of the five unitaries the engine supports.
type GateKind int

const (
	Hadamard GateKind = iota
	PauliX
	ControlledNot
	ControlledPhase
	Swap
)

// String returns the conventional short name for the gate kind.
func (k GateKind) String() string {
	switch k {
	case Hadamard:
		return "H"
	case PauliX:
		return "X"
	case ControlledNot:
		return "CX"
	case ControlledPhase:
		return "CP"
	case Swap:
		return "SWAP"
	}
	return "?"
}

// Gate is a single unitary placed on the circuit. Control is -1 for
// single-qubit gates; Theta is only meaningful for ControlledPhase.
// Gates are immutable once appended.
type Gate struct {
	Kind    GateKind
	Target  int
	Control int
	Theta   float64
}

// Circuit is an ordered gate sequence over a fixed qubit count plus the set
// of qubits read out at the end. Both circuit families in this package have
// fixed topology; only gate parameters vary with the occupancy input.
type Circuit struct {
	NumQubits int
	Gates     []Gate
	Measured  []int
}

// AddGate appends a parameter-free gate. The optional control qubit applies
// to ControlledNot and Swap.
func (c *Circuit) AddGate(kind GateKind, target int, control ...int) {
	ctrl := -1
	if len(control) > 0 {
		ctrl = control[0]
	}
	c.Gates = append(c.Gates, Gate{Kind: kind, Target: target, Control: ctrl})
}

// AddPhaseGate appends a controlled-phase gate with angle theta.
func (c *Circuit) AddPhaseGate(theta float64, control, target int) {
	c.Gates = append(c.Gates, Gate{Kind: ControlledPhase, Target: target, Control: control, Theta: theta})
}

// Run evaluates the circuit once: a fresh |0…0⟩ register is allocated,
// every gate is applied in order, and the measured qubits are sampled
// exactly once. Nothing persists between evaluations, so concurrent runs
// need no coordination as long as each gets its own random source.
func (c *Circuit) Run(src rand.Source) ([]int, error) {
	sv, err := NewStateVector(c.NumQubits)
	if err != nil {
		return nil, err
	}
	for _, g := range c.Gates {
		if err := sv.Apply(g); err != nil {
			return nil, fmt.Errorf("apply %s: %w", g.Kind, err)
		}
	}
	return sv.Sample(src, c.Measured)
}
