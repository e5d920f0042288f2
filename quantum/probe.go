package quantum

import (
	"fmt"
	"math/rand/v2"
)

// Probe circuit qubit assignments.
const (
	probeQubit  = 0
	objectQubit = 1
)

// NewProbeCircuit builds the 2-qubit Elitzur-Vaidman round trip for one
// cell. The topology never changes; presence is encoded by the conditional
// initial X on the object qubit. With the object absent the probe's
// superposition interferes back to |0⟩ perfectly. With the object present
// the Hadamard-sandwiched CNOT sees the object in the |−⟩ eigenstate and
// kicks a relative phase back onto the probe, which then reads 1 — every
// time, without the object qubit ever being measured.
func NewProbeCircuit(occupied bool) *Circuit {
	c := &Circuit{NumQubits: 2, Measured: []int{probeQubit}}
	if occupied {
		c.AddGate(PauliX, objectQubit)
	}
	c.AddGate(Hadamard, probeQubit)
	c.AddGate(Hadamard, objectQubit)
	c.AddGate(ControlledNot, objectQubit, probeQubit)
	c.AddGate(Hadamard, objectQubit)
	c.AddGate(Hadamard, probeQubit)
	return c
}

// ProbeResult is the decoded answer for a single-cell ping plus the raw
// per-shot probe readouts that produced it.
type ProbeResult struct {
	Occupied bool
	Outcomes []int
}

// RunProbe evaluates the probe circuit shots times and decodes the readout
// list. A cell is reported occupied if any shot flips the probe; an empty
// cell returns 0 on every shot. Both branches of this particular
// interaction gate are deterministic (flip probability 1), but the
// multi-shot contract is kept so callers can trade shots for confidence
// against any interaction encoding.
func RunProbe(occupied bool, shots int, src rand.Source) (ProbeResult, error) {
	if shots < 1 {
		return ProbeResult{}, fmt.Errorf("quantum: probe needs at least 1 shot, got %d", shots)
	}
	c := NewProbeCircuit(occupied)
	outcomes := make([]int, 0, shots)
	for range shots {
		bits, err := c.Run(src)
		if err != nil {
			return ProbeResult{}, err
		}
		outcomes = append(outcomes, bits[0])
	}
	hit, err := DecodeProbe(outcomes)
	if err != nil {
		return ProbeResult{}, err
	}
	return ProbeResult{Occupied: hit, Outcomes: outcomes}, nil
}
