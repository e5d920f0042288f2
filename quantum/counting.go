package quantum

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Counting circuit dimensions: 3 counting qubits C0..C2 (qubits 0..2,
// C0 least significant in the register index) followed by 4 target qubits
// T0..T3 (qubits 3..6), one per cell of the scanned line.
const (
	NumCountingQubits = 3
	MaxTargets        = 4
)

// NewCountingCircuit builds the fixed 7-qubit phase-estimation counter for
// an occupancy pattern of up to MaxTargets cells.
//
// Each occupied target starts in |1⟩ and receives a controlled phase from
// every counting qubit: Ci contributes π/2^i (C0→π, C1→π/2, C2→π/4), so one
// occupied target deposits exactly one unit of binary-weighted phase across
// the counting register and the total imprinted phase is count/8 of a full
// turn. The inverse Fourier transform then collapses the counting register
// onto the basis state |count⟩ with probability 1.
func NewCountingCircuit(pattern []bool) (*Circuit, error) {
	if len(pattern) > MaxTargets {
		return nil, fmt.Errorf("%w: %d targets exceed the %d-target register",
			ErrInvalidQubitCount, len(pattern), MaxTargets)
	}

	c := &Circuit{
		NumQubits: NumCountingQubits + MaxTargets,
		Measured:  []int{0, 1, 2},
	}

	for t, occ := range pattern {
		if occ {
			c.AddGate(PauliX, NumCountingQubits+t)
		}
	}
	for q := 0; q < NumCountingQubits; q++ {
		c.AddGate(Hadamard, q)
	}
	for i := 0; i < NumCountingQubits; i++ {
		theta := math.Pi / float64(int(1)<<i)
		for t, occ := range pattern {
			if occ {
				c.AddPhaseGate(theta, i, NumCountingQubits+t)
			}
		}
	}

	appendInverseQFT(c, NumCountingQubits)
	return c, nil
}

// appendInverseQFT appends the inverse discrete Fourier transform over
// qubits [0, n): reverse the qubit order, then for each qubit from most to
// least significant apply the inverse-phase rotations from every later
// qubit (angle halved per step) followed by a Hadamard. A register holding
// pure phase k/N on these qubits collapses to |k⟩ afterwards.
func appendInverseQFT(c *Circuit, n int) {
	for i := 0; i < n/2; i++ {
		c.AddGate(Swap, n-i-1, i)
	}
	for i := n - 1; i >= 0; i-- {
		for j := n - 1; j > i; j-- {
			c.AddPhaseGate(-math.Pi/float64(int(1)<<(j-i)), j, i)
		}
		c.AddGate(Hadamard, i)
	}
}

// CountResult is the decoded ship count for a line scan plus the raw
// histogram of 3-bit outcomes over all shots.
type CountResult struct {
	Count     int
	Histogram map[int]int
}

// RunCount evaluates the counting circuit shots times and returns the modal
// outcome. One ideal evaluation is already exact — extra shots only buy
// confidence — so the histogram normally holds a single entry.
func RunCount(pattern []bool, shots int, src rand.Source) (CountResult, error) {
	if shots < 1 {
		return CountResult{}, fmt.Errorf("quantum: counting scan needs at least 1 shot, got %d", shots)
	}
	c, err := NewCountingCircuit(pattern)
	if err != nil {
		return CountResult{}, err
	}

	hist := make(map[int]int)
	for range shots {
		bits, err := c.Run(src)
		if err != nil {
			return CountResult{}, err
		}
		k, err := DecodeCount(bits)
		if err != nil {
			return CountResult{}, err
		}
		hist[k]++
	}

	best, bestN := 0, -1
	for k, n := range hist {
		if n > bestN || (n == bestN && k < best) {
			best, bestN = k, n
		}
	}
	return CountResult{Count: best, Histogram: hist}, nil
}
