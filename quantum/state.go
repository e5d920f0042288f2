// Package quantum simulates the two fixed circuit families behind the war
// room's sonar: a 2-qubit interaction-free probe and a 7-qubit
// phase-estimation counter. States are plain complex amplitude vectors;
// measurement sampling takes an injectable random source so evaluations are
// reproducible and safe to run in parallel.
package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"
)

type Complex = complex128

// normTolerance is how far the total probability may drift from 1 before
// sampling refuses the register as corrupt.
const normTolerance = 1e-6

// StateVector holds the amplitudes of an n-qubit register, one entry per
// computational basis state. Index bit q is qubit q's value.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

// NewStateVector returns a register initialized to |0…0⟩.
func NewStateVector(numQubits int) (*StateVector, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQubitCount, numQubits)
	}
	amps := make([]Complex, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}, nil
}

// Apply mutates the register in place with the given gate. Amplitude-mixing
// gates (H, X) are renormalized afterwards to absorb floating-point drift;
// the phase-only and permutation-free controlled gates don't need it.
func (s *StateVector) Apply(g Gate) error {
	switch g.Kind {
	case Hadamard:
		s.applyH(g.Target)
		s.renormalize()
	case PauliX:
		s.applyX(g.Target)
		s.renormalize()
	case ControlledNot:
		s.applyCX(g.Control, g.Target)
	case ControlledPhase:
		s.applyCP(g.Control, g.Target, g.Theta)
	case Swap:
		s.applySwap(g.Control, g.Target)
	default:
		return fmt.Errorf("quantum: unknown gate kind %d", g.Kind)
	}
	return nil
}

func (s *StateVector) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.Amplitudes)
	bit := 1 << q
	newAmps := make([]Complex, n)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			newAmps[i] = hFactor * (s.Amplitudes[i] + s.Amplitudes[j])
			newAmps[j] = hFactor * (s.Amplitudes[i] - s.Amplitudes[j])
		}
	}
	s.Amplitudes = newAmps
}

func (s *StateVector) applyX(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// applyCP multiplies every basis state with both the control and target bits
// set by e^{iθ}. Magnitudes are untouched.
func (s *StateVector) applyCP(control, target int, theta float64) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	phase := cmplx.Exp(complex(0, theta))
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit != 0 {
			s.Amplitudes[i] *= phase
		}
	}
}

func (s *StateVector) applySwap(q1, q2 int) {
	n := len(s.Amplitudes)
	bit1 := 1 << q1
	bit2 := 1 << q2
	for i := 0; i < n; i++ {
		if i&bit1 != 0 && i&bit2 == 0 {
			j := (i & ^bit1) | bit2
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// Norm returns the total probability of the register.
func (s *StateVector) Norm() float64 {
	total := 0.0
	for _, amp := range s.Amplitudes {
		total += real(amp * cmplx.Conj(amp))
	}
	return total
}

func (s *StateVector) renormalize() {
	norm := math.Sqrt(s.Norm())
	if norm == 0 {
		return
	}
	for i := range s.Amplitudes {
		s.Amplitudes[i] /= complex(norm, 0)
	}
}

// Sample draws one basis state from the register's probability distribution
// and returns the bit values of the measured qubits, in the given order.
// The register is checked against normTolerance first; a failure there is an
// internal invariant violation in gate construction.
func (s *StateVector) Sample(src rand.Source, measured []int) ([]int, error) {
	n := len(s.Amplitudes)
	probs := make([]float64, n)
	total := 0.0
	for i, amp := range s.Amplitudes {
		p := real(amp * cmplx.Conj(amp))
		probs[i] = p
		total += p
	}
	if math.Abs(total-1) > normTolerance {
		return nil, fmt.Errorf("%w: total probability %g", ErrUnnormalizedState, total)
	}

	w := sampleuv.NewWeighted(probs, src)
	idx, ok := w.Take()
	if !ok {
		return nil, fmt.Errorf("%w: empty distribution", ErrUnnormalizedState)
	}

	bits := make([]int, len(measured))
	for i, q := range measured {
		if idx&(1<<q) != 0 {
			bits[i] = 1
		}
	}
	return bits, nil
}
