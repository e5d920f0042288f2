package quantum

import "fmt"

// DecodeProbe maps a multi-shot probe readout list to a presence verdict:
// occupied if any shot flipped the probe, empty only if every shot returned
// 0. Bits outside {0,1} mean the engine or circuit construction is broken.
func DecodeProbe(outcomes []int) (bool, error) {
	if len(outcomes) == 0 {
		return false, fmt.Errorf("%w: no probe outcomes", ErrDecode)
	}
	hit := false
	for i, b := range outcomes {
		if b != 0 && b != 1 {
			return false, fmt.Errorf("%w: probe shot %d read %d", ErrDecode, i, b)
		}
		if b == 1 {
			hit = true
		}
	}
	return hit, nil
}

// DecodeCount maps the 3-bit counting readout to the ship count. bits holds
// the measured values of C0, C1, C2 in that order; C0 carries the most
// significant bit of the result (the inverse transform's qubit reversal
// puts it there). Counts above MaxTargets cannot arise from a correct
// circuit and are rejected.
func DecodeCount(bits []int) (int, error) {
	if len(bits) != NumCountingQubits {
		return 0, fmt.Errorf("%w: expected %d counting bits, got %d", ErrDecode, NumCountingQubits, len(bits))
	}
	k := 0
	for i, b := range bits {
		if b != 0 && b != 1 {
			return 0, fmt.Errorf("%w: counting bit %d read %d", ErrDecode, i, b)
		}
		k = k<<1 | b
	}
	if k > MaxTargets {
		return 0, fmt.Errorf("%w: outcome %d exceeds the %d-target register", ErrDecode, k, MaxTargets)
	}
	return k, nil
}
