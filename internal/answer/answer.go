package answer

import (
	"fmt"
	"strconv"
	"strings"
)

// #region string
// String returns the display label. Out-of-range values print as their integer.
func (a Answer) String() string {
	switch a {
	case No:
		return "NO"
	case Confused:
		return "Confused"
	case Yes:
		return "YES"
	default:
		return strconv.Itoa(int(a))
	}
}

// Valid reports whether a is one of No, Confused or Yes.
func (a Answer) Valid() bool {
	return a >= No && a <= Yes
}

// #endregion string

// #region parse
// Parse reads a single integer answer. It does not check the range;
// callers decide whether out-of-range values are acceptable.
func Parse(s string) (Answer, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse answer %q: %w", s, err)
	}
	return Answer(n), nil
}

// FromInts builds a vector from five raw integers.
func FromInts(q1, q2, q3, q4, q5 int) Vector {
	return Vector{Answer(q1), Answer(q2), Answer(q3), Answer(q4), Answer(q5)}
}

// Ints returns the raw integers, used for JSON encoding.
func (v Vector) Ints() []int {
	out := make([]int, len(v))
	for i, a := range v {
		out[i] = int(a)
	}
	return out
}

// VectorFromInts is the inverse of Ints. It fails unless exactly five values are given.
func VectorFromInts(vals []int) (Vector, error) {
	var v Vector
	if len(vals) != len(v) {
		return v, fmt.Errorf("expected %d answers, got %d", len(v), len(vals))
	}
	for i, n := range vals {
		v[i] = Answer(n)
	}
	return v, nil
}

// #endregion parse
