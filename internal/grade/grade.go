package grade

// Grade is a letter grade derived from numeric marks.
type Grade string

// Letter grades, best to worst.
const (
	S Grade = "S"
	A Grade = "A"
	B Grade = "B"
	C Grade = "C"
	D Grade = "D"
	F Grade = "F"
)

// All lists every letter grade in descending order.
var All = []Grade{S, A, B, C, D, F}

// Of maps marks in [0,100] to a letter grade. Buckets have inclusive lower
// bounds and the highest matching bucket wins.
func Of(marks float64) Grade {
	switch {
	case marks >= 90:
		return S
	case marks >= 80:
		return A
	case marks >= 70:
		return B
	case marks >= 60:
		return C
	case marks >= 50:
		return D
	default:
		return F
	}
}
