package compiler

// NumberKind is the verdict of ClassifyNumber.
type NumberKind int

const (
	NumberInvalid NumberKind = iota
	NumberFloat
	NumberInteger
)

func (k NumberKind) String() string {
	switch k {
	case NumberFloat:
		return "float"
	case NumberInteger:
		return "integer"
	default:
		return "invalid"
	}
}

type numState int

const (
	numStart      numState = iota
	numSign                // + or - at the start
	numInteger             // integer digits
	numPoint               // the decimal point
	numFraction            // fraction digits
	numExpMark             // the E before an exponent
	numExpSign             // + or - before the exponent digits
	numExpInteger          // exponent digits
	numError
)

// numTransitions is indexed by state; columns are sign, digit, point, 'E'.
var numTransitions = [...][4]numState{
	numStart:      {numSign, numInteger, numError, numError},
	numSign:       {numError, numInteger, numError, numError},
	numInteger:    {numError, numInteger, numPoint, numExpMark},
	numPoint:      {numError, numFraction, numError, numError},
	numFraction:   {numError, numFraction, numError, numExpMark},
	numExpMark:    {numExpSign, numExpInteger, numError, numError},
	numExpSign:    {numError, numExpInteger, numError, numError},
	numExpInteger: {numError, numExpInteger, numError, numError},
	numError:      {numError, numError, numError, numError},
}

var numAccepting = [...]NumberKind{
	numInteger:    NumberInteger,
	numFraction:   NumberFloat,
	numExpInteger: NumberFloat,
	numError:      NumberInvalid,
}

// ClassifyNumber runs s through the numeric literal state machine and
// reports whether it spells an integer, a float, or neither.
//
//	123 → integer    12.5 → float    1E-5 → float
//	12. → invalid    .5   → invalid  1E   → invalid
func ClassifyNumber(s string) NumberKind {
	state := numStart
	for i := 0; i < len(s); i++ {
		var class int
		switch c := s[i]; {
		case c == '+' || c == '-':
			class = 0
		case c >= '0' && c <= '9':
			class = 1
		case c == '.':
			class = 2
		case c == 'E':
			class = 3
		default:
			return NumberInvalid
		}
		state = numTransitions[state][class]
	}
	return numAccepting[state]
}
