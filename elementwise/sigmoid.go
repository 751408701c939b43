package elementwise

import (
	"fmt"
	"math"

	"github.com/hupe1980/colgo"
)

// SigmoidType selects the sigmoid curve applied per element.
type SigmoidType int

const (
	Logistic SigmoidType = iota
	Algebraic
	HyperbolicTan
	ArcTan
	ErrorFunction
	Gudermannian
	Smoothstep
)

func (s SigmoidType) String() string {
	switch s {
	case Logistic:
		return "Logistic"
	case Algebraic:
		return "Algebraic"
	case HyperbolicTan:
		return "HyperbolicTan"
	case ArcTan:
		return "ArcTan"
	case ErrorFunction:
		return "ErrorFunction"
	case Gudermannian:
		return "Gudermannian"
	case Smoothstep:
		return "Smoothstep"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Sigmoid maps every element of a column through the configured sigmoid.
type Sigmoid struct {
	typ    SigmoidType
	result []float64
}

// NewSigmoid creates a Sigmoid visitor.
func NewSigmoid(typ SigmoidType) *Sigmoid {
	return &Sigmoid{typ: typ}
}

// Pre resets the result.
func (s *Sigmoid) Pre() { s.result = nil }

// Post finalizes the visitor. It is a no-op.
func (s *Sigmoid) Post() {}

// Fit maps the column element by element.
func (s *Sigmoid) Fit(index []uint64, values []float64) error {
	n := colgo.ColSize(index, values)
	result := make([]float64, 0, n)

	for _, v := range values[:n] {
		result = append(result, s.apply(v))
	}

	s.result = result
	return nil
}

func (s *Sigmoid) apply(v float64) float64 {
	switch s.typ {
	case Logistic:
		return 1 / (1 + math.Exp(-v))
	case Algebraic:
		return 1 / math.Sqrt(1+v*v)
	case HyperbolicTan:
		return math.Tanh(v)
	case ArcTan:
		return math.Atan(v)
	case ErrorFunction:
		return math.Erf(v)
	case Gudermannian:
		return math.Atan(math.Sinh(v))
	case Smoothstep:
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 1
		default:
			return v * v * (3 - 2*v)
		}
	default:
		return math.NaN()
	}
}

// Result returns one mapped value per input position.
func (s *Sigmoid) Result() []float64 { return s.result }
