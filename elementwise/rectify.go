package elementwise

import (
	"fmt"
	"math"

	"github.com/hupe1980/colgo"
)

// RectifyType selects the rectifier applied per element.
type RectifyType int

const (
	ReLU RectifyType = iota
	ParamReLU
	GeLU
	SiLU
	Softplus
	ELU
	Mish
	MetallicMean
)

func (r RectifyType) String() string {
	switch r {
	case ReLU:
		return "ReLU"
	case ParamReLU:
		return "ParamReLU"
	case GeLU:
		return "GeLU"
	case SiLU:
		return "SiLU"
	case Softplus:
		return "Softplus"
	case ELU:
		return "ELU"
	case Mish:
		return "Mish"
	case MetallicMean:
		return "MetallicMean"
	default:
		return fmt.Sprintf("Unknown(%d)", r)
	}
}

type rectifyOptions struct {
	param float64
}

// RectifyOption configures the Rectify visitor.
type RectifyOption func(*rectifyOptions)

// WithParam sets the rectifier parameter (the ParamReLU slope, the
// Softplus/Mish sharpness, the ELU scale). The default is 1.
func WithParam(p float64) RectifyOption {
	return func(o *rectifyOptions) {
		o.param = p
	}
}

// Rectify maps every element of a column through the configured
// rectifier.
type Rectify struct {
	typ    RectifyType
	param  float64
	result []float64
}

// NewRectify creates a Rectify visitor.
func NewRectify(typ RectifyType, optFns ...RectifyOption) *Rectify {
	o := rectifyOptions{param: 1}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return &Rectify{typ: typ, param: o.param}
}

// Pre resets the result.
func (r *Rectify) Pre() { r.result = nil }

// Post finalizes the visitor. It is a no-op.
func (r *Rectify) Post() {}

// Fit maps the column element by element.
func (r *Rectify) Fit(index []uint64, values []float64) error {
	n := colgo.ColSize(index, values)
	result := make([]float64, 0, n)

	for _, v := range values[:n] {
		result = append(result, r.apply(v))
	}

	r.result = result
	return nil
}

func (r *Rectify) apply(v float64) float64 {
	switch r.typ {
	case ReLU:
		return math.Max(0, v)
	case ParamReLU:
		return math.Max(v*r.param, v)
	case GeLU:
		return v * math.Exp(-v*v/2) / math.Sqrt(2*math.Pi)
	case SiLU:
		return v / (1 + math.Exp(-v))
	case Softplus:
		return softplus(v, r.param)
	case ELU:
		if v > 0 {
			return v
		}
		return r.param * (math.Exp(v) - 1)
	case Mish:
		return v * math.Tanh(softplus(v, r.param))
	case MetallicMean:
		return (v + math.Sqrt(v*v+4)) / 2
	default:
		return math.NaN()
	}
}

func softplus(v, p float64) float64 {
	return math.Log(1+math.Exp(p*v)) / p
}

// Result returns one mapped value per input position.
func (r *Rectify) Result() []float64 { return r.result }
