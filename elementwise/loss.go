package elementwise

import (
	"fmt"
	"math"

	"github.com/hupe1980/colgo"
)

// LossType selects the scalar loss reduced over two paired columns.
type LossType int

const (
	KullbackLeibler LossType = iota
	MeanAbsError
	MeanSqrError
	MeanSqrLogError
	CrossEntropy
	BinaryCrossEntropy
	CategoricalHinge
	CosineSimilarity
	LogCosh
)

func (l LossType) String() string {
	switch l {
	case KullbackLeibler:
		return "KullbackLeibler"
	case MeanAbsError:
		return "MeanAbsError"
	case MeanSqrError:
		return "MeanSqrError"
	case MeanSqrLogError:
		return "MeanSqrLogError"
	case CrossEntropy:
		return "CrossEntropy"
	case BinaryCrossEntropy:
		return "BinaryCrossEntropy"
	case CategoricalHinge:
		return "CategoricalHinge"
	case CosineSimilarity:
		return "CosineSimilarity"
	case LogCosh:
		return "LogCosh"
	default:
		return fmt.Sprintf("Unknown(%d)", l)
	}
}

// Loss reduces an (actual, model) column pair to a single scalar under
// the configured loss. Logs of non-positive values propagate NaN/Inf
// silently.
type Loss struct {
	typ    LossType
	result float64
}

// NewLoss creates a Loss visitor.
func NewLoss(typ LossType) *Loss {
	return &Loss{typ: typ}
}

// Pre resets the result to zero.
func (l *Loss) Pre() { l.result = 0 }

// Post finalizes the visitor. It is a no-op.
func (l *Loss) Post() {}

// Fit reduces the paired columns. It fails with *colgo.LengthMismatchError
// when the columns differ in length.
func (l *Loss) Fit(index []uint64, actual, model []float64) error {
	if len(actual) != len(model) {
		return colgo.NewLengthMismatchError(len(actual), len(model))
	}

	n := colgo.ColSize(index, actual)
	actual, model = actual[:n], model[:n]

	switch l.typ {
	case KullbackLeibler:
		l.result = reduce(actual, model, func(a, m float64) float64 {
			return a * math.Log(a/m)
		})
	case MeanAbsError:
		l.result = reduce(actual, model, func(a, m float64) float64 {
			return math.Abs(a - m)
		}) / float64(n)
	case MeanSqrError:
		l.result = reduce(actual, model, func(a, m float64) float64 {
			return (a - m) * (a - m)
		}) / float64(n)
	case MeanSqrLogError:
		l.result = reduce(actual, model, func(a, m float64) float64 {
			d := math.Log(1+a) - math.Log(1+m)
			return d * d
		}) / float64(n)
	case CrossEntropy:
		l.result = -reduce(actual, model, func(a, m float64) float64 {
			return a * math.Log(m)
		}) / float64(n)
	case BinaryCrossEntropy:
		l.result = reduce(actual, model, func(a, m float64) float64 {
			return -(a * math.Log(m)) + (1-a)*math.Log(1-m)
		}) / float64(n)
	case CategoricalHinge:
		neg := reduce(actual, model, func(a, m float64) float64 {
			return (1 - a) * m
		})
		pos := reduce(actual, model, func(a, m float64) float64 {
			return a * m
		})
		l.result = math.Max(neg-pos+1, 0)
	case CosineSimilarity:
		dot := reduce(actual, model, func(a, m float64) float64 { return a * m })
		aMag := math.Sqrt(reduce(actual, actual, func(a, b float64) float64 { return a * b }))
		mMag := math.Sqrt(reduce(model, model, func(a, b float64) float64 { return a * b }))
		l.result = dot / (aMag * mMag)
	case LogCosh:
		l.result = reduce(actual, model, func(a, m float64) float64 {
			return math.Log(math.Cosh(m - a))
		}) / float64(n)
	default:
		l.result = math.NaN()
	}

	return nil
}

func reduce(a, b []float64, f func(x, y float64) float64) float64 {
	sum := 0.0
	for i := range a {
		sum += f(a[i], b[i])
	}
	return sum
}

// Result returns the scalar loss.
func (l *Loss) Result() float64 { return l.result }

// PolicyLoss computes the negative log likelihood loss of a policy:
// -log(actionProbability)·reward, one value per position.
type PolicyLoss struct {
	result []float64
}

// NewPolicyLoss creates a PolicyLoss visitor.
func NewPolicyLoss() *PolicyLoss {
	return &PolicyLoss{}
}

// Pre resets the result.
func (p *PolicyLoss) Pre() { p.result = nil }

// Post finalizes the visitor. It is a no-op.
func (p *PolicyLoss) Post() {}

// Fit consumes paired action-probability and reward columns. It fails
// with *colgo.LengthMismatchError when the columns differ in length.
func (p *PolicyLoss) Fit(index []uint64, actionProb, reward []float64) error {
	if len(actionProb) != len(reward) {
		return colgo.NewLengthMismatchError(len(actionProb), len(reward))
	}

	n := colgo.ColSize(index, actionProb)
	result := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, -math.Log(actionProb[i])*reward[i])
	}

	p.result = result
	return nil
}

// Result returns one loss value per input position.
func (p *PolicyLoss) Result() []float64 { return p.result }
