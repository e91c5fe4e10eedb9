package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"godist/internal/errors"
)

// Binomial is the number of successes in n independent trials with success
// probability p. Its support is {0, 1, ..., n}.
type Binomial struct {
	moments
	p float64
	n float64
}

// NewBinomial returns Bin(n, p). Defaults: p=0.5, n=20.
func NewBinomial(p float64, n float64) (*Binomial, error) {
	if err := validate(
		probability(KindBinomial, "p", p),
		integer(KindBinomial, "n", n, 0),
	); err != nil {
		return nil, err
	}
	b := &Binomial{p: p, n: n}
	b.refresh(b)
	return b, nil
}

func (b *Binomial) Kind() Kind       { return KindBinomial }
func (b *Binomial) Params() Params   { return Params{{"p", b.p}, {"n", b.n}} }
func (b *Binomial) Support() Support { return integers(0, b.n) }
func (b *Binomial) String() string   { return describe(b) }

func (b *Binomial) CalculateMean() Value { return Numeric(b.n * b.p) }

func (b *Binomial) CalculateStdDev() Value {
	return Numeric(math.Sqrt(b.n * b.p * (1 - b.p)))
}

func (b *Binomial) PDF(k float64) (Value, error) {
	return density(KindBinomial, b.Support(), k, b.pmf)
}

func (b *Binomial) pmf(k float64) float64 {
	// distuv computes 0*log(0) as NaN at the degenerate endpoints.
	switch b.p {
	case 0:
		return indicator(k == 0)
	case 1:
		return indicator(k == b.n)
	}
	return distuv.Binomial{N: b.n, P: b.p}.Prob(k)
}

func indicator(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}

// Compose adds the trial counts of two binomials sharing p.
func (b *Binomial) Compose(other Distribution) (Distribution, error) {
	o, err := sameKind[*Binomial](KindBinomial, other)
	if err != nil {
		return nil, err
	}
	if b.p != o.p {
		return nil, errors.IncompatibleOperands("%s: success probabilities differ (%v != %v)", KindBinomial, b.p, o.p)
	}
	return asDistribution(NewBinomial(b.p, b.n+o.n))
}

// Refresh treats every observation as one trial: n becomes the sample size
// and p the proportion of ones.
func (b *Binomial) Refresh(sample []float64) error {
	p, err := proportion(KindBinomial, sample)
	if err != nil {
		return err
	}
	b.p, b.n = p, float64(len(sample))
	b.refresh(b)
	return nil
}

// Bernoulli is a single trial with success probability p on {0, 1}.
type Bernoulli struct {
	moments
	p float64
}

// NewBernoulli returns Bernoulli(p). Default: p=0.5.
func NewBernoulli(p float64) (*Bernoulli, error) {
	if err := validate(probability(KindBernoulli, "p", p)); err != nil {
		return nil, err
	}
	b := &Bernoulli{p: p}
	b.refresh(b)
	return b, nil
}

func (b *Bernoulli) Kind() Kind       { return KindBernoulli }
func (b *Bernoulli) Params() Params   { return Params{{"p", b.p}} }
func (b *Bernoulli) Support() Support { return integers(0, 1) }
func (b *Bernoulli) String() string   { return describe(b) }

func (b *Bernoulli) CalculateMean() Value   { return Numeric(b.p) }
func (b *Bernoulli) CalculateStdDev() Value { return Numeric(math.Sqrt(b.p * (1 - b.p))) }

func (b *Bernoulli) PDF(k float64) (Value, error) {
	return density(KindBernoulli, b.Support(), k, distuv.Bernoulli{P: b.p}.Prob)
}

// Refresh sets p to the proportion of ones in the sample.
func (b *Bernoulli) Refresh(sample []float64) error {
	p, err := proportion(KindBernoulli, sample)
	if err != nil {
		return err
	}
	b.p = p
	b.refresh(b)
	return nil
}
