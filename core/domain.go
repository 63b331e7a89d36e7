package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/huangsam/chakra/core/algo"
	"github.com/huangsam/chakra/internal/contract"
	"github.com/huangsam/chakra/schema"
)

// ErrDomain is returned for a time domain that cannot be sampled.
var ErrDomain = errors.New("invalid time domain")

// TimeDomain is the sampled interval [Start, End] shared by every stage of an analysis.
type TimeDomain struct {
	Samples int
	Start   float64
	End     float64
}

// DefaultDomain returns 1000 samples over [0, 10].
func DefaultDomain() TimeDomain {
	return TimeDomain{Samples: contract.DefaultSamples, Start: contract.DefaultStart, End: contract.DefaultEnd}
}

// DomainFromConfig builds the domain from validated config.
func DomainFromConfig(cfg *contract.Config) TimeDomain {
	return TimeDomain{Samples: cfg.Samples, Start: cfg.Start, End: cfg.End}
}

// Validate reports whether the domain has at least two samples over a finite, non-empty interval.
func (d TimeDomain) Validate() error {
	switch {
	case d.Samples < 2:
		return fmt.Errorf("%w: need at least 2 samples, got %d", ErrDomain, d.Samples)
	case d.Samples > contract.MaxSamples:
		return fmt.Errorf("%w: at most %d samples are supported, got %d", ErrDomain, contract.MaxSamples, d.Samples)
	case math.IsNaN(d.Start) || math.IsNaN(d.End) || math.IsInf(d.Start, 0) || math.IsInf(d.End, 0):
		return fmt.Errorf("%w: bounds must be finite", ErrDomain)
	case d.End <= d.Start:
		return fmt.Errorf("%w: end %v must be greater than start %v", ErrDomain, d.End, d.Start)
	}
	return nil
}

// Vector returns the uniformly spaced sample points, first and last inclusive.
func (d TimeDomain) Vector() []float64 {
	return algo.Linspace(d.Start, d.End, d.Samples)
}

// Step returns the nominal spacing between samples.
func (d TimeDomain) Step() float64 {
	if d.Samples < 2 {
		return 0
	}
	return (d.End - d.Start) / float64(d.Samples-1)
}

// Schema converts the domain into its serializable form.
func (d TimeDomain) Schema() schema.Domain {
	return schema.Domain{Samples: d.Samples, Start: d.Start, End: d.End, Step: d.Step()}
}
