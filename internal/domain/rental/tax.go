package rental

import (
	"errors"
	"fmt"
	"os"

	"car-rental/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

const (
	TaxPolicyDefault = "default"
	TaxPolicyLegacy  = "legacy"
)

var ErrInvalidTaxBands = errors.New("invalid tax bands")

// TaxBand applies Multiplier to ages in [From, To]. A nil To leaves the band open-ended.
type TaxBand struct {
	From       int     `yaml:"from"`
	To         *int    `yaml:"to,omitempty"`
	Multiplier float64 `yaml:"multiplier"`
}

func (b TaxBand) covers(age int) bool {
	if age < b.From {
		return false
	}
	return b.To == nil || age <= *b.To
}

type TaxPolicy struct {
	bands []TaxBand
}

func NewTaxPolicy(bands []TaxBand) (*TaxPolicy, error) {
	if len(bands) == 0 {
		return nil, errs.Wrap(ErrInvalidTaxBands, "no bands")
	}
	for i, b := range bands {
		if b.Multiplier <= 0 {
			return nil, errs.Wrapf(ErrInvalidTaxBands, "band %d: multiplier must be positive", i)
		}
		if b.To != nil && *b.To < b.From {
			return nil, errs.Wrapf(ErrInvalidTaxBands, "band %d: upper bound below lower bound", i)
		}
		if i == 0 {
			continue
		}
		prev := bands[i-1]
		if prev.To == nil || *prev.To >= b.From {
			return nil, errs.Wrapf(ErrInvalidTaxBands, "band %d overlaps band %d", i, i-1)
		}
	}

	return &TaxPolicy{bands: append([]TaxBand(nil), bands...)}, nil
}

func DefaultTaxPolicy() *TaxPolicy {
	return &TaxPolicy{bands: []TaxBand{
		{From: 18, To: intPtr(25), Multiplier: 1.3},
		{From: 26, To: intPtr(40), Multiplier: 1.1},
		{From: 41, Multiplier: 1.0},
	}}
}

// LegacyTaxPolicy is the table the first release of the service shipped with.
func LegacyTaxPolicy() *TaxPolicy {
	return &TaxPolicy{bands: []TaxBand{
		{From: 18, To: intPtr(25), Multiplier: 1.1},
		{From: 26, To: intPtr(30), Multiplier: 1.5},
		{From: 31, To: intPtr(100), Multiplier: 1.3},
	}}
}

// LoadTaxPolicy resolves the policy from a YAML band file when one is given,
// otherwise from a named preset.
func LoadTaxPolicy(preset, bandsFile string) (*TaxPolicy, error) {
	if bandsFile != "" {
		return LoadTaxPolicyFile(bandsFile)
	}

	switch preset {
	case "", TaxPolicyDefault:
		return DefaultTaxPolicy(), nil
	case TaxPolicyLegacy:
		return LegacyTaxPolicy(), nil
	default:
		return nil, errs.Newf("unknown tax policy %q", preset)
	}
}

func LoadTaxPolicyFile(path string) (*TaxPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read tax bands file %s", path)
	}

	var doc struct {
		Bands []TaxBand `yaml:"bands"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "parse tax bands file %s", path), ErrInvalidTaxBands)
	}

	return NewTaxPolicy(doc.Bands)
}

func (p *TaxPolicy) TaxFor(age int) (float64, error) {
	for _, b := range p.bands {
		if b.covers(age) {
			return b.Multiplier, nil
		}
	}
	return 0, errs.Wrap(errs.ErrInvalidAge, fmt.Sprintf("age %d", age))
}

func (p *TaxPolicy) Bands() []TaxBand {
	return append([]TaxBand(nil), p.bands...)
}

func intPtr(v int) *int { return &v }
