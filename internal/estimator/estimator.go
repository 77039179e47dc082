package estimator

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"homeprice/internal/artifacts"
)

// Encoding reports where the categorical indicators landed in the vector.
// Indices are artifacts.NotFound for categories the model has not seen.
type Encoding struct {
	RegionIndex int
	TypeIndex   int
}

func (e Encoding) RegionKnown() bool { return e.RegionIndex != artifacts.NotFound }
func (e Encoding) TypeKnown() bool   { return e.TypeIndex != artifacts.NotFound }

// Estimate is the result of one prediction.
type Estimate struct {
	Price       float64
	RegionKnown bool
	TypeKnown   bool
}

type cacheKey struct {
	rooms, area  float64
	region, kind string
}

// Estimator is immutable after New and safe for concurrent use.
type Estimator struct {
	art   *artifacts.Artifacts
	cache *lru.Cache[cacheKey, Estimate]
	log   zerolog.Logger
}

// Option configures an Estimator.
type Option func(*Estimator) error

// WithCache memoizes up to size estimates. Zero disables the cache.
func WithCache(size int) Option {
	return func(e *Estimator) error {
		if size <= 0 {
			e.cache = nil
			return nil
		}
		c, err := lru.New[cacheKey, Estimate](size)
		if err != nil {
			return fmt.Errorf("estimate cache: %w", err)
		}
		e.cache = c
		return nil
	}
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Estimator) error {
		e.log = l
		return nil
	}
}

// New binds an Estimator to loaded artifacts.
func New(a *artifacts.Artifacts, opts ...Option) (*Estimator, error) {
	if a == nil || a.Schema == nil || a.Model == nil {
		return nil, ErrNotLoaded
	}
	e := &Estimator{art: a, log: zerolog.Nop()}
	for _, o := range opts {
		if err := o(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Estimator) ready() bool { return e != nil && e.art != nil }

// Artifacts returns the state this Estimator was built from.
func (e *Estimator) Artifacts() *artifacts.Artifacts {
	if !e.ready() {
		return nil
	}
	return e.art
}

// Regions lists the region names known to the model, in schema order.
func (e *Estimator) Regions() ([]string, error) {
	if !e.ready() {
		return nil, ErrNotLoaded
	}
	return append([]string{}, e.art.Vocabulary.Regions...), nil
}

// Types lists the property types known to the model, in schema order.
func (e *Estimator) Types() ([]string, error) {
	if !e.ready() {
		return nil, ErrNotLoaded
	}
	return append([]string{}, e.art.Vocabulary.Types...), nil
}

// Encode builds the feature vector for one request. Unknown region or type
// values leave their indicator unset; that is not an error.
func (e *Estimator) Encode(rooms, area float64, region, propertyType string) ([]float64, Encoding, error) {
	if !e.ready() {
		return nil, Encoding{}, ErrNotLoaded
	}
	if err := validate("bhk", rooms); err != nil {
		return nil, Encoding{}, err
	}
	if err := validate("area", area); err != nil {
		return nil, Encoding{}, err
	}
	s := e.art.Schema
	enc := Encoding{
		RegionIndex: s.Index(artifacts.RegionPrefix + artifacts.Fold(region)),
		TypeIndex:   s.Index(artifacts.TypePrefix + artifacts.Fold(propertyType)),
	}
	x := make([]float64, s.Len())
	x[0] = rooms
	x[1] = area
	if enc.RegionKnown() {
		x[enc.RegionIndex] = 1
	}
	if enc.TypeKnown() {
		x[enc.TypeIndex] = 1
	}
	return x, enc, nil
}

// Estimate predicts the price for one request, rounded to two decimals.
func (e *Estimator) Estimate(rooms, area float64, region, propertyType string) (Estimate, error) {
	if !e.ready() {
		return Estimate{}, ErrNotLoaded
	}
	key := cacheKey{rooms: rooms, area: area, region: artifacts.Fold(region), kind: artifacts.Fold(propertyType)}
	if e.cache != nil {
		if est, ok := e.cache.Get(key); ok {
			cacheHitsTotal.Inc()
			predictionsTotal.WithLabelValues(knownLabel(est.RegionKnown), knownLabel(est.TypeKnown)).Inc()
			return est, nil
		}
	}

	x, enc, err := e.Encode(rooms, area, region, propertyType)
	if err != nil {
		return Estimate{}, err
	}
	e.log.Debug().
		Str("region", key.region).Int("region_index", enc.RegionIndex).
		Str("type", key.kind).Int("type_index", enc.TypeIndex).
		Msg("encoded features")

	out, err := e.art.Model.Predict([][]float64{x})
	if err != nil {
		return Estimate{}, fmt.Errorf("predict: %w", err)
	}
	if len(out) != 1 {
		return Estimate{}, fmt.Errorf("predict: model returned %d values for 1 row", len(out))
	}
	if math.IsNaN(out[0]) || math.IsInf(out[0], 0) {
		return Estimate{}, errors.New("predict: model returned a non-finite value")
	}

	price := Round2(out[0])
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return Estimate{}, fmt.Errorf("predict: rounding %v gave a non-finite value", out[0])
	}
	est := Estimate{Price: price, RegionKnown: enc.RegionKnown(), TypeKnown: enc.TypeKnown()}
	if e.cache != nil {
		e.cache.Add(key, est)
	}
	predictionsTotal.WithLabelValues(knownLabel(est.RegionKnown), knownLabel(est.TypeKnown)).Inc()
	return est, nil
}

// Round2 rounds to two decimal places from the exact binary value, ties to
// even, so 0.125 becomes 0.12 and 2.675 (stored just below) becomes 2.67.
// Large inputs never overflow since no scaling is involved.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return math.NaN()
	}
	return r
}

// validate enforces the caller contract only: finite and non-negative.
// Plausible ranges are domain knowledge and are not checked here.
func validate(field string, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return &InputError{Field: field, Value: v, Reason: "must be a finite number"}
	case v < 0:
		return &InputError{Field: field, Value: v, Reason: "must not be negative"}
	}
	return nil
}
