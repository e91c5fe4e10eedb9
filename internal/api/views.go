package api

import (
	"godist/domain/distribution"
)

// ParamSpecView is the wire form of one catalog parameter
type ParamSpecView struct {
	Name       string  `json:"name"`
	Default    float64 `json:"default"`
	Constraint string  `json:"constraint"`
}

// EntryView is the wire form of a catalog entry
type EntryView struct {
	Kind        distribution.Kind `json:"kind"`
	Params      []ParamSpecView   `json:"params"`
	Composable  bool              `json:"composable"`
	Refreshable bool              `json:"refreshable"`
}

func NewEntryView(e distribution.Entry) EntryView {
	params := make([]ParamSpecView, len(e.Params))
	for i, p := range e.Params {
		params[i] = ParamSpecView{Name: p.Name, Default: p.Default, Constraint: p.Constraint}
	}
	return EntryView{Kind: e.Kind, Params: params, Composable: e.Composable, Refreshable: e.Refreshable}
}

// CatalogView lists every entry in kind order
func CatalogView() []EntryView {
	kinds := distribution.Kinds()
	entries := make([]EntryView, 0, len(kinds))
	for _, kind := range kinds {
		e, _ := distribution.Lookup(kind)
		entries = append(entries, NewEntryView(e))
	}
	return entries
}

// Snapshot is the wire form of a distribution's description.
// Description carries the text rendering and is not encoded.
type Snapshot struct {
	Kind        distribution.Kind   `json:"kind"`
	Params      distribution.Params `json:"params"`
	Support     string              `json:"support"`
	Mean        distribution.Value  `json:"mean"`
	StdDev      distribution.Value  `json:"standard_deviation"`
	Description string              `json:"-"`
}

func NewSnapshot(d distribution.Distribution) Snapshot {
	params := d.Params()
	if params == nil {
		params = distribution.Params{}
	}
	return Snapshot{
		Kind:        d.Kind(),
		Params:      params,
		Support:     d.Support().String(),
		Mean:        d.Mean(),
		StdDev:      d.StdDev(),
		Description: d.String(),
	}
}

// PointView is one density evaluation
type PointView struct {
	X       float64            `json:"x"`
	Density distribution.Value `json:"density"`
}

// Evaluate computes the density of d at each x, stopping at the first error
func Evaluate(d distribution.Distribution, xs []float64) ([]PointView, error) {
	points := make([]PointView, 0, len(xs))
	for _, x := range xs {
		v, err := d.PDF(x)
		if err != nil {
			return nil, err
		}
		points = append(points, PointView{X: x, Density: v})
	}
	return points, nil
}

type ZScoreView struct {
	X      float64 `json:"x"`
	ZScore float64 `json:"z_score"`
}
