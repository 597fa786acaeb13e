// Package techocc classifies occupations as tech, digital or high-tech by
// combining O*NET element ratings with an O*NET-to-NOC crosswalk.
//
// The pipeline runs in fixed stages, each a pure transformation:
// unify the three rating tables, join across the crosswalk, aggregate to one
// score per (occupation, element, scale), rank occupations per element of
// interest, combine ranks into harmonic composites, and cut the composites
// into labels. The aggregated table also feeds a PCA check of the element
// selection (see the pca subpackage).
package techocc

import "fmt"

// O*NET scale identifiers used by the pipeline.
const (
	ScaleImportance = "IM"
	ScaleLevel      = "LV"
)

// RatingRecord is one O*NET observation after schema unification: an
// occupation code rated on one element (skill, knowledge or work activity)
// for one scale.
type RatingRecord struct {
	ONetCode    string
	ONetTitle   string
	ElementID   string
	ElementName string
	ScaleID     string
	ScaleName   string
	Value       float64
}

// CrosswalkEntry maps one O*NET occupation code to one NOC occupation title.
// The relation is many-to-many in both directions.
type CrosswalkEntry struct {
	ONetCode string
	NOCTitle string
}

// JoinedRecord is a RatingRecord fanned out to a crosswalk-mapped NOC title.
type JoinedRecord struct {
	RatingRecord

	NOCTitle string
}

// AggregatedScore is the mean rating over all O*NET codes mapping to the
// same NOC title, per (element, scale). The five-field key is unique.
type AggregatedScore struct {
	NOCTitle    string
	ElementID   string
	ElementName string
	ScaleID     string
	ScaleName   string
	Value       float64
}

// OccupationRankRow is one NOC occupation with its per-element values and
// ranks, harmonic composites and classification labels. Values absent from
// the source data have no map entry; a missing rank is 0; an undefined
// composite is NaN.
type OccupationRankRow struct {
	NOCTitle string
	NOCCode  string
	NOCName  string

	Values map[string]float64
	Ranks  map[string]int

	HarmRank        float64
	HarmRankDigital float64
	HarmRankNoTel   float64

	Tech         int
	DigitalLabel string
	TechNoTel    int
}

// Pipeline threads the intermediate tables of one run as explicit values.
// A Pipeline is single-use: Run populates Aggregated and Rows and the
// results are not mutated afterwards.
type Pipeline struct {
	Cfg *Config

	Aggregated []AggregatedScore
	Rows       []OccupationRankRow
}

func NewPipeline(cfg *Config) (*Pipeline, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if e := cfg.Check(); e != nil {
		return nil, e
	}

	return &Pipeline{Cfg: cfg}, nil
}

// Run executes the full classification on already-parsed inputs. tables are
// the knowledge, skill and work-activity ratings; xwalk the O*NET-to-NOC
// crosswalk.
func (p *Pipeline) Run(tables []RawTable, xwalk []CrosswalkEntry) error {
	if len(xwalk) == 0 {
		return fmt.Errorf("empty crosswalk")
	}

	var (
		recs []RatingRecord
		e    error
	)

	if recs, e = UnifyRatings(tables...); e != nil {
		return e
	}

	p.Aggregated = Aggregate(JoinCrosswalk(recs, xwalk))

	if p.Rows, e = Rank(p.Aggregated, p.Cfg); e != nil {
		return e
	}

	Composites(p.Rows, p.Cfg)
	Classify(p.Rows, p.Cfg)

	return nil
}
