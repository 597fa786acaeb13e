package techocc

import (
	"fmt"
	"os"

	u "github.com/invertedv/utilities"
	"gopkg.in/yaml.v3"
)

// Config carries the run constants: the elements of interest, the composite
// subsets, the classification cutoffs and the PCA component count. The zero
// value is not usable; start from DefaultConfig or LoadConfig.
type Config struct {
	// Elements are the O*NET element ids ranked per occupation, in output
	// column order.
	Elements []string `yaml:"elements"`

	// DigitalSubset drives harm.rank.digital; NoTelSubset drives
	// harm.rank.no.tel. Both must be subsets of Elements.
	DigitalSubset []string `yaml:"digital_subset"`
	NoTelSubset   []string `yaml:"no_tel_subset"`

	// Labels maps element ids to short column names for the output tables.
	Labels map[string]string `yaml:"labels"`

	// RankScale is the scale id the ranking stage filters to.
	RankScale string `yaml:"rank_scale"`

	TechCutoff    float64 `yaml:"tech_cutoff"`
	DigitalCutoff float64 `yaml:"digital_cutoff"`

	// Components is the number of principal components the validator keeps.
	Components int `yaml:"components"`
}

func DefaultConfig() *Config {
	return &Config{
		Elements: []string{
			"2.B.3.b",   // Technology Design
			"2.B.3.e",   // Programming
			"2.C.3.a",   // Computers and Electronics
			"2.C.3.b",   // Engineering and Technology
			"2.C.3.h",   // Telecommunications
			"4.A.3.b.1", // Interacting With Computers
		},
		DigitalSubset: []string{"2.B.3.e", "2.C.3.a", "2.C.3.h", "4.A.3.b.1"},
		NoTelSubset:   []string{"2.B.3.b", "2.B.3.e", "2.C.3.a", "2.C.3.b", "4.A.3.b.1"},
		Labels: map[string]string{
			"2.B.3.b":   "tech_design",
			"2.B.3.e":   "programming",
			"2.C.3.a":   "comp_electronics",
			"2.C.3.b":   "engineering_tech",
			"2.C.3.h":   "telecom",
			"4.A.3.b.1": "interact_computers",
		},
		RankScale:     ScaleLevel,
		TechCutoff:    38.0,
		DigitalCutoff: 31.0,
		Components:    5,
	}
}

// LoadConfig reads a YAML file over the defaults, so a file needs to list
// only the fields it overrides.
func LoadConfig(fileName string) (*Config, error) {
	var (
		data []byte
		e    error
	)

	if data, e = os.ReadFile(fileName); e != nil {
		return nil, e
	}

	cfg := DefaultConfig()
	if e = yaml.Unmarshal(data, cfg); e != nil {
		return nil, e
	}

	if e = cfg.Check(); e != nil {
		return nil, e
	}

	return cfg, nil
}

func (c *Config) Check() error {
	if len(c.Elements) == 0 {
		return fmt.Errorf("config: no elements of interest")
	}

	for _, sub := range [][]string{c.DigitalSubset, c.NoTelSubset} {
		for _, el := range sub {
			if !u.Has(el, "", c.Elements...) {
				return fmt.Errorf("config: subset element %s not in elements", el)
			}
		}
	}

	if c.RankScale == "" {
		return fmt.Errorf("config: rank scale not set")
	}

	if c.TechCutoff <= 0 || c.DigitalCutoff <= 0 {
		return fmt.Errorf("config: cutoffs must be positive")
	}

	if c.Components < 1 {
		return fmt.Errorf("config: components must be at least 1")
	}

	return nil
}

// Label returns the short output name for an element id, falling back to the
// id itself.
func (c *Config) Label(elementID string) string {
	if lbl, ok := c.Labels[elementID]; ok {
		return lbl
	}

	return elementID
}
