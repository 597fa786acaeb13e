// Package pca validates the element selection by decomposing the full
// occupation-by-skill score matrix into principal components. If the chosen
// elements matter, they should load heavily on the leading components.
package pca

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/datamtl/techocc"
)

// Result holds the retained components: one loading per (skill, component)
// and one score per (occupation, component). Loadings and scores share the
// same sign convention -- both come from the same direction vectors.
type Result struct {
	Skills      []string
	Occupations []string

	// Loadings is len(Skills) x k, Scores is len(Occupations) x k.
	Loadings *mat.Dense
	Scores   *mat.Dense

	// Explained is each retained component's share of total variance.
	Explained []float64
}

// pairs of Importance and Level per (occupation, skill) cell.
type cell struct {
	im, lv         float64
	haveIM, haveLV bool
}

// Decompose reshapes the aggregated scores into an occupation-by-skill
// matrix of Importance x Level products, standardizes each skill column and
// keeps the k leading principal components.
//
// The skill key is the element id truncated to seven characters plus the
// element name, so sibling work activities stay distinct. An occupation
// missing either scale for a skill, a zero-variance skill column or k larger
// than the matrix supports are all fatal: the validation is only meaningful
// on a complete, full-rank matrix.
func Decompose(scores []techocc.AggregatedScore, k int) (*Result, error) {
	if k < 1 {
		return nil, fmt.Errorf("pca: keep at least 1 component, got %d", k)
	}

	var (
		skills, occs []string
		skillOf      = make(map[string]int)
		occOf        = make(map[string]int)
		cells        = make(map[[2]int]*cell)
	)

	for _, sc := range scores {
		if sc.NOCTitle == "" {
			continue
		}

		if sc.ScaleID != techocc.ScaleImportance && sc.ScaleID != techocc.ScaleLevel {
			continue
		}

		skill := skillLabel(sc.ElementID, sc.ElementName)
		sInd, ok := skillOf[skill]
		if !ok {
			sInd = len(skills)
			skillOf[skill] = sInd
			skills = append(skills, skill)
		}

		oInd, ok := occOf[sc.NOCTitle]
		if !ok {
			oInd = len(occs)
			occOf[sc.NOCTitle] = oInd
			occs = append(occs, sc.NOCTitle)
		}

		cl := cells[[2]int{oInd, sInd}]
		if cl == nil {
			cl = &cell{}
			cells[[2]int{oInd, sInd}] = cl
		}

		if sc.ScaleID == techocc.ScaleImportance {
			cl.im, cl.haveIM = sc.Value, true
		} else {
			cl.lv, cl.haveLV = sc.Value, true
		}
	}

	if len(skills) == 0 || len(occs) == 0 {
		return nil, fmt.Errorf("pca: no usable rows")
	}

	x := mat.NewDense(len(occs), len(skills), nil)
	for oInd := range occs {
		for sInd := range skills {
			cl := cells[[2]int{oInd, sInd}]
			if cl == nil || !cl.haveIM || !cl.haveLV {
				return nil, fmt.Errorf("pca: %s missing a scale for %s", occs[oInd], skills[sInd])
			}

			x.Set(oInd, sInd, cl.im*cl.lv)
		}
	}

	if e := standardize(x, skills); e != nil {
		return nil, e
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(x, nil); !ok {
		return nil, fmt.Errorf("pca: decomposition failed")
	}

	vars := pc.VarsTo(nil)
	if k > len(vars) {
		return nil, fmt.Errorf("pca: %d components requested, matrix supports %d", k, len(vars))
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	loadings := mat.DenseCopyOf(vecs.Slice(0, len(skills), 0, k))

	scoresM := mat.NewDense(len(occs), k, nil)
	scoresM.Mul(x, loadings)

	total := 0.0
	for _, v := range vars {
		total += v
	}

	explained := make([]float64, k)
	for ind := 0; ind < k; ind++ {
		explained[ind] = vars[ind] / total
	}

	return &Result{
		Skills:      skills,
		Occupations: occs,
		Loadings:    loadings,
		Scores:      scoresM,
		Explained:   explained,
	}, nil
}

// standardize centers and scales each column to zero mean, unit variance.
// A constant column cannot be scaled and fails the run.
func standardize(x *mat.Dense, skills []string) error {
	rows, cols := x.Dims()
	col := make([]float64, rows)

	for cInd := 0; cInd < cols; cInd++ {
		mat.Col(col, cInd, x)
		mu, sd := stat.MeanStdDev(col, nil)
		if sd == 0 {
			return fmt.Errorf("pca: skill %s has zero variance", skills[cInd])
		}

		for rInd := 0; rInd < rows; rInd++ {
			x.Set(rInd, cInd, (col[rInd]-mu)/sd)
		}
	}

	return nil
}

func skillLabel(elementID, elementName string) string {
	id := elementID
	if len(id) > 7 {
		id = id[:7]
	}

	return id + " " + elementName
}

// Order returns the skill indices sorted by the loading on one component,
// for reporting the loading table around a component of interest.
func (r *Result) Order(component int, descending bool) ([]int, error) {
	_, k := r.Loadings.Dims()
	if component < 0 || component >= k {
		return nil, fmt.Errorf("pca: component %d out of range, have %d", component, k)
	}

	inds := make([]int, len(r.Skills))
	for ind := range inds {
		inds[ind] = ind
	}

	sort.SliceStable(inds, func(i, j int) bool {
		li, lj := r.Loadings.At(inds[i], component), r.Loadings.At(inds[j], component)
		if descending {
			return li > lj
		}

		return li < lj
	})

	return inds, nil
}

// SaveLoadings writes the skills-by-components loading table sorted by
// sortComponent's loading.
func (r *Result) SaveLoadings(fileName string, sortComponent int, descending bool) error {
	order, e := r.Order(sortComponent, descending)
	if e != nil {
		return e
	}

	_, k := r.Loadings.Dims()
	f := techocc.NewFiles()
	f.FieldNames = append([]string{"skill"}, componentNames(k)...)

	if e1 := f.Create(fileName); e1 != nil {
		return e1
	}
	defer func() { _ = f.Close() }()

	if e1 := f.WriteHeader(); e1 != nil {
		return e1
	}

	for _, sInd := range order {
		line := []any{r.Skills[sInd]}
		for cInd := 0; cInd < k; cInd++ {
			line = append(line, r.Loadings.At(sInd, cInd))
		}

		if e1 := f.WriteLine(line); e1 != nil {
			return e1
		}
	}

	return nil
}

// SaveScores writes the occupations-by-components score table.
func (r *Result) SaveScores(fileName string) error {
	_, k := r.Scores.Dims()
	f := techocc.NewFiles()
	f.FieldNames = append([]string{"noc_title"}, componentNames(k)...)

	if e := f.Create(fileName); e != nil {
		return e
	}
	defer func() { _ = f.Close() }()

	if e := f.WriteHeader(); e != nil {
		return e
	}

	for oInd, occ := range r.Occupations {
		line := []any{occ}
		for cInd := 0; cInd < k; cInd++ {
			line = append(line, r.Scores.At(oInd, cInd))
		}

		if e := f.WriteLine(line); e != nil {
			return e
		}
	}

	return nil
}

func componentNames(k int) []string {
	names := make([]string, k)
	for ind := 0; ind < k; ind++ {
		names[ind] = fmt.Sprintf("PC%d", ind+1)
	}

	return names
}
