package artifacts

import (
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/asafschers/goscore"
)

// ForestModel is a PMML random forest regressor. Each tree is traversed with
// a feature map keyed by schema column name and the leaf scores are averaged.
type ForestModel struct {
	forest  goscore.RandomForest
	columns []string
}

func (m *ForestModel) Kind() string { return "forest" }

// Trees is the number of trees in the ensemble.
func (m *ForestModel) Trees() int { return len(m.forest.Trees) }

func (m *ForestModel) Predict(rows [][]float64) ([]float64, error) {
	if err := checkRows(rows, len(m.columns)); err != nil {
		return nil, err
	}
	if len(m.forest.Trees) == 0 {
		return nil, errors.New("forest has no trees")
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		features := m.features(row)
		var sum float64
		for t, tree := range m.forest.Trees {
			score, err := scoreTree(tree, features)
			if err != nil {
				return nil, fmt.Errorf("tree %d: %w", t, err)
			}
			sum += score
		}
		out[i] = sum / float64(len(m.forest.Trees))
	}
	return out, nil
}

// scoreTree turns a panic inside goscore (malformed node attributes) into an error.
func scoreTree(tree goscore.Node, features map[string]interface{}) (score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed tree: %v", r)
		}
	}()
	return tree.TraverseTree(features)
}

func (m *ForestModel) features(row []float64) map[string]interface{} {
	f := make(map[string]interface{}, len(row))
	for j, v := range row {
		f[m.columns[j]] = v
	}
	return f
}

func decodeForest(b []byte, schema *Schema) (*ForestModel, error) {
	var rf goscore.RandomForest
	if err := xml.Unmarshal(b, &rf); err != nil {
		return nil, fmt.Errorf("decode pmml: %w", err)
	}
	if len(rf.Trees) == 0 {
		return nil, errors.New("pmml contains no tree segments")
	}
	if err := checkForest(b, schema); err != nil {
		return nil, err
	}
	m := &ForestModel{forest: rf, columns: schema.Columns()}
	out, err := m.Predict([][]float64{make([]float64, schema.Len())})
	if err != nil {
		return nil, fmt.Errorf("score zero row: %w", err)
	}
	if math.IsNaN(out[0]) || math.IsInf(out[0], 0) {
		return nil, errors.New("score zero row: result is not finite")
	}
	return m, nil
}

// pmmlForest mirrors only the parts of a PMML forest needed to check that
// its splits refer to schema columns.
type pmmlForest struct {
	Trees []pmmlTree `xml:"MiningModel>Segmentation>Segment>TreeModel"`
}

type pmmlTree struct {
	Root *pmmlNode `xml:"Node"`
}

type pmmlNode struct {
	Children   []pmmlNode      `xml:"Node"`
	Predicates []pmmlPredicate `xml:",any"`
}

// pmmlPredicate covers SimplePredicate, SimpleSetPredicate and nested
// CompoundPredicate elements.
type pmmlPredicate struct {
	XMLName xml.Name
	Field   string          `xml:"field,attr"`
	Nested  []pmmlPredicate `xml:",any"`
}

// checkForest rejects trees without a root node and splits on fields the
// schema does not have. goscore treats an absent feature as a false
// predicate, which would silently route every row down the same branch.
func checkForest(b []byte, schema *Schema) error {
	var doc pmmlForest
	if err := xml.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("decode pmml: %w", err)
	}
	known := make(map[string]bool, schema.Len())
	for _, c := range schema.Columns() {
		known[c] = true
	}
	unknown := map[string]bool{}
	for i, t := range doc.Trees {
		if t.Root == nil {
			return fmt.Errorf("tree %d has no root node", i)
		}
		t.Root.walk(func(field string) {
			if !known[field] {
				unknown[field] = true
			}
		})
	}
	if len(unknown) > 0 {
		names := make([]string, 0, len(unknown))
		for f := range unknown {
			names = append(names, f)
		}
		sort.Strings(names)
		return fmt.Errorf("pmml splits on fields missing from the schema: %s", strings.Join(names, ", "))
	}
	return nil
}

func (n *pmmlNode) walk(visit func(field string)) {
	for _, p := range n.Predicates {
		p.walk(visit)
	}
	for i := range n.Children {
		n.Children[i].walk(visit)
	}
}

func (p pmmlPredicate) walk(visit func(field string)) {
	if p.Field != "" {
		visit(p.Field)
	}
	for _, c := range p.Nested {
		c.walk(visit)
	}
}
