package artifacts

// Vocabulary holds the categorical values the model was trained on.
type Vocabulary struct {
	Regions []string
	Types   []string
}

// DeriveVocabulary strips the one-hot prefixes from the columns after the
// numeric features. Schema order is preserved.
func DeriveVocabulary(s *Schema) Vocabulary {
	var v Vocabulary
	for _, c := range s.columns[NumericColumns:] {
		switch {
		case hasPrefixFold(c, RegionPrefix):
			v.Regions = append(v.Regions, c[len(RegionPrefix):])
		case hasPrefixFold(c, TypePrefix):
			v.Types = append(v.Types, c[len(TypePrefix):])
		}
	}
	return v
}
