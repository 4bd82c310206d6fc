package domain

// Votes agrupa los tres valores opcionales de personalidad. Un puntero nil
// significa que no se voto en esa dimension.
type Votes struct {
	MBTI      *string `json:"mbti,omitempty"`
	Enneagram *string `json:"enneagram,omitempty"`
	Zodiac    *string `json:"zodiac,omitempty"`
}

// Get devuelve el voto de la dimension d.
func (v Votes) Get(d Dimension) *string {
	switch d {
	case DimensionMBTI:
		return v.MBTI
	case DimensionEnneagram:
		return v.Enneagram
	case DimensionZodiac:
		return v.Zodiac
	default:
		return nil
	}
}

// Has indica si existe voto en la dimension d.
func (v Votes) Has(d Dimension) bool {
	return v.Get(d) != nil
}
