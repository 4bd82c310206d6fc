package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Dimension identifica un sistema de personalidad sobre el que se puede votar.
type Dimension string

const (
	DimensionMBTI      Dimension = "mbti"
	DimensionEnneagram Dimension = "enneagram"
	DimensionZodiac    Dimension = "zodiac"
)

// Dimensions devuelve las dimensiones en orden estable.
func Dimensions() []Dimension {
	return []Dimension{DimensionMBTI, DimensionEnneagram, DimensionZodiac}
}

// ParseDimension interpreta s sin distinguir mayusculas. El segundo valor es false
// si s no corresponde a ninguna dimension conocida.
func ParseDimension(s string) (Dimension, bool) {
	switch Dimension(strings.ToLower(strings.TrimSpace(s))) {
	case DimensionMBTI:
		return DimensionMBTI, true
	case DimensionEnneagram:
		return DimensionEnneagram, true
	case DimensionZodiac:
		return DimensionZodiac, true
	default:
		return "", false
	}
}

// Catalog contiene los valores validos de cada dimension. Se construye una vez al
// arrancar y se inyecta en servicios y handlers; no se modifica despues.
type Catalog struct {
	mbti      []string
	enneagram []string
	zodiac    []string
	index     map[Dimension]map[string]struct{}
}

// NewCatalog construye el catalogo con los 16 tipos MBTI, 27 codigos de eneagrama
// y 12 signos zodiacales.
func NewCatalog() *Catalog {
	c := &Catalog{
		mbti: []string{
			"INFP", "INFJ", "ENFP", "ENFJ",
			"INTJ", "INTP", "ENTP", "ENTJ",
			"ISFP", "ISFJ", "ESFP", "ESFJ",
			"ISTP", "ISTJ", "ESTP", "ESTJ",
		},
		enneagram: enneagramCodes(),
		zodiac: []string{
			"Aries", "Taurus", "Gemini", "Cancer",
			"Leo", "Virgo", "Libra", "Scorpio",
			"Sagittarius", "Capricorn", "Aquarius", "Pisces",
		},
		index: make(map[Dimension]map[string]struct{}, 3),
	}
	for _, d := range Dimensions() {
		values := c.values(d)
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		c.index[d] = set
	}
	return c
}

// enneagramCodes genera, para cada tipo central, sus dos alas adyacentes y el ala
// a tres posiciones (ciclo 1..9).
func enneagramCodes() []string {
	wrap := func(n int) int {
		return (n-1+9)%9 + 1
	}
	codes := make([]string, 0, 27)
	for core := 1; core <= 9; core++ {
		for _, wing := range []int{wrap(core - 1), wrap(core + 1), wrap(core + 3)} {
			codes = append(codes, fmt.Sprintf("%dw%d", core, wing))
		}
	}
	return codes
}

func (c *Catalog) values(d Dimension) []string {
	switch d {
	case DimensionMBTI:
		return c.mbti
	case DimensionEnneagram:
		return c.enneagram
	case DimensionZodiac:
		return c.zodiac
	default:
		return nil
	}
}

// Values devuelve una copia de los valores de la dimension d.
func (c *Catalog) Values(d Dimension) []string {
	return slices.Clone(c.values(d))
}

// MBTI, Enneagram y Zodiac exponen copias de cada lista.
func (c *Catalog) MBTI() []string      { return c.Values(DimensionMBTI) }
func (c *Catalog) Enneagram() []string { return c.Values(DimensionEnneagram) }
func (c *Catalog) Zodiac() []string    { return c.Values(DimensionZodiac) }

// Contains indica si value pertenece al catalogo de d.
func (c *Catalog) Contains(d Dimension, value string) bool {
	set, ok := c.index[d]
	if !ok {
		return false
	}
	_, ok = set[value]
	return ok
}

// ValidateVote acepta un voto ausente (nil) o un valor del catalogo.
func (c *Catalog) ValidateVote(d Dimension, value *string) error {
	if value == nil {
		return nil
	}
	if c.Contains(d, *value) {
		return nil
	}
	return &ValidationError{
		Field:   string(d),
		Message: fmt.Sprintf("`%s` is not a valid %s value", *value, d),
	}
}

// ValidateVotes aplica ValidateVote a las tres dimensiones de un voto.
func (c *Catalog) ValidateVotes(v Votes) error {
	for _, d := range Dimensions() {
		if err := c.ValidateVote(d, v.Get(d)); err != nil {
			return err
		}
	}
	return nil
}
