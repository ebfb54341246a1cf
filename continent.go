package residency

import (
	"fmt"
	"strings"
)

// Continentは滞在先の大陸をあらわす。
type Continent int

const (
	Africa Continent = iota
	Antarctica
	Asia
	Europe
	NorthAmerica
	Oceania
	SouthAmerica
)

// 入力が無いときに選ばれる大陸
const DefaultContinent = Europe

var continentNames = [...]string{
	Africa:       "Africa",
	Antarctica:   "Antarctica",
	Asia:         "Asia",
	Europe:       "Europe",
	NorthAmerica: "North America",
	Oceania:      "Oceania",
	SouthAmerica: "South America",
}

// 全ての大陸を選択肢の順に返す
func Continents() []Continent {
	a := make([]Continent, len(continentNames))
	for i := range continentNames {
		a[i] = Continent(i)
	}
	return a
}

// ParseContinentは表示名から大陸を返す。
// 前後の空白は無視し、大文字小文字は区別しない。
func ParseContinent(s string) (Continent, error) {
	s = strings.TrimSpace(s)
	for i, name := range continentNames {
		if strings.EqualFold(s, name) {
			return Continent(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidContinent)
}

// 一覧に含まれる値ならtrue
func (c Continent) Valid() bool {
	return c >= 0 && int(c) < len(continentNames)
}

func (c Continent) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Continent(%d)", int(c))
	}
	return continentNames[c]
}

func (c Continent) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%d: %w", int(c), ErrInvalidContinent)
	}
	return []byte(continentNames[c]), nil
}

func (c *Continent) UnmarshalText(text []byte) error {
	v, err := ParseContinent(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
