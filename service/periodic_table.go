package service

import (
	"errors"
	"fmt"
	"strings"
)

type Element struct {
	AtomicNumber  int     `json:"atomic_number"`
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Pronunciation string  `json:"pronunciation"`
	EnglishName   string  `json:"english_name"`
	AtomicWeight  float64 `json:"atomic_weight"`
	Period        int     `json:"period"`
	Group         string  `json:"group"`
}

func (e Element) String() string {
	return FormatElement(e)
}

// FormatElement renders the single-line description returned by the lookup tools.
// The weight is always printed with three decimals.
func FormatElement(e Element) string {
	return fmt.Sprintf("%s (%s, %s), 原子序数: %d, 符号: %s, 相对原子质量: %.3f, 周期: %d, 族: %s",
		e.Name,
		e.Pronunciation,
		e.EnglishName,
		e.AtomicNumber,
		e.Symbol,
		e.AtomicWeight,
		e.Period,
		e.Group,
	)
}

// Catalog is a read-only index over a periodic table. It is never modified
// after NewCatalog returns, so concurrent lookups need no locking.
type Catalog struct {
	elements      []Element
	byName        map[string]int
	byEnglishName map[string]int
	bySymbol      map[string]int
}

func NewCatalog(elements []Element) (*Catalog, error) {
	c := &Catalog{
		elements:      make([]Element, len(elements)),
		byName:        make(map[string]int, len(elements)),
		byEnglishName: make(map[string]int, len(elements)),
		bySymbol:      make(map[string]int, len(elements)),
	}
	copy(c.elements, elements)

	var errList []error
	for i, e := range c.elements {
		if e.AtomicNumber != i+1 {
			errList = append(errList, fmt.Errorf("element %q at index %d has atomic number %d, want %d", e.Symbol, i, e.AtomicNumber, i+1))
		}
		if e.Name == "" || e.EnglishName == "" || e.Symbol == "" {
			errList = append(errList, fmt.Errorf("element %d has an empty name, english name or symbol", e.AtomicNumber))
			continue
		}
		if err := addKey(c.byName, e.Name, i, "name"); err != nil {
			errList = append(errList, err)
		}
		if err := addKey(c.byEnglishName, strings.ToLower(e.EnglishName), i, "english name"); err != nil {
			errList = append(errList, err)
		}
		if err := addKey(c.bySymbol, strings.ToLower(e.Symbol), i, "symbol"); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return c, nil
}

func addKey(index map[string]int, key string, pos int, field string) error {
	if _, exist := index[key]; exist {
		return fmt.Errorf("duplicate %s %q", field, key)
	}
	index[key] = pos
	return nil
}

var defaultCatalog = mustCatalog(elementTable)

func mustCatalog(elements []Element) *Catalog {
	c, err := NewCatalog(elements)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in periodic table: %v", err))
	}
	return c
}

// DefaultCatalog returns the built-in 118-element table.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func (c *Catalog) Len() int {
	return len(c.elements)
}

// Elements returns a copy of the table in atomic number order.
func (c *Catalog) Elements() []Element {
	res := make([]Element, len(c.elements))
	copy(res, c.elements)
	return res
}

func (c *Catalog) FindByAtomicNumber(n int) (Element, bool) {
	if n < 1 || n > len(c.elements) {
		return Element{}, false
	}
	return c.elements[n-1], true
}

// FindByIdentifier matches the localized name exactly, then the English name
// and the symbol ignoring case. Numeric strings are not treated as atomic numbers.
func (c *Catalog) FindByIdentifier(query string) (Element, bool) {
	if pos, ok := c.byName[query]; ok {
		return c.elements[pos], true
	}
	lower := strings.ToLower(query)
	if pos, ok := c.byEnglishName[lower]; ok {
		return c.elements[pos], true
	}
	if pos, ok := c.bySymbol[lower]; ok {
		return c.elements[pos], true
	}
	return Element{}, false
}
