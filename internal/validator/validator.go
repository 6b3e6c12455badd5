package validator

import (
	"fmt"
	"os"
	"sort"

	"github.com/arcanaland/ttsforge/internal/card"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
	// Records counts the records that decoded
	Records int
}

type Validator struct {
	CatalogPath string
	Results     ValidationResults

	seen       map[card.Key]int
	unplayable map[card.Layout]int
}

func NewValidator(catalogPath string) *Validator {
	return &Validator{
		CatalogPath: catalogPath,
		Results:     ValidationResults{},
		seen:        make(map[card.Key]int),
		unplayable:  make(map[card.Layout]int),
	}
}

// Validate decodes the whole catalog, collecting every record error rather
// than stopping at the first. The returned error is reserved for catalogs
// that cannot be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	f, err := os.Open(v.CatalogPath)
	if err != nil {
		return v.Results, fmt.Errorf("error opening catalog: %w", err)
	}
	defer f.Close()

	err = card.Scan(f, v.inspect, func(err error) error {
		v.Results.Errors = append(v.Results.Errors, err.Error())
		return nil
	})
	if err != nil {
		return v.Results, err
	}

	v.validateDuplicates()
	v.validateUnplayable()

	return v.Results, nil
}

func (v *Validator) inspect(c card.Card) error {
	v.Results.Records++
	v.seen[c.Key()]++

	base := c.Common()
	if !card.Playable(base.Layout) {
		v.unplayable[base.Layout]++
		return nil
	}

	switch c := c.(type) {
	case *card.Normal:
		if c.OracleText == nil {
			v.warnf("%s (%s): no oracle_text, the block will only show name and type", c.Name, c.Key())
		}
		v.validateImage(base, c.ImageURIs.Normal)
	case *card.Saga:
		v.validateImage(base, c.ImageURIs.Normal)
	case *card.Split:
		v.validateImage(base, c.ImageURIs.Normal)
	case *card.Adventure:
		v.validateImage(base, c.ImageURIs.Normal)
	case *card.Vanguard:
		v.validateImage(base, c.ImageURIs.Normal)
	case *card.DoubleFaced:
		v.validateFaces(base, c.CardFaces)
	case *card.Reversible:
		v.validateFaces(base, c.CardFaces)
	}
	return nil
}

func (v *Validator) validateImage(base *card.Base, normal string) {
	if normal == "" {
		v.warnf("%s (%s): empty image_uris.normal", base.Name, base.Key())
	}
}

// validateFaces warns about faces that would fall back to default images
func (v *Validator) validateFaces(base *card.Base, faces []card.CardFace) {
	for i, f := range faces {
		if f.ImageURIs == nil {
			v.warnf("%s (%s): face %d has no image_uris", base.Name, base.Key(), i)
		}
	}
}

func (v *Validator) validateDuplicates() {
	var dups []string
	for k, n := range v.seen {
		if n > 1 {
			dups = append(dups, fmt.Sprintf("%s appears %d times, map output keeps the last", k, n))
		}
	}
	sort.Strings(dups)
	v.Results.Warnings = append(v.Results.Warnings, dups...)
}

func (v *Validator) validateUnplayable() {
	var layouts []string
	for l := range v.unplayable {
		layouts = append(layouts, string(l))
	}
	sort.Strings(layouts)
	for _, l := range layouts {
		v.warnf("%d %s records will never be exported", v.unplayable[card.Layout(l)], l)
	}
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}
