// Package tts maps decoded catalog cards onto the flat record the Tabletop
// Simulator importer consumes.
package tts

import (
	"errors"
	"fmt"

	"github.com/arcanaland/ttsforge/internal/card"
	"github.com/arcanaland/ttsforge/internal/oracle"
)

// ErrNotExportable is returned for layouts that never produce a record
var ErrNotExportable = errors.New("layout is not exportable")

// canonical maps source layouts to the output layout tag
var canonical = map[card.Layout]string{
	card.LayoutNormal:     "normal",
	card.LayoutMeld:       "normal",
	card.LayoutLeveler:    "normal",
	card.LayoutHost:       "normal",
	card.LayoutClass:      "normal",
	card.LayoutSaga:       "normal",
	card.LayoutSplit:      "split",
	card.LayoutFlip:       "flip",
	card.LayoutAdventure:  "adventure",
	card.LayoutTransform:  "transform",
	card.LayoutModalDFC:   "transform",
	card.LayoutReversible: "reversible_card",
	card.LayoutVanguard:   "vanguard",
}

// CanonicalLayout returns the output layout tag, or "" for layouts that are
// not exported.
func CanonicalLayout(l card.Layout) string {
	return canonical[l]
}

// Normalize builds the output record for a decoded card
func Normalize(c card.Card) (Record, error) {
	b := c.Common()
	layout, ok := canonical[b.Layout]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s (%s)", ErrNotExportable, b.Name, b.Layout)
	}

	r := Record{
		Set:             b.Set,
		Name:            b.Name,
		CollectorNumber: b.CollectorNumber,
		Layout:          layout,
	}

	switch v := c.(type) {
	case *card.Normal:
		r.OracleID, r.CMC, r.TypeLine = v.OracleID, v.CMC, v.TypeLine
		r.Details = &Details{
			OracleText: oracle.Text(c, 0),
			ImageURIs:  images(&v.ImageURIs),
			Power:      stat(v.Power),
			Toughness:  stat(v.Toughness),
			ManaCost:   v.ManaCost,
			Loyalty:    stat(v.Loyalty),
		}

	case *card.Saga:
		r.OracleID, r.CMC, r.TypeLine = v.OracleID, v.CMC, v.TypeLine
		r.Details = &Details{
			OracleText: oracle.Text(c, 0),
			ImageURIs:  images(&v.ImageURIs),
			ManaCost:   v.ManaCost,
		}

	case *card.Split:
		r.OracleID, r.CMC, r.TypeLine = v.OracleID, v.CMC, v.TypeLine
		if b.Layout == card.LayoutFlip {
			// both halves are printed on the one image
			r.CardFaces = faces(c, v.CardFaces, func(card.CardFace) Images { return images(&v.ImageURIs) })
			break
		}
		r.Details = &Details{
			OracleText: oracle.Text(c, 0),
			ImageURIs:  images(&v.ImageURIs),
			ManaCost:   v.ManaCost,
		}

	case *card.Adventure:
		r.OracleID, r.CMC, r.TypeLine = v.OracleID, v.CMC, v.TypeLine
		r.Details = &Details{
			OracleText: oracle.Text(c, 0),
			ImageURIs:  images(&v.ImageURIs),
			ManaCost:   v.ManaCost,
		}

	case *card.DoubleFaced:
		r.OracleID, r.CMC, r.TypeLine = v.OracleID, num(v.CMC), str(v.TypeLine)
		r.CardFaces = faces(c, v.CardFaces, func(f card.CardFace) Images { return images(f.ImageURIs) })

	case *card.Reversible:
		front, back := faceAt(v.CardFaces, 0), faceAt(v.CardFaces, 1)
		r.OracleID = str(front.OracleID)
		r.CMC = num(front.CMC)
		r.TypeLine = str(front.TypeLine) + " // " + str(back.TypeLine)
		r.CardFaces = faces(c, v.CardFaces, func(f card.CardFace) Images {
			return normalImage(f.ImageURIs, placeholderImage)
		})

	case *card.Vanguard:
		r.OracleID, r.CMC, r.TypeLine = str(v.OracleID), num(v.CMC), str(v.TypeLine)
		r.Details = &Details{
			OracleText: oracle.Text(c, 0),
			ImageURIs:  normalImage(&v.ImageURIs, ""),
		}

	default:
		return Record{}, fmt.Errorf("%w: %s (%T)", ErrNotExportable, b.Name, c)
	}

	return r, nil
}

// faces builds card_faces entries, rendering each entry's oracle text with
// that entry's index.
func faces(c card.Card, src []card.CardFace, img func(card.CardFace) Images) []Face {
	out := make([]Face, 0, len(src))
	for i, f := range src {
		out = append(out, Face{
			Name:       f.Name,
			TypeLine:   str(f.TypeLine),
			OracleText: oracle.Text(c, i),
			ImageURIs:  img(f),
			Power:      stat(f.Power),
			Toughness:  stat(f.Toughness),
			ManaCost:   f.ManaCost,
			Loyalty:    stat(f.Loyalty),
		})
	}
	return out
}

func faceAt(src []card.CardFace, i int) card.CardFace {
	if i < len(src) {
		return src[i]
	}
	return card.CardFace{}
}
