package card

import (
	"slices"
	"strings"
)

// Layout is the catalog's structural discriminant, always lowercase
type Layout string

const (
	LayoutNormal           Layout = "normal"
	LayoutMeld             Layout = "meld"
	LayoutLeveler          Layout = "leveler"
	LayoutHost             Layout = "host"
	LayoutClass            Layout = "class"
	LayoutSaga             Layout = "saga"
	LayoutSplit            Layout = "split"
	LayoutFlip             Layout = "flip"
	LayoutAdventure        Layout = "adventure"
	LayoutTransform        Layout = "transform"
	LayoutModalDFC         Layout = "modal_dfc"
	LayoutReversible       Layout = "reversible_card"
	LayoutVanguard         Layout = "vanguard"
	LayoutPlanar           Layout = "planar"
	LayoutScheme           Layout = "scheme"
	LayoutToken            Layout = "token"
	LayoutDoubleFacedToken Layout = "double_faced_token"
	LayoutEmblem           Layout = "emblem"
	LayoutArtSeries        Layout = "art_series"
	LayoutAugment          Layout = "augment"
)

// shape describes what decode requires of one layout
type shape struct {
	required []string
	// faces is the exact card_faces arity, or 0 when unchecked
	faces int
	// minFaces is the least card_faces arity, or 0 when unchecked
	minFaces int
	new      func() Card
}

var (
	normalFields = []string{"oracle_id", "mana_cost", "image_uris", "type_line", "cmc"}
	textFields   = []string{"oracle_id", "mana_cost", "image_uris", "type_line", "cmc", "oracle_text"}
	splitFields  = []string{"oracle_id", "mana_cost", "image_uris", "type_line", "cmc", "card_faces"}

	// every card_faces entry, whatever the layout
	faceFields = []string{"name", "mana_cost"}
	// every image_uris object, top-level or on a face
	imageFields = []string{"normal", "small", "png"}
)

// shapes is the decode-time dispatch table. Every layout the catalog uses
// has an entry; anything else is a SchemaError.
var shapes = map[Layout]shape{
	LayoutNormal:  {required: normalFields, new: func() Card { return &Normal{} }},
	LayoutMeld:    {required: normalFields, new: func() Card { return &Normal{} }},
	LayoutHost:    {required: normalFields, new: func() Card { return &Normal{} }},
	LayoutLeveler: {required: textFields, new: func() Card { return &Normal{} }},

	LayoutSaga:  {required: textFields, new: func() Card { return &Saga{} }},
	LayoutClass: {required: textFields, new: func() Card { return &Saga{} }},

	LayoutSplit:     {required: splitFields, minFaces: 2, new: func() Card { return &Split{} }},
	LayoutFlip:      {required: splitFields, faces: 2, new: func() Card { return &Split{} }},
	LayoutAdventure: {required: normalFields, new: func() Card { return &Adventure{} }},

	LayoutTransform:  {required: []string{"oracle_id", "type_line", "card_faces"}, faces: 2, new: func() Card { return &DoubleFaced{} }},
	LayoutModalDFC:   {required: []string{"oracle_id", "card_faces"}, faces: 2, new: func() Card { return &DoubleFaced{} }},
	LayoutReversible: {required: []string{"card_faces"}, faces: 2, new: func() Card { return &Reversible{} }},

	LayoutVanguard: {required: []string{"image_uris", "life_modifier", "hand_modifier"}, new: func() Card { return &Vanguard{} }},

	LayoutPlanar:           {new: func() Card { return &Unplayable{} }},
	LayoutScheme:           {new: func() Card { return &Unplayable{} }},
	LayoutToken:            {new: func() Card { return &Unplayable{} }},
	LayoutDoubleFacedToken: {new: func() Card { return &Unplayable{} }},
	LayoutEmblem:           {new: func() Card { return &Unplayable{} }},
	LayoutArtSeries:        {new: func() Card { return &Unplayable{} }},
	LayoutAugment:          {new: func() Card { return &Unplayable{} }},
}

// ParseLayout maps free-text layout to a known Layout. Matching ignores case,
// so "Class" and "class" are the same layout.
func ParseLayout(s string) (Layout, bool) {
	l := Layout(strings.ToLower(s))
	_, ok := shapes[l]
	return l, ok
}

// Layouts returns every recognized layout in sorted order
func Layouts() []Layout {
	out := make([]Layout, 0, len(shapes))
	for l := range shapes {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// Playable reports whether cards of this layout can be exported. Vanguard
// is playable; the seven layouts mapped to Unplayable are not.
func Playable(l Layout) bool {
	switch l {
	case LayoutPlanar, LayoutScheme, LayoutToken, LayoutDoubleFacedToken,
		LayoutEmblem, LayoutArtSeries, LayoutAugment:
		return false
	}
	_, ok := shapes[l]
	return ok
}
