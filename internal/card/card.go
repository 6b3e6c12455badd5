package card

// ImageURIs holds the image links for one face or one single-faced card
type ImageURIs struct {
	Normal string `json:"normal"`
	Small  string `json:"small"`
	PNG    string `json:"png"`
}

// CardFace is one printed face of a multi-faced card. Optional fields are
// nil when the catalog omits them.
type CardFace struct {
	Name       string     `json:"name"`
	ManaCost   string     `json:"mana_cost"`
	OracleID   *string    `json:"oracle_id"`
	TypeLine   *string    `json:"type_line"`
	CMC        *float64   `json:"cmc"`
	Loyalty    *string    `json:"loyalty"`
	ImageURIs  *ImageURIs `json:"image_uris"`
	OracleText *string    `json:"oracle_text"`
	Power      *string    `json:"power"`
	Toughness  *string    `json:"toughness"`
}

// Base carries the fields every catalog record has regardless of layout
type Base struct {
	Name            string `json:"name"`
	Set             string `json:"set"`
	CollectorNumber string `json:"collector_number"`
	Rarity          string `json:"rarity"`

	// Layout is the case-folded discriminant the record was decoded under
	Layout Layout `json:"-"`
}

// Common returns the shared base of a record
func (b *Base) Common() *Base { return b }

// Key returns the (collector number, set) pair identifying the printing
func (b *Base) Key() Key {
	return Key{CollectorNumber: b.CollectorNumber, Set: b.Set}
}

func (b *Base) card() {}

// Card is a decoded catalog record. The concrete type is one of the variant
// structs below; the set is closed.
type Card interface {
	Common() *Base
	Key() Key
	card()
}

// Normal covers normal, meld, leveler and host cards
type Normal struct {
	Base
	OracleID   string    `json:"oracle_id"`
	ManaCost   string    `json:"mana_cost"`
	ImageURIs  ImageURIs `json:"image_uris"`
	TypeLine   string    `json:"type_line"`
	CMC        float64   `json:"cmc"`
	Loyalty    *string   `json:"loyalty"`
	OracleText *string   `json:"oracle_text"`
	Power      *string   `json:"power"`
	Toughness  *string   `json:"toughness"`
}

// Saga covers saga and Class cards, which never carry stats
type Saga struct {
	Base
	OracleID   string    `json:"oracle_id"`
	ManaCost   string    `json:"mana_cost"`
	ImageURIs  ImageURIs `json:"image_uris"`
	TypeLine   string    `json:"type_line"`
	CMC        float64   `json:"cmc"`
	OracleText string    `json:"oracle_text"`
}

// Split covers split and flip cards: one image, faces listed in card_faces
type Split struct {
	Base
	OracleID  string     `json:"oracle_id"`
	ManaCost  string     `json:"mana_cost"`
	ImageURIs ImageURIs  `json:"image_uris"`
	TypeLine  string     `json:"type_line"`
	CMC       float64    `json:"cmc"`
	CardFaces []CardFace `json:"card_faces"`
}

// Adventure is a creature card carrying an adventure spell face
type Adventure struct {
	Base
	OracleID   string     `json:"oracle_id"`
	ManaCost   string     `json:"mana_cost"`
	ImageURIs  ImageURIs  `json:"image_uris"`
	TypeLine   string     `json:"type_line"`
	CMC        float64    `json:"cmc"`
	OracleText *string    `json:"oracle_text"`
	Power      *string    `json:"power"`
	Toughness  *string    `json:"toughness"`
	CardFaces  []CardFace `json:"card_faces"`
}

// DoubleFaced covers transform and modal_dfc cards. CardFaces always holds
// exactly two entries after decode.
type DoubleFaced struct {
	Base
	OracleID  string     `json:"oracle_id"`
	TypeLine  *string    `json:"type_line"`
	CMC       *float64   `json:"cmc"`
	CardFaces []CardFace `json:"card_faces"`
}

// Reversible is a reversible_card: two independent card-like faces
type Reversible struct {
	Base
	CardFaces []CardFace `json:"card_faces"`
}

// Vanguard carries life and hand modifiers instead of a mana cost
type Vanguard struct {
	Base
	ManaCost     *string   `json:"mana_cost"`
	TypeLine     *string   `json:"type_line"`
	OracleText   *string   `json:"oracle_text"`
	ImageURIs    ImageURIs `json:"image_uris"`
	OracleID     *string   `json:"oracle_id"`
	CMC          *float64  `json:"cmc"`
	LifeModifier Modifier  `json:"life_modifier"`
	HandModifier Modifier  `json:"hand_modifier"`
}

// Unplayable covers planes, schemes, tokens, emblems, art cards and
// augments. Only the base fields are kept.
type Unplayable struct {
	Base
}
