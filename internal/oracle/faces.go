package oracle

import "github.com/arcanaland/ttsforge/internal/card"

// NormalFace views a normal-family card as a single face
func NormalFace(n *card.Normal) card.CardFace {
	return card.CardFace{
		Name:       n.Name,
		ManaCost:   n.ManaCost,
		TypeLine:   &n.TypeLine,
		OracleText: n.OracleText,
		Power:      n.Power,
		Toughness:  n.Toughness,
		Loyalty:    n.Loyalty,
	}
}

// SagaFace views a saga or Class card as a single face
func SagaFace(s *card.Saga) card.CardFace {
	return card.CardFace{
		Name:       s.Name,
		ManaCost:   s.ManaCost,
		TypeLine:   &s.TypeLine,
		OracleText: &s.OracleText,
	}
}

// AdventureFaces returns the creature and adventure faces. An adventure
// without card_faces is rendered from its top-level fields alone.
func AdventureFaces(a *card.Adventure) []card.CardFace {
	if len(a.CardFaces) > 0 {
		return a.CardFaces
	}
	return []card.CardFace{{
		Name:       a.Name,
		ManaCost:   a.ManaCost,
		TypeLine:   &a.TypeLine,
		OracleText: a.OracleText,
		Power:      a.Power,
		Toughness:  a.Toughness,
	}}
}

// VanguardFace views a vanguard card as a face; an absent mana cost is ""
func VanguardFace(v *card.Vanguard) card.CardFace {
	f := card.CardFace{
		Name:       v.Name,
		TypeLine:   v.TypeLine,
		OracleText: v.OracleText,
	}
	if v.ManaCost != nil {
		f.ManaCost = *v.ManaCost
	}
	return f
}
