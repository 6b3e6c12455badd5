// Package oracle builds the Tabletop Simulator description block for a
// card: name and cost, type and rarity glyph, rules text with italic
// reminder text, and the stat lines that apply to the face.
package oracle

import (
	"fmt"
	"strconv"

	"github.com/arcanaland/ttsforge/internal/card"
)

// Normal renders a normal-family face: normal, meld, leveler and host
func Normal(f card.CardFace, rarity string) string {
	return render(
		always(bold(spaced(f.Name, f.ManaCost))),
		always(spaced(text(f.TypeLine), Rarity(rarity))),
		always(Italicize(text(f.OracleText))),
		when(f.Power != nil && f.Toughness != nil, bold(text(f.Power)+"/"+text(f.Toughness))),
		when(f.Loyalty != nil, bold(text(f.Loyalty))+" Starting Loyalty"),
	)
}

// Saga renders a saga or Class face. These carry no stats.
func Saga(f card.CardFace, rarity string) string {
	return render(
		always(bold(spaced(f.Name, f.ManaCost))),
		always(spaced(text(f.TypeLine), Rarity(rarity))),
		always(Italicize(text(f.OracleText))),
	)
}

// DoubleFaced renders both faces of a transform, modal_dfc, flip or
// reversible card, front first. With isReverse set the front block is
// dimmed to mark it as the face not in play.
func DoubleFaced(front, back card.CardFace, rarity string, isReverse bool) string {
	first := Normal(front, rarity)
	if isReverse {
		first = dim + first + endColor
	}
	return render(
		always(first),
		always(Normal(back, rarity)),
	)
}

// SplitAdventure renders split and adventure cards as consecutive blocks
// sharing the card's rarity. The first face always shows its rules text;
// later faces show rules text and stats only when that face has them.
func SplitAdventure(faces []card.CardFace, rarity string) string {
	blocks := make([]line, 0, len(faces))
	for i, f := range faces {
		blocks = append(blocks, always(render(
			always(bold(spaced(f.Name, f.ManaCost))),
			always(spaced(text(f.TypeLine), Rarity(rarity))),
			when(i == 0 || f.OracleText != nil, Italicize(text(f.OracleText))),
			when(f.Power != nil && f.Toughness != nil, bold(text(f.Power)+"/"+text(f.Toughness))),
		)))
	}
	return render(blocks...)
}

// Vanguard renders a vanguard card with its computed life and hand lines
func Vanguard(f card.CardFace, life, hand card.Modifier, rarity string) string {
	return render(
		always(bold(spaced(f.Name, f.ManaCost))),
		always(spaced(text(f.TypeLine), Rarity(rarity))),
		always(Italicize(text(f.OracleText))),
		always(fmt.Sprintf("Life: %s + 20 = %s", life, bold(strconv.Itoa(20+life.Value)))),
		always(fmt.Sprintf("Hand: %s + 7 = %s", hand, bold(strconv.Itoa(7+hand.Value)))),
	)
}

// Text returns the oracle block for a card, dispatched on its layout. For
// double-faced layouts face selects the card_faces entry being rendered;
// single-block layouts ignore it. Layouts with no text give "".
func Text(c card.Card, face int) string {
	rarity := c.Common().Rarity

	switch c.Common().Layout {
	case card.LayoutNormal, card.LayoutMeld, card.LayoutLeveler, card.LayoutHost:
		if n, ok := c.(*card.Normal); ok {
			return Normal(NormalFace(n), rarity)
		}
	case card.LayoutSaga, card.LayoutClass:
		if s, ok := c.(*card.Saga); ok {
			return Saga(SagaFace(s), rarity)
		}
	case card.LayoutSplit:
		if s, ok := c.(*card.Split); ok {
			return SplitAdventure(s.CardFaces, rarity)
		}
	case card.LayoutAdventure:
		if a, ok := c.(*card.Adventure); ok {
			return SplitAdventure(AdventureFaces(a), rarity)
		}
	case card.LayoutFlip:
		if s, ok := c.(*card.Split); ok {
			return doubleFaced(s.CardFaces, rarity, face)
		}
	case card.LayoutTransform, card.LayoutModalDFC:
		if d, ok := c.(*card.DoubleFaced); ok {
			return doubleFaced(d.CardFaces, rarity, face)
		}
	case card.LayoutReversible:
		if r, ok := c.(*card.Reversible); ok {
			return doubleFaced(r.CardFaces, rarity, face)
		}
	case card.LayoutVanguard:
		if v, ok := c.(*card.Vanguard); ok {
			return Vanguard(VanguardFace(v), v.LifeModifier, v.HandModifier, rarity)
		}
	}
	return ""
}

// doubleFaced renders a two-face card for the entry at index face. A
// missing face renders as an empty block.
func doubleFaced(faces []card.CardFace, rarity string, face int) string {
	return DoubleFaced(faceAt(faces, 0), faceAt(faces, 1), rarity, face == 0)
}

func faceAt(faces []card.CardFace, i int) card.CardFace {
	if i < len(faces) {
		return faces[i]
	}
	return card.CardFace{}
}
