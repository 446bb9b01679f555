package piece

import "fmt"

// Kind identifies one of the nine piece types.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
	KindPaint
	KindBomb
)

// Effect is what a special piece does when it locks.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectPaint
	EffectBomb
)

// Definition is the immutable description of a piece kind.
type Definition struct {
	Kind    Kind
	Shape   Matrix
	Color   string
	Special bool
	Effect  Effect
}

var kindLetters = [...]byte{'I', 'J', 'L', 'O', 'S', 'T', 'Z', 'P', 'B'}

// StandardKinds lists the seven regular tetrominoes in catalog order.
var StandardKinds = []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// SpecialKinds lists the two effect pieces.
var SpecialKinds = []Kind{KindPaint, KindBomb}

var catalog = [...]Definition{
	KindI: {Kind: KindI, Color: "i-block-color", Shape: shape(
		"....",
		"####",
		"....",
		"....",
	)},
	KindJ: {Kind: KindJ, Color: "j-block-color", Shape: shape(
		"#..",
		"###",
		"...",
	)},
	KindL: {Kind: KindL, Color: "l-block-color", Shape: shape(
		"..#",
		"###",
		"...",
	)},
	KindO: {Kind: KindO, Color: "o-block-color", Shape: shape(
		"##",
		"##",
	)},
	KindS: {Kind: KindS, Color: "s-block-color", Shape: shape(
		".##",
		"##.",
		"...",
	)},
	KindT: {Kind: KindT, Color: "t-block-color", Shape: shape(
		".#.",
		"###",
		"...",
	)},
	KindZ: {Kind: KindZ, Color: "z-block-color", Shape: shape(
		"##.",
		".##",
		"...",
	)},
	KindPaint: {Kind: KindPaint, Color: "rainbow-gradient", Special: true, Effect: EffectPaint, Shape: shape(
		".#.",
		"###",
		"...",
	)},
	KindBomb: {Kind: KindBomb, Color: "#FF4500", Special: true, Effect: EffectBomb, Shape: shape(
		".#.",
		"###",
		".#.",
	)},
}

// Lookup returns the definition of kind. The shape is a fresh copy so
// callers may rotate it freely.
func Lookup(kind Kind) Definition {
	def := catalog[kind]
	def.Shape = def.Shape.Clone()
	return def
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return int(k) < len(catalog)
}

// Special reports whether k is one of the effect pieces.
func (k Kind) Special() bool {
	return k.Valid() && catalog[k].Special
}

// Effect returns the lock effect of k.
func (k Kind) Effect() Effect {
	if !k.Valid() {
		return EffectNone
	}
	return catalog[k].Effect
}

// Color returns the base color token of k.
func (k Kind) Color() string {
	if !k.Valid() {
		return ""
	}
	return catalog[k].Color
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return string(kindLetters[k])
}

// ParseKind maps a single letter (as printed by String) back to its kind.
func ParseKind(r rune) (Kind, bool) {
	for i, l := range kindLetters {
		if rune(l) == r {
			return Kind(i), true
		}
	}
	return 0, false
}

func (e Effect) String() string {
	switch e {
	case EffectPaint:
		return "paint"
	case EffectBomb:
		return "bomb"
	default:
		return "none"
	}
}
