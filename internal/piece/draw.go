package piece

// SpecialChance is the combined probability of drawing a special piece.
const SpecialChance = 0.1

// Rand is the slice of *rand.Rand (math/rand/v2) the game draws from.
// Tests substitute scripted sources.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Draw picks the next kind: 10% special (split evenly between paint and
// bomb), otherwise a uniformly random standard kind.
func Draw(r Rand) Kind {
	if r.Float64() < SpecialChance {
		return SpecialKinds[r.IntN(len(SpecialKinds))]
	}
	return StandardKinds[r.IntN(len(StandardKinds))]
}

// RandomStandard picks a uniformly random standard kind.
func RandomStandard(r Rand) Kind {
	return StandardKinds[r.IntN(len(StandardKinds))]
}
