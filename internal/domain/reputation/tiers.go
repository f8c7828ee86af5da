package reputation

// Tier is a named reputation band. Tiers are contiguous, non-overlapping
// and cover [0, +inf): the last tier is open-ended (Max < 0).
type Tier struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Title string `json:"title"`
	Badge string `json:"badge"`
}

// OpenEnded marks the Max of the top tier.
const OpenEnded = -1

var tiers = []Tier{
	{Min: 0, Max: 99, Title: "Novato", Badge: "🌱"},
	{Min: 100, Max: 299, Title: "Aprendiz", Badge: "📚"},
	{Min: 300, Max: 599, Title: "Profissional", Badge: "💼"},
	{Min: 600, Max: 999, Title: "Especialista", Badge: "⭐"},
	{Min: 1000, Max: OpenEnded, Title: "Mestre", Badge: "👑"},
}

// Tiers returns the full sorted tier table.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

func (t Tier) contains(score int) bool {
	if score < t.Min {
		return false
	}
	return t.Max == OpenEnded || score <= t.Max
}

// Lookup returns the single tier containing score. Negative scores collapse
// to the lowest tier.
func Lookup(score int) Tier {
	if score < 0 {
		return tiers[0]
	}
	for _, t := range tiers {
		if t.contains(score) {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// Next returns the tier above score, if any.
func Next(score int) (Tier, bool) {
	for _, t := range tiers {
		if t.Min > score {
			return t, true
		}
	}
	return Tier{}, false
}

// Progress reports how far score has advanced through its current tier,
// in [0,1]. The open-ended top tier always reports 1.
func Progress(score int) float64 {
	cur := Lookup(score)
	if cur.Max == OpenEnded {
		return 1
	}
	span := cur.Max - cur.Min + 1
	if span <= 0 {
		return 1
	}
	return float64(score-cur.Min) / float64(span)
}
