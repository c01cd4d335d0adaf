package types

// Play modes. Every level is tracked once per mode.
type Mode string

const (
	ModeNormal  Mode = "normalMode"
	ModeNVerted Mode = "nVertedMode"
)

// GemKey identifies one of the six gem flags within a GemSet.
type GemKey string

const (
	GemWumpa40       GemKey = "wumpa40"
	GemWumpa60       GemKey = "wumpa60"
	GemWumpa80       GemKey = "wumpa80"
	GemAllCrates     GemKey = "allCrates"
	GemDeaths3OrLess GemKey = "deaths3OrLess"
	GemHiddenGem     GemKey = "hiddenGem"
)

// GemKeys lists the gem flags in display order.
var GemKeys = []GemKey{
	GemWumpa40,
	GemWumpa60,
	GemWumpa80,
	GemAllCrates,
	GemDeaths3OrLess,
	GemHiddenGem,
}

// GemsPerMode is the number of gem flags per play mode.
const GemsPerMode = 6

// GemSet holds the six gem completion flags for one play mode.
// Flags are independent: setting wumpa80 does not imply wumpa40 or
// wumpa60. Any such implication is a presentation choice, not a model
// rule.
type GemSet struct {
	Wumpa40       bool `json:"wumpa40"`
	Wumpa60       bool `json:"wumpa60"`
	Wumpa80       bool `json:"wumpa80"`
	AllCrates     bool `json:"allCrates"`
	Deaths3OrLess bool `json:"deaths3OrLess"`
	HiddenGem     bool `json:"hiddenGem"`
}

// Flag returns the value of a single gem flag.
// Returns ErrUnknownGemKey if the key is not recognized.
func (g GemSet) Flag(key GemKey) (bool, error) {
	switch key {
	case GemWumpa40:
		return g.Wumpa40, nil
	case GemWumpa60:
		return g.Wumpa60, nil
	case GemWumpa80:
		return g.Wumpa80, nil
	case GemAllCrates:
		return g.AllCrates, nil
	case GemDeaths3OrLess:
		return g.Deaths3OrLess, nil
	case GemHiddenGem:
		return g.HiddenGem, nil
	default:
		return false, ErrUnknownGemKey
	}
}

// WithFlag returns a copy of the set with one flag replaced. No other
// flag is touched. Returns ErrUnknownGemKey if the key is not recognized.
func (g GemSet) WithFlag(key GemKey, value bool) (GemSet, error) {
	switch key {
	case GemWumpa40:
		g.Wumpa40 = value
	case GemWumpa60:
		g.Wumpa60 = value
	case GemWumpa80:
		g.Wumpa80 = value
	case GemAllCrates:
		g.AllCrates = value
	case GemDeaths3OrLess:
		g.Deaths3OrLess = value
	case GemHiddenGem:
		g.HiddenGem = value
	default:
		return g, ErrUnknownGemKey
	}
	return g, nil
}

// Count returns the number of flags currently set.
func (g GemSet) Count() int {
	n := 0
	for _, key := range GemKeys {
		if v, _ := g.Flag(key); v {
			n++
		}
	}
	return n
}
