package enumerator

// EnumerationMode selects the enumeration strategy (spec.md §4.5). The
// geometric enumerator implements only Detailed.
type EnumerationMode string

const (
	EnumerationModeDetailed EnumerationMode = "detailed"
)

// ThreeWayMode selects the three-way migration rule. The enum is total
// over every mode enumerator_original.py accepted (SPEC_FULL.md §C.1),
// but the geometric enumerator's behavior is partial: only
// ThreeWayModeAdjacent is implemented.
type ThreeWayMode string

const (
	ThreeWayModeAdjacent       ThreeWayMode = "adjacent"
	ThreeWayModeAnchoredSTRGSD ThreeWayMode = "anchored_strgsd"
)

// UnbindingMode selects the unbinding rule. As with ThreeWayMode, the enum
// accepts every enumerator_original.py value but only
// UnbindingModeAdjacent is implemented here.
type UnbindingMode string

const (
	UnbindingModeAdjacent UnbindingMode = "adjacent"
	UnbindingModeInfinite UnbindingMode = "infinite"
)

// Rates holds the four positive reaction-rate constants of spec.md §4.5.
type Rates struct {
	Bind     float64
	Unbind   float64
	Migrate  float64
	Displace float64
}

// Settings configures an Enumerator (spec.md §4.5, validated at
// construction).
type Settings struct {
	EnumerationMode EnumerationMode
	ThreeWayMode    ThreeWayMode
	UnbindingMode   UnbindingMode
	MaxComplexSize  int
	Rate            Rates
}

// Validate checks s against spec.md §4.5's settings contract, returning a
// fatal error (ErrInvalidSettings or ErrModeNotSupported) on failure.
func (s Settings) Validate() error {
	if s.EnumerationMode != EnumerationModeDetailed {
		return invalidSettingsf("unknown enumerationMode %q", s.EnumerationMode)
	}
	switch s.ThreeWayMode {
	case ThreeWayModeAdjacent:
	case ThreeWayModeAnchoredSTRGSD:
		return modeNotSupportedf("threeWayMode %q", s.ThreeWayMode)
	default:
		return invalidSettingsf("unknown threeWayMode %q", s.ThreeWayMode)
	}
	switch s.UnbindingMode {
	case UnbindingModeAdjacent:
	case UnbindingModeInfinite:
		return modeNotSupportedf("unbindingMode %q", s.UnbindingMode)
	default:
		return invalidSettingsf("unknown unbindingMode %q", s.UnbindingMode)
	}
	if s.MaxComplexSize <= 0 {
		return invalidSettingsf("maxComplexSize must be positive, found %d", s.MaxComplexSize)
	}
	for name, rate := range map[string]float64{
		"bind": s.Rate.Bind, "unbind": s.Rate.Unbind,
		"migrate": s.Rate.Migrate, "displace": s.Rate.Displace,
	} {
		if rate <= 0 {
			return invalidSettingsf("rate %q must be positive, found %v", name, rate)
		}
	}
	return nil
}
