package crn

import "errors"

// ErrUnknownSpecies is returned when a reaction references a species not
// present in the CRN's species list (violates spec.md §8's "every species
// referenced by any reaction is in the CRN's species set").
var ErrUnknownSpecies = errors.New("crn: reaction references a species outside the CRN's species set")
