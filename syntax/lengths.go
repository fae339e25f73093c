package syntax

import (
	"strconv"
	"strings"

	"github.com/dnastrand/geoenum/domain"
)

// ParseLengthMap parses src as a whitespace-separated sequence of
// declarations "toeholdDomain NAME length INT" or "longDomain NAME length
// INT" (spec.md §6), returning the name->length map.
func ParseLengthMap(src string) (domain.LengthMap, error) {
	fields := strings.Fields(src)
	out := domain.LengthMap{}
	i := 0
	line := 1
	for i < len(fields) {
		kind := fields[i]
		var toehold bool
		switch kind {
		case "toeholdDomain":
			toehold = true
		case "longDomain":
			toehold = false
		default:
			return nil, syntaxErrorf(line, "expected 'toeholdDomain' or 'longDomain', found %q", kind)
		}
		if i+3 >= len(fields) {
			return nil, syntaxErrorf(line, "truncated domain-length declaration after %q", kind)
		}
		name := fields[i+1]
		if fields[i+2] != "length" {
			return nil, syntaxErrorf(line, "expected 'length', found %q", fields[i+2])
		}
		n, err := strconv.Atoi(fields[i+3])
		if err != nil {
			return nil, syntaxErrorf(line, "invalid length %q for domain %q", fields[i+3], name)
		}
		out[name] = domain.LengthEntry{Length: n, Toehold: toehold}
		i += 4
	}
	return out, nil
}
