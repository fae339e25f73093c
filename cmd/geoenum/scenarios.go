package main

// scenario is one named, self-contained end-to-end case from spec.md §8:
// a process, its domain lengths, and whether building the initial
// species set is expected to fail (scenario 6's zero-nucleotide loop).
type scenario struct {
	name        string
	process     string
	lengths     string
	expectError bool
	describe    string
}

// scenarios is the built-in registry the harness runs when given no
// positional arguments, in spec.md §8's order.
var scenarios = []scenario{
	{
		name:     "toehold-free-binding",
		process:  "(<x> | <x*>)",
		lengths:  "longDomain x length 20",
		describe: "2 species, 1 irreversible binding reaction (no toehold to unbind)",
	},
	{
		name:     "toehold-reversible-binding",
		process:  "(<t^> | <t^*>)",
		lengths:  "toeholdDomain t length 5",
		describe: "2 species, 1 reversible binding reaction",
	},
	{
		name:     "toehold-mediated-strand-displacement",
		process:  "(<t^ x> | <x!i> | <x*!i t^*>)",
		lengths:  "toeholdDomain t length 5 longDomain x length 20",
		describe: "toehold binding followed by 3-way migration displacing <x>",
	},
	{
		name:     "three-way-branch-migration",
		process:  "(<A!1> | <A B!2> | <B*!2 A*!1>)",
		lengths:  "longDomain A length 20 longDomain B length 20",
		describe: "3-way migration between two A-bound strands",
	},
	{
		name:     "loop-closure-geometric-discriminator",
		process:  "(<x!i1 spcr1^ y* spcr2^ x*!i1> | <y>)",
		lengths:  "longDomain x length 20 toeholdDomain spcr1 length 6 toeholdDomain spcr2 length 6 longDomain y length 20",
		describe: "free <y> binds inside the loop only if plausibility accepts the geometry",
	},
	{
		name:        "zero-nucleotide-loop-rejected",
		process:     "(<t^ t^*>)",
		lengths:     "toeholdDomain t length 14",
		expectError: true,
		describe:    "zero-nucleotide-loop detector rejects the input before enumeration begins",
	},
	// The two scenarios below are not in spec.md §8; they are regression
	// cases carried over from the original implementation's scenario
	// table (SPEC_FULL.md §C.4).
	{
		name:     "four-way-holliday-junction",
		process:  "( <C!1 A!2 B> | <B!3 D!4> | <D*!4 B*!3 A*!2 C*!1> )",
		lengths:  "longDomain A length 20 longDomain B length 20 longDomain C length 20 longDomain D length 20",
		describe: "three-strand complex with four bound pairs and a free B; the four-way pattern search runs on it, and the free B can take over B* by three-way migration",
	},
	{
		name:     "three-way-migration-ring",
		process:  "(<B!1> | <B*!1 A*!2> | <A!2 B> )",
		lengths:  "longDomain A length 20 longDomain B length 20",
		describe: "three-strand chain whose third strand carries a free B; that B displaces <B> by three-way migration",
	},
}

func scenarioByName(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}
