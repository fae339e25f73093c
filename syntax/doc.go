// Package syntax implements spec.md §6's surface syntax: a hand-written
// lexer and recursive-descent parser for the process grammar
// ("(<x> | <x*>)"), and a whitespace-delimited parser for the
// domain-length declaration format ("toeholdDomain t length 5").
package syntax
