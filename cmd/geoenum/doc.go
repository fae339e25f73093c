// Command geoenum is the reference test harness of spec.md §6: it runs
// one or more named scenarios through the geometric enumerator and
// prints the resulting CRN.
package main
