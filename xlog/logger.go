package xlog

import (
	"github.com/sirupsen/logrus"
)

// Logger wraps a *logrus.Entry pre-populated with run-identifying fields
// (spec.md's enumerator run = a fixed seed + settings pair).
type Logger struct {
	entry *logrus.Entry
}

// New builds a Logger at Info level, with verbose enabling Debug.
func New(verbose bool) *Logger {
	l := logrus.New()
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return &Logger{entry: logrus.NewEntry(l)}
}

// WithRun returns a Logger whose fields include the run's seed and a
// settings hash, attached to every subsequent log line.
func (l *Logger) WithRun(seed int64, settingsHash string) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields{
		"seed":          seed,
		"settings_hash": settingsHash,
	})}
}

// SpeciesProcessed logs one Debug event per species popped off the
// enumerator's worklist.
func (l *Logger) SpeciesProcessed(key string, numVertices int) {
	l.entry.WithFields(logrus.Fields{"species": key, "vertices": numVertices}).Debug("species processed")
}

// ReactionEmitted logs one Info event per reaction the enumerator adds
// to the CRN.
func (l *Logger) ReactionEmitted(kind string, reactants, products int) {
	l.entry.WithFields(logrus.Fields{"kind": kind, "reactants": reactants, "products": products}).Info("reaction emitted")
}

// ComplexSizeExceeded logs the fatal maxComplexSize violation at Error,
// before the caller aborts the run.
func (l *Logger) ComplexSizeExceeded(speciesKey string, size, max int) {
	l.entry.WithFields(logrus.Fields{"species": speciesKey, "size": size, "max": max}).Error("maxComplexSize exceeded")
}

// SamplingTrial logs the outcome of one constraint-checker sampling run
// and the number of trials it used, at Debug; it is logged once per run,
// not from inside the sampling loop.
func (l *Logger) SamplingTrial(plausible bool, trialsUsed int) {
	l.entry.WithFields(logrus.Fields{"plausible": plausible, "trials": trialsUsed}).Debug("sampling trial")
}
