// Package xlog wraps logrus with the fields an enumerator run needs on
// every log line: the run's RNG seed and a settings hash, so a log
// stream can be correlated back to the exact run that produced it.
package xlog
