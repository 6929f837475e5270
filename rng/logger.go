package rng

import "log"

type LogKind int

const (
	// LogSeeded - construction drew a seed from an entropy source.
	// v[0] is the seed; record it to replay the run later.
	LogSeeded LogKind = iota
	LogMAX
)

// Logger is a hook for custom logging.
type Logger interface {
	Report(event LogKind, r *Rng, v ...interface{})
}

type defaultLogger struct{}

func (d defaultLogger) Report(event LogKind, r *Rng, v ...interface{}) {
	switch event {
	case LogSeeded:
		seed := v[0].(uint32)
		log.Printf("dprng: seeded from entropy source (seed 0x%07x)", seed)
	default:
		args := []interface{}{"dprng: unexpected event:", event, r}
		args = append(args, v...)
		log.Print(args...)
	}
}

// NoopLogger discards all events.
type NoopLogger struct{}

// Report implements Logger.
func (d NoopLogger) Report(event LogKind, r *Rng, v ...interface{}) {}
