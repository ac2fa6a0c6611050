package trace

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Span names recorded by the UI.
const (
	SpanSession    = "session"    // Program start to quit
	SpanLoader     = "loader"     // Splash shown until removal
	SpanTransition = "transition" // Panel request to reveal, or supersede/cancel
	SpanModal      = "modal"      // Overlay open to dismissal
)

// Span is one recorded interval.
type Span struct {
	TraceID    string
	SpanID     string
	ParentID   string
	Name       string
	StartTime  time.Time
	Duration   time.Duration // Zero while in progress
	Attributes map[string]string
	Children   []*Span
}

// Trace is the session tree handed to an exporter.
type Trace struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	RootSpan  *Span
	Status    string // "running" or "completed"
}

// NewTraceID generates a random 16-byte trace ID as hex string (32 characters)
func NewTraceID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// NewSpanID generates a random 8-byte span ID as hex string (16 characters)
func NewSpanID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
