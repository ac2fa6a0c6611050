package trace

import (
	"context"
	"sync"
	"time"
)

// Exporter receives the completed session trace.
type Exporter interface {
	ExportTrace(ctx context.Context, t *Trace) error
	Shutdown(ctx context.Context) error
}

// Recorder records choreography spans under one session root.
// Open spans are keyed so a caller can end them later by key.
type Recorder struct {
	mu       sync.Mutex
	trace    *Trace
	pending  map[string]*Span // key -> open span
	recent   []*Span          // Ring buffer of completed spans, oldest first
	maxSpans int
	exporter Exporter
	now      func() time.Time
}

// NewRecorder starts a session trace. exporter may be nil.
func NewRecorder(maxSpans int, exporter Exporter) *Recorder {
	if maxSpans <= 0 {
		maxSpans = 32
	}
	return newRecorder(maxSpans, exporter, time.Now)
}

func newRecorder(maxSpans int, exporter Exporter, now func() time.Time) *Recorder {
	start := now()
	id := NewTraceID()
	return &Recorder{
		trace: &Trace{
			ID:        id,
			StartTime: start,
			Status:    "running",
			RootSpan: &Span{
				TraceID:    id,
				SpanID:     NewSpanID(),
				Name:       SpanSession,
				StartTime:  start,
				Attributes: map[string]string{},
			},
		},
		pending:  make(map[string]*Span),
		recent:   make([]*Span, 0, maxSpans),
		maxSpans: maxSpans,
		exporter: exporter,
		now:      now,
	}
}

// Start opens a span under the session root. If key is already open, the
// previous span is ended with outcome "superseded".
func (r *Recorder) Start(key, name string, attrs map[string]string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.pending[key]; ok {
		r.finish(key, prev, map[string]string{"outcome": "superseded"})
	}
	root := r.trace.RootSpan
	span := &Span{
		TraceID:    r.trace.ID,
		SpanID:     NewSpanID(),
		ParentID:   root.SpanID,
		Name:       name,
		StartTime:  r.now(),
		Attributes: make(map[string]string, len(attrs)),
	}
	for k, v := range attrs {
		span.Attributes[k] = v
	}
	root.Children = append(root.Children, span)
	r.pending[key] = span
}

// End closes the span open under key and merges attrs into it.
// It returns nil if nothing is open under key.
func (r *Recorder) End(key string, attrs map[string]string) *Span {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	span, ok := r.pending[key]
	if !ok {
		return nil
	}
	r.finish(key, span, attrs)
	return span
}

// finish must be called with r.mu held.
func (r *Recorder) finish(key string, span *Span, attrs map[string]string) {
	delete(r.pending, key)
	for k, v := range attrs {
		span.Attributes[k] = v
	}
	span.Duration = r.now().Sub(span.StartTime)
	if span.Duration <= 0 {
		span.Duration = time.Nanosecond
	}
	r.recent = append(r.recent, span)
	if len(r.recent) > r.maxSpans {
		r.recent = r.recent[1:]
	}
}

// Open reports whether a span is open under key.
func (r *Recorder) Open(key string) bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[key]
	return ok
}

// Recent returns completed spans, newest first.
func (r *Recorder) Recent() []*Span {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Span, 0, len(r.recent))
	for i := len(r.recent) - 1; i >= 0; i-- {
		out = append(out, r.recent[i])
	}
	return out
}

// Close ends every open span and the session, exports the trace, and shuts
// the exporter down.
func (r *Recorder) Close(ctx context.Context) error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	for key, span := range r.pending {
		r.finish(key, span, map[string]string{"outcome": "interrupted"})
	}
	end := r.now()
	r.trace.EndTime = end
	r.trace.Status = "completed"
	r.trace.RootSpan.Duration = end.Sub(r.trace.StartTime)
	t := r.trace
	exp := r.exporter
	r.mu.Unlock()

	if exp == nil {
		return nil
	}
	if err := exp.ExportTrace(ctx, t); err != nil {
		_ = exp.Shutdown(ctx)
		return err
	}
	return exp.Shutdown(ctx)
}
