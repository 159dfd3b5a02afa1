package pricing

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ferreteria-api/pkg/debounce"
)

// DefaultDelay espera tras la última edición antes de recalcular.
const DefaultDelay = 300 * time.Millisecond

// Session edición interactiva de un Record. Las ediciones rápidas se agrupan y solo la
// última dispara Recompute; el campo editado se limpia apenas termina el recálculo.
type Session struct {
	mu       sync.Mutex
	record   Record
	source   EditSource
	deb      *debounce.Debouncer
	onChange func(Record)
}

// NewSession crea una sesión sobre initial. onChange recibe el registro tras cada recálculo.
func NewSession(initial Record, delay time.Duration, onChange func(Record)) *Session {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Session{
		record:   initial,
		deb:      debounce.New(delay),
		onChange: onChange,
	}
}

// Edit registra el nuevo valor de un campo y agenda el recálculo.
func (s *Session) Edit(src EditSource, v decimal.Decimal) {
	s.mu.Lock()
	s.record.Set(src, v)
	s.source = src
	s.mu.Unlock()

	s.deb.Debounce(s.apply)
}

// Flush recalcula ya si hay una edición pendiente.
func (s *Session) Flush() bool {
	return s.deb.Flush()
}

// Close descarta cualquier recálculo pendiente.
func (s *Session) Close() {
	s.deb.Cancel()
}

// Record devuelve el estado actual.
func (s *Session) Record() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// Source campo editado pendiente de recálculo (SourceNone si no hay).
func (s *Session) Source() EditSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

func (s *Session) apply() {
	s.mu.Lock()
	s.record = Recompute(s.source, s.record)
	s.source = SourceNone
	r := s.record
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange(r)
	}
}
