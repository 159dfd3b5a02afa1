// Package debounce agrupa llamadas rápidas y ejecuta solo la última.
package debounce

import (
	"sync"
	"time"
)

// Debouncer ejecuta la última función recibida cuando pasa la espera sin llamadas nuevas.
type Debouncer struct {
	mu       sync.Mutex
	idle     *sync.Cond // señala cuando running vuelve a 0
	timer    *time.Timer
	duration time.Duration
	pending  func()
	gen      uint64
	running  int
}

// New crea un debouncer con la espera indicada.
func New(duration time.Duration) *Debouncer {
	d := &Debouncer{duration: duration}
	d.idle = sync.NewCond(&d.mu)
	return d
}

// Debounce programa fn. Cada llamada reinicia la espera y reemplaza la función pendiente.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = fn
	d.timer = time.AfterFunc(d.duration, func() { d.fire(gen) })
}

// un timer detenido tarde puede disparar igual; gen descarta esas ejecuciones
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.running++
	d.mu.Unlock()

	defer d.done()
	fn()
}

func (d *Debouncer) done() {
	d.mu.Lock()
	d.running--
	if d.running == 0 {
		d.idle.Broadcast()
	}
	d.mu.Unlock()
}

// Cancel descarta la llamada pendiente, si existe.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Flush ejecuta ya la llamada pendiente y espera a la que el timer tenga en curso, así al
// volver no queda nada corriendo. Devuelve false si no había ninguna pendiente.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.pending
	d.stopLocked()
	for d.running > 0 {
		d.idle.Wait()
	}
	if fn != nil {
		d.running++
	}
	d.mu.Unlock()

	if fn == nil {
		return false
	}
	defer d.done()
	fn()
	return true
}

// Immediate cancela lo pendiente y ejecuta fn en el acto.
func (d *Debouncer) Immediate(fn func()) {
	d.Cancel()
	fn()
}

// Pending indica si hay una llamada esperando.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
	d.gen++
}
