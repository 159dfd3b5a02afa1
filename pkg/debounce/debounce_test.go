package debounce_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/jhoicas/ferreteria-api/pkg/debounce"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDebouncer_UnaLlamada(t *testing.T) {
	var called int32
	d := debounce.New(20 * time.Millisecond)

	d.Debounce(func() { atomic.AddInt32(&called, 1) })

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&called) == 1 },
		time.Second, 5*time.Millisecond)
	assert.False(t, d.Pending())
}

func TestDebouncer_LlamadasRapidasEjecutanLaUltima(t *testing.T) {
	var called, last int32
	d := debounce.New(50 * time.Millisecond)

	for i := int32(1); i <= 10; i++ {
		v := i
		d.Debounce(func() {
			atomic.StoreInt32(&last, v)
			atomic.AddInt32(&called, 1)
		})
		time.Sleep(2 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&called) == 1 },
		time.Second, 5*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&called), "solo debe ejecutarse una vez")
	assert.Equal(t, int32(10), atomic.LoadInt32(&last))
}

func TestDebouncer_Cancel(t *testing.T) {
	var called int32
	d := debounce.New(30 * time.Millisecond)

	d.Debounce(func() { atomic.AddInt32(&called, 1) })
	d.Cancel()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&called))
}

func TestDebouncer_Flush(t *testing.T) {
	var called int32
	d := debounce.New(time.Hour)

	assert.False(t, d.Flush(), "sin llamada pendiente")

	d.Debounce(func() { atomic.AddInt32(&called, 1) })
	assert.True(t, d.Pending())
	assert.True(t, d.Flush())
	assert.Equal(t, int32(1), atomic.LoadInt32(&called))
	assert.False(t, d.Flush(), "Flush no debe repetir la llamada")
}

func TestDebouncer_Immediate(t *testing.T) {
	var pending, now int32
	d := debounce.New(30 * time.Millisecond)

	d.Debounce(func() { atomic.AddInt32(&pending, 1) })
	d.Immediate(func() { atomic.AddInt32(&now, 1) })

	assert.Equal(t, int32(1), atomic.LoadInt32(&now))
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&pending), "Immediate cancela lo pendiente")
}

func TestDebouncer_FlushEsperaEjecucionEnCurso(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var finished int32
	d := debounce.New(time.Millisecond)

	d.Debounce(func() {
		close(started)
		<-release
		atomic.StoreInt32(&finished, 1)
	})
	<-started

	flushed := make(chan bool, 1)
	go func() { flushed <- d.Flush() }()

	select {
	case <-flushed:
		t.Fatal("Flush volvió con la ejecución del timer todavía en curso")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	assert.False(t, <-flushed, "no había llamada pendiente")
	assert.Equal(t, int32(1), atomic.LoadInt32(&finished))
}
