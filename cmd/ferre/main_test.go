package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jhoicas/ferreteria-api/internal/domain/pricing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func line(field, value string) string {
	return fmt.Sprintf("  %-20s %s", field, value)
}

func TestRutValidar(t *testing.T) {
	out, _, err := run(t, "", "rut", "validar", "12.345.678-5", "123456785")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "12.345.678-5"))
	assert.Equal(t, 2, strings.Count(out, "válido"))
	assert.NotContains(t, out, "inválido")
}

func TestRutValidar_InvalidoDevuelveError(t *testing.T) {
	out, _, err := run(t, "", "rut", "validar", "12.345.678-5", "12.345.678-4", "0-0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 de 3")
	assert.Contains(t, out, "inválido")
	assert.Contains(t, out, "12.345.678-4")
	assert.Contains(t, out, "sin RUT")
}

func TestRutFormatear(t *testing.T) {
	out, _, err := run(t, "", "rut", "formatear", "123456785")
	require.NoError(t, err)
	assert.Equal(t, "12.345.678-5\n", out)
}

func TestRutDV(t *testing.T) {
	out, _, err := run(t, "", "rut", "dv", "12345678")
	require.NoError(t, err)
	assert.Equal(t, "12.345.678-5\n", out)

	out, _, err = run(t, "", "rut", "dv", "--solo-dv", "6")
	require.NoError(t, err)
	assert.Equal(t, "K\n", out)

	_, _, err = run(t, "", "rut", "dv", "abc")
	assert.Error(t, err)
}

func TestPrecioCalcular_DesdeNeto(t *testing.T) {
	out, _, err := run(t, "", "precio", "calcular", "--editado=costo_neto", "--costo-neto=1000", "--porcentaje-utilidad=20")
	require.NoError(t, err)
	assert.Contains(t, out, line("costo_bruto", "1190"))
	assert.Contains(t, out, line("precio_venta", "1200"))
}

func TestPrecioCalcular_JSON(t *testing.T) {
	out, _, err := run(t, "", "precio", "calcular", "--json",
		"--editado=precio_venta", "--precio-venta=1700", "--porcentaje-utilidad=20", "--utilidad-pesos=500")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1000", got["costo_neto"])
	assert.Equal(t, "1190", got["costo_bruto"])
	assert.Equal(t, "1700", got["precio_venta"])
}

func TestPrecioCalcular_CampoDesconocido(t *testing.T) {
	_, _, err := run(t, "", "precio", "calcular", "--editado=iva")
	assert.Error(t, err)
}

func TestPrecioEditar_AgrupaEdiciones(t *testing.T) {
	input := "costo_neto=1000\n# comentario\nporcentaje_utilidad=20\nbasura\nstock=3\n"
	out, errOut, err := run(t, input, "precio", "editar", "--espera=1h")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "recalculado:"))
	assert.Contains(t, out, "final:")
	assert.Equal(t, 2, strings.Count(out, line("precio_venta", "1200")))
	assert.Contains(t, errOut, `línea ignorada "basura"`)
	assert.Contains(t, errOut, `campo desconocido "stock"`)
}

func TestPrecioEditar_ListoTermina(t *testing.T) {
	out, _, err := run(t, "costo_bruto=2380\nlisto\ncosto_neto=5\n", "precio", "editar", "--espera=1h")
	require.NoError(t, err)
	assert.Contains(t, out, line("costo_neto", "2000"))
}

func TestRunEditor_RecalculaTrasEspera(t *testing.T) {
	var out, errOut bytes.Buffer
	pr, pw := io.Pipe()
	done := make(chan error, 1)
	go func() {
		done <- runEditor(pr, &out, &errOut, pricing.Record{}, 10*time.Millisecond)
	}()

	_, _ = pw.Write([]byte("costo_neto=1000\n"))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, pw.Close())
	require.NoError(t, <-done)

	// el recálculo ya ocurrió por la espera, Flush al final no repite
	assert.Equal(t, 1, strings.Count(out.String(), "recalculado:"))
	assert.Contains(t, out.String(), line("costo_bruto", "1190"))
}
