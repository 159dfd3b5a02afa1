package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ferreteria-api/internal/domain/pricing"
	"github.com/jhoicas/ferreteria-api/pkg/config"
)

// orden en que se muestran los campos, igual que en el formulario de inventario
var fieldOrder = []string{
	pricing.FieldGrossCost,
	pricing.FieldNetCost,
	pricing.FieldMarginPercent,
	pricing.FieldMarginAmount,
	pricing.FieldFinalPrice,
}

// priceFlags valores iniciales de los cinco campos, tal como se escriben en el formulario.
type priceFlags struct {
	values map[string]*string
}

func bindPriceFlags(cmd *cobra.Command) *priceFlags {
	pf := &priceFlags{values: make(map[string]*string, len(fieldOrder))}
	for _, field := range fieldOrder {
		name := strings.ReplaceAll(field, "_", "-")
		pf.values[field] = cmd.Flags().String(name, "", field)
	}
	return pf
}

func (pf *priceFlags) record() pricing.Record {
	form := make(map[string]string, len(pf.values))
	for field, v := range pf.values {
		form[field] = *v
	}
	return pricing.RecordFromForm(form)
}

func newPrecioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "precio",
		Short: "Calcular el desglose costo/precio de un producto",
	}
	cmd.AddCommand(newPrecioCalcularCmd(), newPrecioEditarCmd())
	return cmd
}

func newPrecioCalcularCmd() *cobra.Command {
	var (
		edited  string
		asJSON  bool
		initial *priceFlags
	)
	cmd := &cobra.Command{
		Use:   "calcular",
		Short: "Recalcula los campos derivados a partir del campo editado",
		Example: "  ferre precio calcular --editado=costo_neto --costo-neto=1000 --porcentaje-utilidad=20\n" +
			"  ferre precio calcular --editado=precio_venta --precio-venta=1700 --porcentaje-utilidad=20 --utilidad-pesos=500",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := pricing.ParseEditSource(edited)
			if err != nil {
				return fmt.Errorf("--editado %q: %w", edited, err)
			}
			rec := pricing.Recompute(src, initial.record())
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}
			printRecord(cmd.OutOrStdout(), rec)
			return nil
		},
	}
	cmd.Flags().StringVar(&edited, "editado", "", "campo editado (costo_bruto, costo_neto, porcentaje_utilidad, utilidad_pesos, precio_venta)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "salida en JSON")
	initial = bindPriceFlags(cmd)
	return cmd
}

func newPrecioEditarCmd() *cobra.Command {
	var (
		delay   time.Duration
		initial *priceFlags
	)
	cmd := &cobra.Command{
		Use:   "editar",
		Short: "Edición interactiva: una línea campo=valor por edición",
		Long: `Lee ediciones desde la entrada estándar, una por línea (p. ej. costo_neto=1000).
Las ediciones seguidas se agrupan y se recalcula una sola vez cuando pasa la espera
sin cambios. "listo" o fin de entrada recalcula lo pendiente y termina.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("espera") {
				delay = configuredDelay()
			}
			return runEditor(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), initial.record(), delay)
		},
	}
	cmd.Flags().DurationVar(&delay, "espera", pricing.DefaultDelay, "espera tras la última edición antes de recalcular")
	initial = bindPriceFlags(cmd)
	return cmd
}

func configuredDelay() time.Duration {
	cfg, err := config.Load()
	if err != nil || cfg.Pricing.Debounce() <= 0 {
		return pricing.DefaultDelay
	}
	return cfg.Pricing.Debounce()
}

func runEditor(in io.Reader, out, errOut io.Writer, initial pricing.Record, delay time.Duration) error {
	var mu sync.Mutex // onChange corre en la goroutine del timer
	s := pricing.NewSession(initial, delay, func(r pricing.Record) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(out, "recalculado:")
		printRecord(out, r)
	})
	defer s.Close()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "listo" {
			break
		}
		field, value, ok := strings.Cut(line, "=")
		if !ok {
			fmt.Fprintf(errOut, "línea ignorada %q: se espera campo=valor\n", line)
			continue
		}
		src, err := pricing.ParseEditSource(field)
		if err != nil || src == pricing.SourceNone {
			fmt.Fprintf(errOut, "campo desconocido %q\n", strings.TrimSpace(field))
			continue
		}
		s.Edit(src, pricing.ParseAmount(value))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("leer ediciones: %w", err)
	}
	s.Flush()

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, "final:")
	printRecord(out, s.Record())
	return nil
}

func printRecord(w io.Writer, r pricing.Record) {
	form := r.Form()
	for _, field := range fieldOrder {
		fmt.Fprintf(w, "  %-20s %s\n", field, form[field])
	}
}
