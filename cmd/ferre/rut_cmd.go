package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ferreteria-api/pkg/rut"
)

func newRutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rut",
		Short: "Validar y formatear RUT chilenos",
	}
	cmd.AddCommand(newRutValidarCmd(), newRutFormatearCmd(), newRutDVCmd())
	return cmd
}

func newRutValidarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validar RUT...",
		Short: "Valida uno o más RUT (sale con error si alguno es inválido)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			invalid := 0
			for _, raw := range args {
				r, err := rut.Parse(raw)
				switch {
				case errors.Is(err, rut.ErrEmpty):
					invalid++
					fmt.Fprintf(out, "%-14s sin RUT\n", raw)
				case err != nil:
					invalid++
					fmt.Fprintf(out, "%-14s inválido\n", rut.Format(raw))
				default:
					fmt.Fprintf(out, "%-14s válido\n", r.String())
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d de %d RUT no son válidos", invalid, len(args))
			}
			return nil
		},
	}
}

func newRutFormatearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formatear VALOR",
		Short: "Formatea lo escrito como 12.345.678-5 sin validar el dígito verificador",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), rut.Format(args[0]))
			return nil
		},
	}
}

func newRutDVCmd() *cobra.Command {
	var onlyDV bool
	cmd := &cobra.Command{
		Use:   "dv CUERPO",
		Short: "Calcula el dígito verificador de un cuerpo numérico",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatted := rut.FormatDigits(args[0])
			if formatted == "" {
				return fmt.Errorf("%q no tiene dígitos", args[0])
			}
			if onlyDV {
				fmt.Fprintln(cmd.OutOrStdout(), rut.CheckDigit(args[0]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatted)
			return nil
		},
	}
	cmd.Flags().BoolVar(&onlyDV, "solo-dv", false, "imprime solo el dígito verificador")
	return cmd
}
