// ferre es la herramienta de mostrador: valida y formatea RUT y calcula precios
// con el mismo motor que usa la API.
//
// Uso:
//
//	ferre rut validar 12.345.678-5 76.086.428-5
//	ferre rut dv 12345678
//	ferre precio calcular --editado=costo_neto --costo-neto=1000 --porcentaje-utilidad=20
//	ferre precio editar < ediciones.txt
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ferre",
		Short:        "Herramientas de RUT y precios de la ferretería",
		SilenceUsage: true,
	}
	root.AddCommand(newRutCmd(), newPrecioCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
