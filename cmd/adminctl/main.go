package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pet-adoption/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "adminctl",
		Short: "Herramientas de operación del backend de adopciones",
		Long: `adminctl agrupa tareas de operación que no pasan por el panel:
generar hashes de contraseña, aplicar migraciones y consultar los indicadores.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.HashPasswordCmd())
	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.StatsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
