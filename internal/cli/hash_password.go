package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pet-adoption/internal/adapters/auth/bcrypt"
)

// HashPasswordCmd imprime el hash bcrypt de una contraseña (para cargar usuarios a mano).
func HashPasswordCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Generate a bcrypt hash for a staff password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args[0]) < 6 {
				return errors.New("password must be at least 6 characters")
			}
			hash, err := bcrypt.NewHasher(cost).Hash(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	return cmd
}
