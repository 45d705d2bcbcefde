package ctl

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/memoria/internal/server/auth"
	"github.com/dmitrijs2005/memoria/internal/server/config"
	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var (
		user     string
		tenantID string
		ttl      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a session token for a user, signed with MEMORIA_SECRET_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := os.Getenv(config.EnvPrefix + "SECRET_KEY")
			if secret == "" {
				return errors.New("MEMORIA_SECRET_KEY is not set")
			}
			token, err := auth.GenerateToken(user, tenantID, []byte(secret), ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id")
	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant id")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token validity")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
