package ctl

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/memoria/internal/server/expiry"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func expiryCmd() *cobra.Command {
	var (
		created    string
		at         string
		extensions int
	)
	cmd := &cobra.Command{
		Use:   "expiry",
		Short: "Show the deadline and status of a memory created on a given date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			createdAt, err := time.Parse(dateLayout, created)
			if err != nil {
				return fmt.Errorf("invalid --created: %w", err)
			}
			now := time.Now().UTC()
			if at != "" {
				if now, err = time.Parse(dateLayout, at); err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
			}

			expiresAt := expiry.ExpirationDate(createdAt, extensions)
			st := expiry.StatusAt(expiresAt, now)
			fmt.Fprintf(cmd.OutOrStdout(), "expires %s (%s, %d days remaining)\n", expiresAt.Format(dateLayout), st.Label, st.DaysRemaining)
			return nil
		},
	}
	cmd.Flags().StringVar(&created, "created", "", "creation date, YYYY-MM-DD")
	cmd.Flags().StringVar(&at, "at", "", "evaluate at this date instead of today, YYYY-MM-DD")
	cmd.Flags().IntVarP(&extensions, "extensions", "e", 0, "number of paid extensions")
	_ = cmd.MarkFlagRequired("created")
	return cmd
}
