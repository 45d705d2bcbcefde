package ctl

import (
	"fmt"
	"os"
	"strings"
	"time"

	pb "github.com/dmitrijs2005/memoria/internal/proto"
	"github.com/dmitrijs2005/memoria/internal/server/credential"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func credentialCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Generate or check secret keys",
	}
	cmd.AddCommand(credentialGenerateCmd(), credentialCheckCmd(o))
	return cmd
}

func credentialGenerateCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print freshly generated keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive")
			}
			for range count {
				key, err := credential.Generate()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of keys")
	return cmd
}

func credentialCheckCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [key]",
		Short: "Ask the server whether a key would be accepted",
		Long:  "Ask the server whether a key would be accepted. Without an argument the key is read from the terminal without echo.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				cmd.PrintErr("Enter key: ")
				b, err := readPassword(int(os.Stdin.Fd()))
				cmd.PrintErrln()
				if err != nil {
					return err
				}
				key = string(b)
			}
			key = strings.ToUpper(strings.TrimSpace(key))

			if !credential.WellFormed(key) {
				return fmt.Errorf("key must be %d uppercase letters or digits", credential.Length)
			}

			client, closeFn, err := dialAPI(o.addr)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := o.callContext(cmd.Context())
			defer cancel()

			resp, err := client.ValidateCredential(ctx, &pb.ValidateCredentialRequest{Credential: key})
			if err != nil {
				return err
			}

			switch {
			case !resp.GetValid():
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
			case resp.GetAdmin():
				fmt.Fprintln(cmd.OutOrStdout(), "valid (admin)")
			case resp.GetExpiresAt() != nil:
				fmt.Fprintf(cmd.OutOrStdout(), "valid until %s\n", resp.GetExpiresAt().AsTime().UTC().Format(time.RFC3339))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
			}
			return nil
		},
	}
}
