// Package ctl implements memoriactl, the operator command line for a
// memoria deployment.
package ctl

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/dmitrijs2005/memoria/internal/proto"
)

var Version = "dev"

// apiClient is the subset of the gRPC client the commands call.
type apiClient interface {
	Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error)
	ValidateCredential(ctx context.Context, in *pb.ValidateCredentialRequest, opts ...grpc.CallOption) (*pb.ValidateCredentialResponse, error)
}

// dialAPI is a seam for tests.
var dialAPI = func(addr string) (apiClient, func() error, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return pb.NewMemoriaServiceClient(conn), conn.Close, nil
}

type options struct {
	addr    string
	dsn     string
	timeout time.Duration
}

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:           "memoriactl",
		Short:         "Operate a memoria server",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&o.addr, "addr", "localhost:50051", "gRPC address of the server")
	root.PersistentFlags().StringVar(&o.dsn, "dsn", "", "database DSN for commands that touch the database")
	root.PersistentFlags().DurationVar(&o.timeout, "timeout", 10*time.Second, "timeout for remote calls")

	root.AddCommand(pingCmd(o))
	root.AddCommand(migrateCmd(o))
	root.AddCommand(credentialCmd(o))
	root.AddCommand(expiryCmd())
	root.AddCommand(tokenCmd())

	return root
}

func (o *options) callContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, o.timeout)
}

func pingCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the server answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeFn, err := dialAPI(o.addr)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := o.callContext(cmd.Context())
			defer cancel()

			resp, err := client.Ping(ctx, &pb.PingRequest{})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Status)
			return nil
		},
	}
}
