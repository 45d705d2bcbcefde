package grpc

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/memoria/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps a service error onto a gRPC status. Unknown errors become
// Internal without their message.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var qe *common.QuotaError
	if errors.As(err, &qe) {
		st := status.New(codes.ResourceExhausted, qe.Error())
		detailed, derr := st.WithDetails(&errdetails.QuotaFailure{
			Violations: []*errdetails.QuotaFailure_Violation{{
				Subject:     "memory.storage",
				Description: fmt.Sprintf("used %d of %d bytes, attempted %d", qe.Used, qe.Limit, qe.Attempted),
			}},
		})
		if derr != nil {
			return st.Err()
		}
		return detailed.Err()
	}

	switch {
	case errors.Is(err, common.ErrTenantMismatch):
		return status.Error(codes.PermissionDenied, "tenant mismatch")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.PermissionDenied, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrCredentialExpired):
		return status.Error(codes.FailedPrecondition, "credential expired")
	case errors.Is(err, common.ErrCredentialInvalid):
		return status.Error(codes.InvalidArgument, "invalid credential")
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
