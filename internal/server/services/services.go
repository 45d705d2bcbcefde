// Package services contains the server-side business logic: the memory
// content repository with publishing, uploads and cascading deletion, and
// the claim/issuance state machine. Every operation takes the caller's
// tenant.RequestContext explicitly.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/server/guard"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/memories"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/dmitrijs2005/memoria/internal/server/services")

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err on span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// loadForWrite fetches the memory and runs the isolation guard against the
// stored document.
func loadForWrite(ctx context.Context, repo memories.Repository, rc tenant.RequestContext, id string, opts guard.Options) (*models.Memory, error) {
	m, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := guard.CheckWrite(rc, guard.Document{Tenant: m.Tenant, OwnerUID: m.OwnerUID}, opts); err != nil {
		return nil, err
	}
	return m, nil
}

func requireUser(rc tenant.RequestContext) error {
	if !rc.IsUser() {
		return common.ErrorUnauthorized
	}
	return nil
}

func requireService(rc tenant.RequestContext) error {
	if !rc.IsService() {
		return common.ErrorUnauthorized
	}
	return nil
}

// wrapInternal wraps unexpected storage failures; domain errors pass through.
func wrapInternal(op string, err error) error {
	for _, known := range []error{
		common.ErrorNotFound, common.ErrorUnauthorized, common.ErrorValidation,
		common.ErrTenantMismatch, common.ErrQuotaExceeded,
		common.ErrCredentialInvalid, common.ErrCredentialExpired,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%s: %w: %v", op, common.ErrorInternal, err)
}
