package httpapi

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/server/services"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

// PaymentWebhookResponse acknowledges a processed payment event.
type PaymentWebhookResponse struct {
	OrderID  string `json:"orderId"`
	ClaimID  string `json:"claimId,omitempty"`
	Status   string `json:"status,omitempty"`
	MemoryID string `json:"memoryId,omitempty"`
	Replayed bool   `json:"replayed,omitempty"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePublicPage(c echo.Context) error {
	password := c.Request().Header.Get("X-Page-Password")
	if password == "" {
		password = c.QueryParam("password")
	}
	page, err := s.pages.GetPublicPage(c.Request().Context(), c.Param("id"), password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// requireServiceKey admits only callers presenting the configured key and
// runs them with service authority in the tenant their origin resolves to.
func (s *Server) requireServiceKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Header.Get(ServiceKeyHeader)
		if s.serviceKey == "" || key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.serviceKey)) != 1 {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid service key")
		}
		rc := tenant.RequestContext{
			Tenant:    s.resolver.Resolve(c.Request().Header.Get(echo.HeaderOrigin), ""),
			Authority: tenant.AuthorityService,
		}
		c.SetRequest(c.Request().WithContext(tenant.WithRequestContext(c.Request().Context(), rc)))
		return next(c)
	}
}

func (s *Server) handlePaymentWebhook(c echo.Context) error {
	var ev services.PaymentEvent
	if err := c.Bind(&ev); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed payment event")
	}

	ctx := c.Request().Context()
	res, err := s.claims.HandlePaymentEvent(ctx, tenant.FromContext(ctx), ev)
	if err != nil {
		return err
	}

	out := PaymentWebhookResponse{OrderID: ev.OrderID, Replayed: res.Replayed}
	if res.Claim != nil {
		out.ClaimID = res.Claim.ID
		out.Status = string(res.Claim.Status)
	}
	if res.Memory != nil {
		out.MemoryID = res.Memory.ID
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleFinalize(c echo.Context) error {
	var req services.FinalizeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed finalize request")
	}

	ctx := c.Request().Context()
	res, err := s.claims.FinalizeURLs(ctx, tenant.FromContext(ctx), req)
	if err != nil {
		return err
	}
	if !res.OK {
		return c.JSON(http.StatusUnprocessableEntity, res)
	}
	return c.JSON(http.StatusOK, res)
}

// httpErrorHandler renders service errors as JSON with a matching status.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, msg := statusOf(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error(c.Request().Context(), "server error", "uri", c.Request().RequestURI, "error", err)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, errorResponse{Error: msg})
}

func statusOf(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	}

	var qe *common.QuotaError
	switch {
	case errors.As(err, &qe):
		return http.StatusRequestEntityTooLarge, qe.Error()
	case errors.Is(err, common.ErrTenantMismatch), errors.Is(err, common.ErrorUnauthorized):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrCredentialExpired):
		return http.StatusGone, "credential expired"
	case errors.Is(err, common.ErrCredentialInvalid):
		return http.StatusBadRequest, "invalid credential"
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "internal error"
}
