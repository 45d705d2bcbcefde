package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/dbx"
	"github.com/dmitrijs2005/memoria/internal/logging"
	"github.com/dmitrijs2005/memoria/internal/server/config"
	"github.com/dmitrijs2005/memoria/internal/server/credential"
	"github.com/dmitrijs2005/memoria/internal/server/guard"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/dmitrijs2005/memoria/internal/server/notify"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// maxKeyAttempts bounds regeneration after a secret key collision.
const maxKeyAttempts = 5

// Extender runs the extension workflow for paid extension orders.
type Extender interface {
	Extend(ctx context.Context, rc tenant.RequestContext, id string) (*models.Memory, error)
}

// PaymentEvent holds the fields consumed from a payment provider webhook.
type PaymentEvent struct {
	OrderID     string             `json:"orderId"`
	Email       string             `json:"email"`
	Tenant      string             `json:"tenant,omitempty"`
	ProductType models.ProductType `json:"productType,omitempty"`
	MemoryID    string             `json:"memoryId,omitempty"`
}

// PaymentResult is the outcome of HandlePaymentEvent. Claim is nil for
// extension orders, Memory is nil for memory purchases.
type PaymentResult struct {
	Order    *models.Order
	Claim    *models.ClaimRequest
	Memory   *models.Memory
	Replayed bool
}

// FinalizeRequest attaches URLs to a claim. Either RequestID, the claim
// id, or OrderID identifies it. Empty URLs fall back to the configured
// ones. LoginPassword is handed to the notifier and never stored. A
// ClaimedByUID marks the claim claimed by that user.
type FinalizeRequest struct {
	RequestID     string `json:"requestId,omitempty"`
	OrderID       string `json:"orderId,omitempty"`
	PublicPageID  string `json:"publicPageId"`
	PublicPageURL string `json:"publicPageUrl,omitempty"`
	LoginURL      string `json:"loginUrl,omitempty"`
	LoginEmail    string `json:"loginEmail,omitempty"`
	LoginPassword string `json:"loginPassword,omitempty"`
	ClaimedByUID  string `json:"claimedByUid,omitempty"`
}

// FinalizeResult is returned to the finalizing caller.
type FinalizeResult struct {
	OK            bool   `json:"ok"`
	PublicPageURL string `json:"publicPageUrl,omitempty"`
	LoginURL      string `json:"loginUrl,omitempty"`
	Error         string `json:"error,omitempty"`
}

// CredentialCheck describes a credential that passed validation.
type CredentialCheck struct {
	Admin     bool
	OrderID   string
	ExpiresAt *time.Time
}

// ClaimService drives a purchase from payment through credential issuance
// to a claimed page: pending -> secretIssued -> urlsSet -> claimed.
type ClaimService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
	notifier    notify.Notifier
	extender    Extender
	logger      logging.Logger
	now         func() time.Time
}

func NewClaimService(db *sql.DB, rm repomanager.RepositoryManager, cfg *config.Config, notifier notify.Notifier, extender Extender, logger logging.Logger) *ClaimService {
	return &ClaimService{
		db:          db,
		repomanager: rm,
		config:      cfg,
		notifier:    notifier,
		extender:    extender,
		logger:      logger.With("module", "claims"),
		now:         time.Now,
	}
}

// HandlePaymentEvent processes a paid order. Replaying the same event
// returns the stored claim without issuing a second credential.
func (s *ClaimService) HandlePaymentEvent(ctx context.Context, rc tenant.RequestContext, ev PaymentEvent) (_ *PaymentResult, err error) {
	ctx, span := startSpan(ctx, "ClaimService.HandlePaymentEvent", attribute.String("order_id", ev.OrderID), attribute.String("product_type", string(ev.ProductType)))
	defer func() { endSpan(span, err) }()

	if err := requireService(rc); err != nil {
		return nil, err
	}
	if ev.OrderID == "" {
		return nil, fmt.Errorf("%w: payment event without order id", common.ErrorValidation)
	}
	if ev.ProductType == "" {
		ev.ProductType = models.ProductMemory
	}
	if ev.Tenant == "" {
		ev.Tenant = rc.Tenant
	}

	order, err := s.findOrCreateOrder(ctx, ev)
	if err != nil {
		return nil, err
	}

	if order.ProductType == models.ProductExtension {
		return s.fulfilExtension(ctx, rc, order)
	}

	claimRepo := s.repomanager.Claims(s.db)
	if order.HasCredential() {
		claim, err := claimRepo.GetByOrder(ctx, order.ID)
		if err != nil {
			return nil, wrapInternal("load claim", err)
		}
		s.logger.Info(ctx, "payment event replayed", "order_id", order.ID, "claim_id", claim.ID)
		return &PaymentResult{Order: order, Claim: claim, Replayed: true}, nil
	}

	claim, err := s.pendingClaim(ctx, order)
	if err != nil {
		return nil, err
	}

	key, err := s.issueCredential(ctx, order, claim)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.SendCredential(ctx, order.Email, order.Tenant, key); err != nil {
		s.logger.Error(ctx, "credential delivery failed", "order_id", order.ID, "error", err)
	}
	s.logger.Info(ctx, "credential issued", "order_id", order.ID, "claim_id", claim.ID, "expires_at", order.SecretKeyExpiresAt)
	return &PaymentResult{Order: order, Claim: claim}, nil
}

func (s *ClaimService) findOrCreateOrder(ctx context.Context, ev PaymentEvent) (*models.Order, error) {
	repo := s.repomanager.Orders(s.db)

	o, err := repo.Get(ctx, ev.OrderID)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, wrapInternal("load order", err)
	}

	o = &models.Order{
		ID:            ev.OrderID,
		Email:         ev.Email,
		Tenant:        ev.Tenant,
		ProductType:   ev.ProductType,
		MemoryID:      ev.MemoryID,
		PaymentStatus: models.PaymentPending,
		OrderStatus:   models.OrderCreated,
		CreatedAt:     s.now().UTC(),
	}
	if err := repo.Create(ctx, o); err != nil {
		if !errors.Is(err, common.ErrorValidation) {
			return nil, wrapInternal("create order", err)
		}
		// A concurrent delivery of the same event created it first.
		if o, err = repo.Get(ctx, ev.OrderID); err != nil {
			return nil, wrapInternal("load order", err)
		}
	}
	return o, nil
}

func (s *ClaimService) fulfilExtension(ctx context.Context, rc tenant.RequestContext, order *models.Order) (*PaymentResult, error) {
	if order.OrderStatus == models.OrderFulfilled {
		return &PaymentResult{Order: order, Replayed: true}, nil
	}
	if order.MemoryID == "" {
		return nil, fmt.Errorf("%w: extension order %s names no memory", common.ErrorValidation, order.ID)
	}

	m, err := s.extender.Extend(ctx, rc, order.MemoryID)
	if err != nil {
		return nil, err
	}

	order.PaymentStatus = models.PaymentPaid
	order.OrderStatus = models.OrderFulfilled
	if err := s.repomanager.Orders(s.db).Update(ctx, order); err != nil {
		return nil, wrapInternal("fulfil extension order", err)
	}
	return &PaymentResult{Order: order, Memory: m}, nil
}

// pendingClaim creates the claim for order, or returns the one left by an
// earlier delivery that stopped before issuing a credential.
func (s *ClaimService) pendingClaim(ctx context.Context, order *models.Order) (*models.ClaimRequest, error) {
	repo := s.repomanager.Claims(s.db)
	now := s.now().UTC()
	claim := &models.ClaimRequest{
		ID:        uuid.NewString(),
		Email:     order.Email,
		Tenant:    order.Tenant,
		OrderID:   order.ID,
		Status:    models.ClaimPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := repo.Create(ctx, claim)
	if err == nil {
		return claim, nil
	}
	if !errors.Is(err, common.ErrorValidation) {
		return nil, wrapInternal("create claim", err)
	}
	existing, err := repo.GetByOrder(ctx, order.ID)
	if err != nil {
		return nil, wrapInternal("load claim", err)
	}
	return existing, nil
}

// issueCredential stores a fresh secret key on order and advances claim in
// one transaction. It returns the key.
func (s *ClaimService) issueCredential(ctx context.Context, order *models.Order, claim *models.ClaimRequest) (string, error) {
	now := s.now().UTC()
	exp := now.Add(s.credentialValidity())

	for attempt := 1; ; attempt++ {
		key, err := credential.Generate()
		if err != nil {
			return "", wrapInternal("generate credential", err)
		}

		issued := *order
		issued.SecretKey = key
		issued.SecretKeyExpiresAt = &exp
		issued.PaymentStatus = models.PaymentPaid
		issued.OrderStatus = models.OrderCredentialIssued

		advanced := *claim
		advanced.Status = models.ClaimSecretIssued
		advanced.UpdatedAt = now

		err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			if err := s.repomanager.Orders(tx).Update(ctx, &issued); err != nil {
				return err
			}
			return s.repomanager.Claims(tx).Update(ctx, &advanced)
		})
		switch {
		case err == nil:
			*order = issued
			*claim = advanced
			return key, nil
		case errors.Is(err, common.ErrorValidation) && attempt < maxKeyAttempts:
			s.logger.Warn(ctx, "secret key collision, regenerating", "order_id", order.ID, "attempt", attempt)
		default:
			return "", wrapInternal("issue credential", err)
		}
	}
}

func (s *ClaimService) credentialValidity() time.Duration {
	if s.config.CredentialValidity > 0 {
		return s.config.CredentialValidity
	}
	return credential.Validity
}

// ReservePublicPage creates an empty page whose link can be handed out
// before the memory exists.
func (s *ClaimService) ReservePublicPage(ctx context.Context, rc tenant.RequestContext) (*models.PublicPage, error) {
	if !rc.IsUser() && !rc.IsService() {
		return nil, common.ErrorUnauthorized
	}
	page, err := reservePage(ctx, s.repomanager.PublicPages(s.db), rc.Tenant, rc.OwnerUID, s.now().UTC())
	if err != nil {
		return nil, wrapInternal("reserve public page", err)
	}
	s.logger.Info(ctx, "public page reserved", "public_page_id", page.ID, "tenant", page.Tenant)
	redacted := page.Redacted()
	return &redacted, nil
}

// FinalizeURLs records the page and login URLs on a claim and sends the
// login details once. Repeating a request with the same input changes
// nothing and sends nothing. Problems with the request itself are reported
// in the result; the error is reserved for authorization and storage
// failures.
func (s *ClaimService) FinalizeURLs(ctx context.Context, rc tenant.RequestContext, req FinalizeRequest) (_ *FinalizeResult, err error) {
	ctx, span := startSpan(ctx, "ClaimService.FinalizeURLs", attribute.String("claim_id", req.RequestID), attribute.String("order_id", req.OrderID))
	defer func() { endSpan(span, err) }()

	if err := requireService(rc); err != nil {
		return nil, err
	}
	if req.PublicPageID == "" {
		return failed("publicPageId is required"), nil
	}

	claim, err := s.lookupClaim(ctx, req)
	if errors.Is(err, common.ErrorNotFound) {
		return failed("claim request not found"), nil
	}
	if err != nil {
		return nil, wrapInternal("load claim", err)
	}

	if claim.Status == models.ClaimPending {
		return failed("credential not issued yet"), nil
	}

	page, err := s.repomanager.PublicPages(s.db).Get(ctx, req.PublicPageID)
	if errors.Is(err, common.ErrorNotFound) {
		return failed("public page not found"), nil
	}
	if err != nil {
		return nil, wrapInternal("load public page", err)
	}
	if page.Tenant != claim.Tenant {
		return failed("public page belongs to another tenant"), nil
	}

	pageURL := req.PublicPageURL
	if pageURL == "" {
		pageURL = s.pageURL(page.ID)
	}
	loginURL := req.LoginURL
	if loginURL == "" {
		loginURL = s.config.LoginURL
	}
	loginEmail := req.LoginEmail
	if loginEmail == "" {
		loginEmail = claim.Email
	}

	urlsSet := claim.PublicPageID == page.ID && claim.PublicPageURL == pageURL &&
		claim.LoginURL == loginURL && claim.LoginEmail == loginEmail
	claimedAsAsked := req.ClaimedByUID == "" || claim.ClaimedByUID == req.ClaimedByUID

	if urlsSet && claimedAsAsked {
		return &FinalizeResult{OK: true, PublicPageURL: pageURL, LoginURL: loginURL}, nil
	}
	if claim.Status == models.ClaimClaimed {
		return failed("claim request already claimed"), nil
	}

	claim.PublicPageID = page.ID
	claim.PublicPageURL = pageURL
	claim.LoginURL = loginURL
	claim.LoginEmail = loginEmail
	claim.Status = models.ClaimURLsSet
	if req.ClaimedByUID != "" {
		claim.ClaimedByUID = req.ClaimedByUID
		claim.Status = models.ClaimClaimed
	}
	claim.UpdatedAt = s.now().UTC()
	if err := s.repomanager.Claims(s.db).Update(ctx, claim); err != nil {
		return nil, wrapInternal("finalize claim", err)
	}

	if !urlsSet {
		err = s.notifier.SendLoginDetails(ctx, notify.LoginDetails{
			Email:         claim.Email,
			Tenant:        claim.Tenant,
			PublicPageURL: claim.PublicPageURL,
			LoginURL:      claim.LoginURL,
			LoginEmail:    claim.LoginEmail,
			LoginPassword: req.LoginPassword,
		})
		if err != nil {
			s.logger.Error(ctx, "login details delivery failed", "claim_id", claim.ID, "error", err)
		}
	}

	s.logger.Info(ctx, "claim finalized", "claim_id", claim.ID, "public_page_id", page.ID, "status", string(claim.Status))
	return &FinalizeResult{OK: true, PublicPageURL: pageURL, LoginURL: loginURL}, nil
}

func (s *ClaimService) lookupClaim(ctx context.Context, req FinalizeRequest) (*models.ClaimRequest, error) {
	repo := s.repomanager.Claims(s.db)
	switch {
	case req.RequestID != "":
		return repo.Get(ctx, req.RequestID)
	case req.OrderID != "":
		return repo.GetByOrder(ctx, req.OrderID)
	}
	return nil, common.ErrorNotFound
}

func (s *ClaimService) pageURL(id string) string {
	return strings.TrimRight(s.config.PublicPageBaseURL, "/") + "/" + id
}

func failed(msg string) *FinalizeResult {
	return &FinalizeResult{OK: false, Error: msg}
}

// MarkClaimed records that the calling user took over the claim. Only a
// claim whose URLs are set can be claimed; marking it again by the same
// user returns it unchanged.
func (s *ClaimService) MarkClaimed(ctx context.Context, rc tenant.RequestContext, id string) (*models.ClaimRequest, error) {
	if err := requireUser(rc); err != nil {
		return nil, err
	}

	repo := s.repomanager.Claims(s.db)
	claim, err := repo.Get(ctx, id)
	if err != nil {
		return nil, wrapInternal("load claim", err)
	}
	if err := guard.CheckWrite(rc, guard.Document{Tenant: claim.Tenant, OwnerUID: claim.ClaimedByUID}, guard.Options{}); err != nil {
		return nil, err
	}

	switch claim.Status {
	case models.ClaimClaimed:
		return claim, nil
	case models.ClaimURLsSet:
	default:
		return nil, fmt.Errorf("%w: claim request is %s, not %s", common.ErrorValidation, claim.Status, models.ClaimURLsSet)
	}

	claim.ClaimedByUID = rc.OwnerUID
	claim.Status = models.ClaimClaimed
	claim.UpdatedAt = s.now().UTC()
	if err := repo.Update(ctx, claim); err != nil {
		return nil, wrapInternal("mark claimed", err)
	}
	return claim, nil
}

// ValidateCredential checks key without consuming it.
func (s *ClaimService) ValidateCredential(ctx context.Context, key string) (*CredentialCheck, error) {
	o, err := checkCredential(ctx, s.repomanager.Orders(s.db), key, s.config.AdminCredential, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if o == nil {
		return &CredentialCheck{Admin: true}, nil
	}
	return &CredentialCheck{OrderID: o.ID, ExpiresAt: o.SecretKeyExpiresAt}, nil
}
