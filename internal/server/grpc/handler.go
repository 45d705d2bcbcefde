package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/memoria/internal/proto"
	"github.com/dmitrijs2005/memoria/internal/server/guard"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/dmitrijs2005/memoria/internal/server/services"
	"github.com/dmitrijs2005/memoria/internal/server/tenant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fail converts err to a status, logging the cause of internal errors.
func (s *Server) fail(ctx context.Context, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, "request failed", "error", err)
	}
	return st
}

func opts(skip bool) guard.Options {
	return guard.Options{SkipTenantCheck: skip}
}

func (s *Server) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *Server) CreateMemory(ctx context.Context, req *pb.CreateMemoryRequest) (*pb.Memory, error) {
	m, err := s.memories.Create(ctx, tenant.FromContext(ctx), req.Credential, services.NewMemory{
		Title:       req.Title,
		Description: req.Description,
		Bio:         req.Bio,
		TopicsTitle: req.TopicsTitle,
	})
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return toPbMemory(m), nil
}

func (s *Server) GetMemory(ctx context.Context, req *pb.MemoryRequest) (*pb.Memory, error) {
	m, err := s.memories.Get(ctx, tenant.FromContext(ctx), req.Id)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return toPbMemory(m), nil
}

func (s *Server) ListMemories(ctx context.Context, req *pb.ListMemoriesRequest) (*pb.ListMemoriesResponse, error) {
	rc := tenant.FromContext(ctx)
	var (
		items []*models.Memory
		err   error
	)
	if req.AllTenants {
		items, err = s.memories.ListByOwner(ctx, rc)
	} else {
		items, err = s.memories.ListForTenant(ctx, rc)
	}
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.ListMemoriesResponse{Memories: toPbMemories(items)}, nil
}

// UpdateMemory applies req.Patch. Struct null values decode to nil, which
// the merge treats as keep.
func (s *Server) UpdateMemory(ctx context.Context, req *pb.UpdateMemoryRequest) (*pb.Memory, error) {
	patch := req.GetPatch().AsMap()
	m, err := s.memories.Update(ctx, tenant.FromContext(ctx), req.Id, patch, opts(req.SkipTenantCheck))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return toPbMemory(m), nil
}

func (s *Server) PublishMemory(ctx context.Context, req *pb.MemoryRequest) (*pb.PublicPage, error) {
	p, err := s.memories.Publish(ctx, tenant.FromContext(ctx), req.Id, opts(req.SkipTenantCheck))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return toPbPublicPage(p), nil
}

func (s *Server) ExtendMemory(ctx context.Context, req *pb.MemoryRequest) (*pb.Memory, error) {
	m, err := s.memories.Extend(ctx, tenant.FromContext(ctx), req.Id)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return toPbMemory(m), nil
}

func (s *Server) GetExpiryStatus(ctx context.Context, req *pb.MemoryRequest) (*pb.ExpiryStatusResponse, error) {
	st, err := s.memories.ExpiryStatus(ctx, tenant.FromContext(ctx), req.Id)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.ExpiryStatusResponse{Bucket: string(st.Bucket), DaysRemaining: int32(st.DaysRemaining), Label: st.Label}, nil
}

func (s *Server) DeleteMemory(ctx context.Context, req *pb.MemoryRequest) (*pb.DeleteMemoryResponse, error) {
	r, err := s.memories.Delete(ctx, tenant.FromContext(ctx), req.Id, opts(req.SkipTenantCheck))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.DeleteMemoryResponse{
		MemoryId:       r.MemoryID,
		AlreadyGone:    r.AlreadyGone,
		PagesDeleted:   r.PagesDeleted,
		AssetsDeleted:  r.AssetsDeleted,
		ObjectsDeleted: int32(r.ObjectsDeleted),
		Failures:       r.Failures,
	}, nil
}

func (s *Server) AddMedia(ctx context.Context, req *pb.AddMediaRequest) (*pb.Memory, error) {
	m, err := s.memories.AddMedia(ctx, tenant.FromContext(ctx), req.MemoryId, toBlockInput(req.Block), toUpload(req.File), opts(req.SkipTenantCheck))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return toPbMemory(m), nil
}

func (s *Server) AddAlbum(ctx context.Context, req *pb.AddAlbumRequest) (*pb.Memory, error) {
	files := make([]services.Upload, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, toUpload(f))
	}
	m, err := s.memories.AddAlbum(ctx, tenant.FromContext(ctx), req.MemoryId, toBlockInput(req.Block), files, opts(req.SkipTenantCheck))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return toPbMemory(m), nil
}

func (s *Server) SetImage(ctx context.Context, req *pb.SetImageRequest) (*pb.Memory, error) {
	m, err := s.memories.SetImage(ctx, tenant.FromContext(ctx), req.MemoryId, services.ImageSlot(req.Slot),
		toUpload(req.File), toPosition(req.Position), req.Scale, opts(req.SkipTenantCheck))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return toPbMemory(m), nil
}

func (s *Server) RemoveBlock(ctx context.Context, req *pb.BlockRequest) (*pb.Memory, error) {
	m, err := s.memories.RemoveBlock(ctx, tenant.FromContext(ctx), req.MemoryId, req.BlockId, opts(req.SkipTenantCheck))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return toPbMemory(m), nil
}

func (s *Server) PresignBlock(ctx context.Context, req *pb.BlockRequest) (*pb.PresignBlockResponse, error) {
	url, err := s.memories.PresignBlock(ctx, tenant.FromContext(ctx), req.MemoryId, req.BlockId)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.PresignBlockResponse{Url: url}, nil
}

func (s *Server) GetPublicPage(ctx context.Context, req *pb.GetPublicPageRequest) (*pb.PublicPage, error) {
	p, err := s.memories.GetPublicPage(ctx, req.Id, req.Password)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return toPbPublicPage(p), nil
}

func (s *Server) SetPageAccess(ctx context.Context, req *pb.SetPageAccessRequest) (*pb.Empty, error) {
	if err := s.memories.SetPageAccess(ctx, tenant.FromContext(ctx), req.PageId, req.Public, req.Password); err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) ReservePublicPage(ctx context.Context, req *pb.Empty) (*pb.PublicPage, error) {
	p, err := s.claims.ReservePublicPage(ctx, tenant.FromContext(ctx))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return toPbPublicPage(p), nil
}

func (s *Server) ValidateCredential(ctx context.Context, req *pb.ValidateCredentialRequest) (*pb.ValidateCredentialResponse, error) {
	check, err := s.claims.ValidateCredential(ctx, req.Credential)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.ValidateCredentialResponse{Valid: true, Admin: check.Admin, ExpiresAt: timestampPtr(check.ExpiresAt)}, nil
}

func (s *Server) HandlePaymentEvent(ctx context.Context, req *pb.PaymentEventRequest) (*pb.PaymentEventResponse, error) {
	res, err := s.claims.HandlePaymentEvent(ctx, tenant.FromContext(ctx), services.PaymentEvent{
		OrderID:     req.OrderId,
		Email:       req.Email,
		Tenant:      req.Tenant,
		ProductType: models.ProductType(req.ProductType),
		MemoryID:    req.MemoryId,
	})
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return paymentResponse(res), nil
}

func paymentResponse(res *services.PaymentResult) *pb.PaymentEventResponse {
	out := &pb.PaymentEventResponse{
		Claim:    toPbClaim(res.Claim),
		Memory:   toPbMemory(res.Memory),
		Replayed: res.Replayed,
	}
	if res.Order != nil {
		out.OrderId = res.Order.ID
		out.ExpiresAt = timestampPtr(res.Order.SecretKeyExpiresAt)
	}
	return out
}

func (s *Server) FinalizeURLs(ctx context.Context, req *pb.FinalizeRequest) (*pb.FinalizeResponse, error) {
	res, err := s.claims.FinalizeURLs(ctx, tenant.FromContext(ctx), services.FinalizeRequest{
		RequestID:     req.RequestId,
		OrderID:       req.OrderId,
		PublicPageID:  req.PublicPageId,
		PublicPageURL: req.PublicPageUrl,
		LoginURL:      req.LoginUrl,
		LoginEmail:    req.LoginEmail,
		LoginPassword: req.LoginPassword,
		ClaimedByUID:  req.ClaimedByUid,
	})
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.FinalizeResponse{
		Ok:            res.OK,
		PublicPageUrl: res.PublicPageURL,
		LoginUrl:      res.LoginURL,
		Error:         res.Error,
	}, nil
}

func (s *Server) MarkClaimed(ctx context.Context, req *pb.MarkClaimedRequest) (*pb.ClaimRequest, error) {
	c, err := s.claims.MarkClaimed(ctx, tenant.FromContext(ctx), req.Id)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return toPbClaim(c), nil
}
