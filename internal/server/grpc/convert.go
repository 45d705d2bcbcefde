package grpc

import (
	"bytes"
	"time"

	pb "github.com/dmitrijs2005/memoria/internal/proto"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/dmitrijs2005/memoria/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func timestampPtr(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamp(*t)
}

func toPbImage(img *models.Image) *pb.Image {
	if img.IsZero() {
		return nil
	}
	return &pb.Image{
		Url:      img.URL,
		Position: &pb.Position{X: img.Position.X, Y: img.Position.Y},
		Scale:    img.Scale,
		FileSize: img.FileSize,
	}
}

func toPbBlocks(blocks []models.MediaBlock) []*pb.MediaBlock {
	out := make([]*pb.MediaBlock, 0, len(blocks))
	for _, b := range blocks {
		pbb := &pb.MediaBlock{
			Id:          b.ID,
			Type:        string(b.Kind),
			Visibility:  string(b.Visibility),
			Title:       b.Title,
			Description: b.Description,
			IsTopic:     b.IsTopic,
			FileSize:    b.FileSize,
			Url:         b.URL,
			Text:        b.Text,
		}
		for _, it := range b.Items {
			pbb.Items = append(pbb.Items, &pb.AlbumItem{Url: it.URL, FileSize: it.FileSize, Text: it.Text})
		}
		out = append(out, pbb)
	}
	return out
}

func toPbFontSizes(sizes map[string]int) map[string]int32 {
	if sizes == nil {
		return nil
	}
	out := make(map[string]int32, len(sizes))
	for k, v := range sizes {
		out[k] = int32(v)
	}
	return out
}

func toPbMemory(m *models.Memory) *pb.Memory {
	if m == nil {
		return nil
	}
	return &pb.Memory{
		Id:                        m.ID,
		OwnerUid:                  m.OwnerUID,
		Tenant:                    m.Tenant,
		Title:                     m.Title,
		Description:               m.Description,
		Bio:                       m.Bio,
		ProfileImage:              toPbImage(m.ProfileImage),
		CoverImage:                toPbImage(m.CoverImage),
		Blocks:                    toPbBlocks(m.Blocks),
		Colors:                    m.Colors,
		FontSizes:                 toPbFontSizes(m.FontSizes),
		TopicsTitle:               m.TopicsTitle,
		StorageUsed:               m.StorageUsed,
		StorageLimit:              m.StorageLimit,
		StorageSubscriptionStatus: m.StorageSubscriptionStatus,
		Status:                    string(m.Status),
		CreatedAt:                 timestamp(m.CreatedAt),
		UpdatedAt:                 timestamp(m.UpdatedAt),
		ExpiresAt:                 timestamp(m.ExpiresAt),
		ExtensionCount:            int32(m.ExtensionCount),
		LastExtendedAt:            timestampPtr(m.LastExtendedAt),
		PublicPageId:              m.PublicPageID,
	}
}

func toPbMemories(items []*models.Memory) []*pb.Memory {
	out := make([]*pb.Memory, 0, len(items))
	for _, m := range items {
		out = append(out, toPbMemory(m))
	}
	return out
}

// toPbPublicPage never carries the password hash, only whether one is set.
func toPbPublicPage(p *models.PublicPage) *pb.PublicPage {
	if p == nil {
		return nil
	}
	return &pb.PublicPage{
		Id:           p.ID,
		Tenant:       p.Tenant,
		MemoryId:     p.MemoryID,
		OwnerUid:     p.OwnerUID,
		Title:        p.Title,
		Description:  p.Description,
		Bio:          p.Bio,
		ProfileImage: toPbImage(p.ProfileImage),
		CoverImage:   toPbImage(p.CoverImage),
		Blocks:       toPbBlocks(p.Blocks),
		Colors:       p.Colors,
		FontSizes:    toPbFontSizes(p.FontSizes),
		TopicsTitle:  p.TopicsTitle,
		Ordering:     p.Ordering,
		Publish: &pb.PublishInfo{
			Status:      p.Publish.Status,
			Version:     int32(p.Publish.Version),
			PublishedAt: timestampPtr(p.Publish.PublishedAt),
		},
		Access: &pb.Access{
			Public:            p.Access.Public,
			PasswordProtected: p.Access.PasswordHash != "",
		},
		CreatedAt: timestamp(p.CreatedAt),
		UpdatedAt: timestamp(p.UpdatedAt),
	}
}

func toPbClaim(c *models.ClaimRequest) *pb.ClaimRequest {
	if c == nil {
		return nil
	}
	return &pb.ClaimRequest{
		Id:            c.ID,
		Email:         c.Email,
		Tenant:        c.Tenant,
		OrderId:       c.OrderID,
		Status:        string(c.Status),
		PublicPageId:  c.PublicPageID,
		PublicPageUrl: c.PublicPageURL,
		LoginUrl:      c.LoginURL,
		LoginEmail:    c.LoginEmail,
		ClaimedByUid:  c.ClaimedByUID,
		CreatedAt:     timestamp(c.CreatedAt),
		UpdatedAt:     timestamp(c.UpdatedAt),
	}
}

func toUpload(f *pb.File) services.Upload {
	data := f.GetData()
	return services.Upload{
		Filename:    f.GetFilename(),
		ContentType: f.GetContentType(),
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
		Caption:     f.GetCaption(),
	}
}

func toBlockInput(b *pb.BlockFields) services.BlockInput {
	return services.BlockInput{
		Kind:        models.BlockKind(b.GetType()),
		Visibility:  models.Visibility(b.GetVisibility()),
		Title:       b.GetTitle(),
		Description: b.GetDescription(),
		IsTopic:     b.GetIsTopic(),
	}
}

func toPosition(p *pb.Position) models.Position {
	return models.Position{X: p.GetX(), Y: p.GetY()}
}
