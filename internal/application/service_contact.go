package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dushan456/portfolio-backend/internal/domain"
	"github.com/dushan456/portfolio-backend/internal/ports"
)

// SubmitContactMessage stores a visitor message along with request metadata
// for later triage.
func (s *Service) SubmitContactMessage(ctx context.Context, in ContactInput) (domain.ContactMessage, error) {
	msg := domain.ContactMessage{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		Phone:     strings.TrimSpace(in.Phone),
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
	}
	if err := domain.ValidateContactMessage(msg); err != nil {
		return domain.ContactMessage{}, err
	}
	now := s.nowFn()
	msg.CreatedAt = now
	msg.UpdatedAt = now
	return s.contacts.Create(ctx, msg)
}

func (s *Service) ListContactMessages(ctx context.Context, q ContactListQuery) (ContactListResponse, error) {
	page, limit := pageWindow(q.Page, q.Limit, 20)
	messages, total, err := s.contacts.List(ctx, ports.ContactFilter{
		Read:    q.Read,
		Replied: q.Replied,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return ContactListResponse{}, err
	}
	return ContactListResponse{
		Messages:   messages,
		Pagination: Pagination{Current: page, Pages: totalPages(total, limit), Total: total},
	}, nil
}

// GetContactMessage returns a message and marks it read; opening the
// message in the admin inbox is what "read" means here.
func (s *Service) GetContactMessage(ctx context.Context, messageID uuid.UUID) (domain.ContactMessage, error) {
	msg, err := s.contacts.GetByID(ctx, messageID)
	if err != nil {
		return domain.ContactMessage{}, err
	}
	if !msg.IsRead {
		if err := s.contacts.MarkRead(ctx, messageID, true, s.nowFn()); err != nil {
			return domain.ContactMessage{}, err
		}
		msg.IsRead = true
	}
	return msg, nil
}

func (s *Service) ReplyToContactMessage(ctx context.Context, messageID uuid.UUID, reply string) (domain.ContactMessage, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return domain.ContactMessage{}, fmt.Errorf("%w: reply message is required", domain.ErrInvalidInput)
	}
	if _, err := s.contacts.GetByID(ctx, messageID); err != nil {
		return domain.ContactMessage{}, err
	}
	if err := s.contacts.Reply(ctx, messageID, reply, s.nowFn()); err != nil {
		return domain.ContactMessage{}, err
	}
	return s.contacts.GetByID(ctx, messageID)
}

func (s *Service) MarkContactMessageRead(ctx context.Context, messageID uuid.UUID, read bool) error {
	if _, err := s.contacts.GetByID(ctx, messageID); err != nil {
		return err
	}
	return s.contacts.MarkRead(ctx, messageID, read, s.nowFn())
}

// DeleteContactMessage removes the row outright; unlike portfolio content,
// the inbox has no soft-delete notion.
func (s *Service) DeleteContactMessage(ctx context.Context, messageID uuid.UUID) error {
	return s.contacts.Delete(ctx, messageID)
}

func (s *Service) ContactStats(ctx context.Context) (ContactStatsResponse, error) {
	since := s.nowFn().Add(-s.cfg.ContactRecentWindow)
	stats, err := s.contacts.Stats(ctx, since)
	if err != nil {
		return ContactStatsResponse{}, err
	}
	return ContactStatsResponse{
		Total:   stats.Total,
		Unread:  stats.Unread,
		Replied: stats.Replied,
		Recent:  stats.Recent,
	}, nil
}
