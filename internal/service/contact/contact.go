// internal/service/contact/contact.go
package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mehndi-service/internal/domain/contact"
	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/ids"
	"mehndi-service/internal/pkg/pagination"
	"mehndi-service/internal/pkg/validation"
	"mehndi-service/internal/repository/postgres"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, c *contact.Contact) error
	FindByID(ctx context.Context, id string) (*contact.Contact, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	UpdateStatus(ctx context.Context, c *contact.Contact) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q postgres.ContactQuery) ([]contact.Contact, int64, error)
	GetStats(ctx context.Context, today time.Time) (*contact.Stats, error)
}

type Notifier interface {
	ContactCreated(c *contact.Contact) <-chan struct{}
}

type ContactService struct {
	contactRepo Repository
	notifier    Notifier
	logger      *zap.Logger
	now         func() time.Time
	today       func() time.Time
}

func NewContactService(contactRepo Repository, notifier Notifier, logger *zap.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
		today:       validation.Today,
	}
}

// CreateContact stores a message from the public contact form.
func (s *ContactService) CreateContact(ctx context.Context, req *contact.CreateContactRequest) (*contact.Contact, error) {
	c := &contact.Contact{
		ID:      ids.New(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Service: validation.NormalizeContactService(req.Service),
		Message: strings.TrimSpace(req.Message),
		Status:  contact.StatusNew,
	}

	if err := s.contactRepo.Create(ctx, c); err != nil {
		s.logger.Error("failed to create contact", zap.Error(err))
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	s.logger.Info("contact message received",
		zap.String("id", c.ID),
		zap.String("service", c.Service),
	)

	if s.notifier != nil {
		s.notifier.ContactCreated(c)
	}
	return c, nil
}

// GetContact returns the message and marks it Read the first time an admin
// opens it.
func (s *ContactService) GetContact(ctx context.Context, id string) (*contact.Contact, error) {
	c, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Status == contact.StatusNew {
		changed, err := s.contactRepo.MarkRead(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if changed {
			c.Status = contact.StatusRead
		}
	}
	return c, nil
}

// UpdateStatus sets the status and/or records a reply. A reply marks the
// message replied and moves it to Replied unless it is being closed.
func (s *ContactService) UpdateStatus(ctx context.Context, id string, req *contact.UpdateStatusRequest) (*contact.Contact, error) {
	reply := ""
	if req.ReplyMessage != nil {
		reply = strings.TrimSpace(*req.ReplyMessage)
	}
	if req.Status == "" && reply == "" {
		return nil, &xerrors.ValidationError{Fields: []xerrors.FieldError{
			{Field: "status", Message: "status or replyMessage is required"},
			{Field: "replyMessage", Message: "status or replyMessage is required"},
		}}
	}

	c, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		c.Status = req.Status
	}
	if reply != "" {
		now := s.now().UTC()
		c.Replied = true
		c.ReplyMessage = reply
		c.RepliedAt = &now
		if c.Status != contact.StatusClosed {
			c.Status = contact.StatusReplied
		}
	}

	if err := s.contactRepo.UpdateStatus(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("contact updated",
		zap.String("id", c.ID),
		zap.String("status", c.Status),
		zap.Bool("replied", c.Replied),
	)
	return c, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, id string) error {
	if err := s.contactRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("contact deleted", zap.String("id", id))
	return nil
}

func (s *ContactService) ListContacts(ctx context.Context, f *contact.ListFilters) (*pagination.Result[contact.Contact], error) {
	f.Normalize()

	q := postgres.ContactQuery{
		Status:  f.Status,
		Service: f.Service,
		Replied: f.Replied,
		Search:  f.Search,
		SortBy:  f.SortBy,
		Order:   f.Order,
		Limit:   f.Limit,
		Offset:  f.Offset(),
	}
	if f.Date != "" {
		d, err := validation.NormalizeDate(f.Date)
		if err != nil {
			return nil, xerrors.NewValidationError("date", "must be a date in YYYY-MM-DD format")
		}
		q.Day = &d
	}

	items, total, err := s.contactRepo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return &pagination.Result[contact.Contact]{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (s *ContactService) GetStats(ctx context.Context) (*contact.Stats, error) {
	stats, err := s.contactRepo.GetStats(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to get contact stats: %w", err)
	}
	return stats, nil
}
