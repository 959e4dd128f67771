package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"studio_pricing/internal/domain/entities"
	"studio_pricing/internal/domain/pricing"
	"studio_pricing/internal/infrastructure/logging"
	"studio_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInquiryNotFound          = errors.New("inquiry not found")
	ErrInvalidInquiryID         = errors.New("invalid inquiry id")
	ErrInvalidInquiryInput      = errors.New("invalid inquiry input")
	ErrInvalidInquiryStatus     = errors.New("invalid inquiry status")
	ErrInquiryStatusWouldRevert = errors.New("inquiry status transition would move backward")
)

// SubmitInquiryInput is the payload accepted from the marketing site's
// estimate entry point.
type SubmitInquiryInput struct {
	Description string
	UserType    entities.UserType
	Timeline    entities.Timeline
	Email       string
	Name        string
}

// InquiryPatch carries the admin-editable fields; nil means "leave as is".
type InquiryPatch struct {
	Status      *entities.InquiryStatus
	ReviewNotes *string
	ActualQuote *float64
	EstimateID  *string
}

// IInquiryUseCase exposes the visitor inquiry workflow.
//
//   - Submit runs the keyword detector + rough range calculator and persists
//     the inquiry; an admin notification email is fire-and-forget.
//   - Update is the admin review flow; status moves forward only.
type IInquiryUseCase interface {
	Submit(ctx context.Context, in SubmitInquiryInput) (entities.Inquiry, error)
	GetByID(ctx context.Context, id string) (entities.Inquiry, error)
	List(ctx context.Context, status entities.InquiryStatus) ([]entities.Inquiry, error)
	Update(ctx context.Context, id string, patch InquiryPatch) (entities.Inquiry, error)
}

type InquiryUseCase struct {
	repo          interfaces.IInquiryRepository
	mailer        interfaces.IMailer
	operatorEmail string
}

var _ IInquiryUseCase = (*InquiryUseCase)(nil)

func NewInquiryUseCase(repo interfaces.IInquiryRepository, mailer interfaces.IMailer, operatorEmail string) *InquiryUseCase {
	return &InquiryUseCase{repo: repo, mailer: mailer, operatorEmail: operatorEmail}
}

func (u *InquiryUseCase) Submit(ctx context.Context, in SubmitInquiryInput) (entities.Inquiry, error) {
	log := logging.L("inquiry.usecase")

	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return entities.Inquiry{}, ErrInvalidInquiryInput
	}

	rough := pricing.RoughRange(in.Description, in.UserType, in.Timeline)
	keywords := make([]string, 0, len(rough.Keywords))
	for _, k := range rough.Keywords {
		keywords = append(keywords, string(k))
	}

	now := time.Now().UTC()
	inquiry := entities.Inquiry{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(in.Description),
		UserType:    in.UserType,
		Timeline:    in.Timeline,
		Email:       in.Email,
		Name:        strings.TrimSpace(in.Name),
		RoughMin:    rough.Min,
		RoughMax:    rough.Max,
		Keywords:    keywords,
		Status:      entities.InquiryStatusNew,
		CreatedAt:   now,
	}

	created, err := u.repo.Create(ctx, inquiry)
	if err != nil {
		return entities.Inquiry{}, err
	}
	log.Infow("inquiry submitted", "inquiry_id", created.ID, "rough_min", created.RoughMin, "rough_max", created.RoughMax, "keywords", created.Keywords)

	// Best effort: a notification failure never rolls back the persisted
	// inquiry.
	if u.mailer != nil && u.operatorEmail != "" {
		msg := interfaces.Email{
			To:      u.operatorEmail,
			Subject: fmt.Sprintf("New inquiry: $%d-$%d", created.RoughMin, created.RoughMax),
			HTML: fmt.Sprintf("<p>From: %s (%s)</p><p>%s</p><p>Rough range: $%d – $%d. Tags: %s.</p>",
				created.Name, created.Email, created.Description, created.RoughMin, created.RoughMax, strings.Join(created.Keywords, ", ")),
		}
		if err := u.mailer.Send(ctx, msg); err != nil {
			log.Warnw("inquiry notification send failed", "inquiry_id", created.ID, "err", err)
		}
	}

	return created, nil
}

func (u *InquiryUseCase) GetByID(ctx context.Context, id string) (entities.Inquiry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Inquiry{}, ErrInvalidInquiryID
	}

	i, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if i.ID == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}
	return i, nil
}

func (u *InquiryUseCase) List(ctx context.Context, status entities.InquiryStatus) ([]entities.Inquiry, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidInquiryStatus
	}
	return u.repo.List(ctx, status)
}

func (u *InquiryUseCase) Update(ctx context.Context, id string, patch InquiryPatch) (entities.Inquiry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Inquiry{}, ErrInvalidInquiryID
	}

	inquiry, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if inquiry.ID == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}

	if patch.Status != nil {
		next := *patch.Status
		if !next.Valid() {
			return entities.Inquiry{}, ErrInvalidInquiryStatus
		}
		if !inquiry.Status.CanTransitionTo(next) {
			return entities.Inquiry{}, ErrInquiryStatusWouldRevert
		}
		inquiry.Status = next
	}
	if patch.ReviewNotes != nil {
		inquiry.ReviewNotes = strings.TrimSpace(*patch.ReviewNotes)
	}
	if patch.ActualQuote != nil {
		inquiry.ActualQuote = *patch.ActualQuote
	}
	if patch.EstimateID != nil {
		inquiry.EstimateID = strings.TrimSpace(*patch.EstimateID)
	}

	// Any non-new status stamps reviewedAt, even when the review step was
	// skipped on the way to quoted/converted.
	if inquiry.Status != entities.InquiryStatusNew && inquiry.ReviewedAt.IsZero() {
		inquiry.ReviewedAt = time.Now().UTC()
	}

	return u.repo.Save(ctx, inquiry)
}
