package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
	"time"

	"studio_pricing/internal/domain/entities"
	"studio_pricing/internal/infrastructure/logging"
	"studio_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound            = errors.New("quote not found")
	ErrInvalidQuoteID           = errors.New("invalid quote id")
	ErrInvalidShareID           = errors.New("invalid share id")
	ErrInvalidRecipientEmail    = errors.New("invalid recipient email")
	ErrEstimateAlreadyQuoted    = errors.New("estimate already quoted")
	ErrAssumptionsNotConfirmed  = errors.New("assumptions not confirmed")
	ErrQuoteAlreadyAccepted     = errors.New("quote already accepted")
	ErrShareIDGenerationFailed  = errors.New("share id generation failed")
	ErrQuoteRendererUnavailable = errors.New("quote renderer not configured")
)

const shareIDAttempts = 5

// IQuoteUseCase encapsulates the quote lifecycle.
//
//   - Publish snapshots an estimate by value, issues a fresh shareId and
//     persists the quote as sent; the source estimate flips to quoted.
//   - ViewByShareID is the public page load: first view stamps viewedAt,
//     later views are no-ops (set-once, never reverting).
//   - Accept requires the recipient to have confirmed the assumptions.

type IQuoteUseCase interface {
	Publish(ctx context.Context, estimateID, recipientEmail string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	ViewByShareID(ctx context.Context, shareID string) (entities.Quote, error)
	Accept(ctx context.Context, shareID string, assumptionsConfirmed bool) (entities.Quote, error)
	RenderPDF(ctx context.Context, shareID string) ([]byte, error)
}

type QuoteUseCase struct {
	repo         interfaces.IQuoteRepository
	estimateRepo interfaces.IEstimateRepository
	mailer       interfaces.IMailer
	renderer     interfaces.IQuoteRenderer
	publicURL    string
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	estimateRepo interfaces.IEstimateRepository,
	mailer interfaces.IMailer,
	renderer interfaces.IQuoteRenderer,
	publicURL string,
) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, estimateRepo: estimateRepo, mailer: mailer, renderer: renderer, publicURL: strings.TrimRight(publicURL, "/")}
}

func (u *QuoteUseCase) Publish(ctx context.Context, estimateID, recipientEmail string) (entities.Quote, error) {
	log := logging.L("quote.usecase")

	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Quote{}, ErrInvalidEstimateID
	}
	recipientEmail = strings.TrimSpace(recipientEmail)
	if recipientEmail == "" || !strings.Contains(recipientEmail, "@") {
		return entities.Quote{}, ErrInvalidRecipientEmail
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Quote{}, err
	}
	if est.ID == "" {
		return entities.Quote{}, ErrEstimateNotFound
	}
	if est.Status == entities.EstimateStatusQuoted {
		return entities.Quote{}, ErrEstimateAlreadyQuoted
	}

	shareID, err := u.freshShareID(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	// Copy-on-publish: the snapshot decouples the quote from later catalog or
	// rate-card edits. EstimateID stays for traceability only.
	q := entities.Quote{
		ID:             uuid.NewString(),
		EstimateID:     est.ID,
		RecipientEmail: recipientEmail,
		ShareID:        shareID,
		Snapshot:       est.Clone(),
		Status:         entities.QuoteStatusSent,
		CreatedAt:      time.Now().UTC(),
	}

	// The status flips before the quote is written: a failed flip aborts the
	// publish, so the already-quoted guard can never be lost to a quote that
	// exists next to a still-draft estimate.
	flipped, err := u.estimateRepo.UpdateStatus(ctx, est.ID, entities.EstimateStatusQuoted)
	if err != nil {
		return entities.Quote{}, err
	}
	if flipped.ID == "" {
		return entities.Quote{}, ErrEstimateNotFound
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		if _, revertErr := u.estimateRepo.UpdateStatus(ctx, est.ID, entities.EstimateStatusDraft); revertErr != nil {
			log.Warnw("estimate status revert failed after quote create error", "estimate_id", est.ID, "err", revertErr)
		}
		return entities.Quote{}, err
	}
	log.Infow("quote published", "quote_id", created.ID, "estimate_id", est.ID, "share_id", created.ShareID)

	// Best effort: the quote exists whether or not the email lands.
	if u.mailer != nil {
		link := u.publicURL + "/q/" + created.ShareID
		msg := interfaces.Email{
			To:      recipientEmail,
			Subject: "Your project quote is ready",
			HTML: fmt.Sprintf("<p>Your quote is ready: <a href=%q>%s</a></p><p>Estimated range: $%.0f – $%.0f.</p>",
				link, link, created.Snapshot.PriceMin, created.Snapshot.PriceMax),
		}
		if err := u.mailer.Send(ctx, msg); err != nil {
			log.Warnw("quote email send failed", "quote_id", created.ID, "err", err)
		}
	}

	return created, nil
}

// freshShareID generates a short URL-safe capability token, retrying on the
// unlikely collision with an existing quote.
func (u *QuoteUseCase) freshShareID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < shareIDAttempts; attempt++ {
		token, err := randomShareID()
		if err != nil {
			return "", err
		}
		existing, err := u.repo.GetByShareID(ctx, token)
		if err != nil {
			return "", err
		}
		if existing.ID == "" {
			return token, nil
		}
	}
	return "", ErrShareIDGenerationFailed
}

func randomShareID() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b[:])), nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) ViewByShareID(ctx context.Context, shareID string) (entities.Quote, error) {
	q, err := u.getByShareID(ctx, shareID)
	if err != nil {
		return entities.Quote{}, err
	}

	// Set-once: a second view leaves viewedAt untouched and never moves the
	// status backward from accepted.
	if q.ViewedAt.IsZero() {
		q.ViewedAt = time.Now().UTC()
		if q.Status.CanTransitionTo(entities.QuoteStatusViewed) {
			q.Status = entities.QuoteStatusViewed
		}
		return u.repo.Save(ctx, q)
	}
	return q, nil
}

func (u *QuoteUseCase) Accept(ctx context.Context, shareID string, assumptionsConfirmed bool) (entities.Quote, error) {
	log := logging.L("quote.usecase")

	q, err := u.getByShareID(ctx, shareID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status == entities.QuoteStatusAccepted {
		return entities.Quote{}, ErrQuoteAlreadyAccepted
	}
	// "No surprises": an acceptance without confirmed assumptions is not a
	// valid acceptance.
	if !assumptionsConfirmed {
		return entities.Quote{}, ErrAssumptionsNotConfirmed
	}

	q.AssumptionsConfirmed = true
	q.Status = entities.QuoteStatusAccepted
	q.AcceptedAt = time.Now().UTC()
	if q.ViewedAt.IsZero() {
		q.ViewedAt = q.AcceptedAt
	}

	accepted, err := u.repo.Save(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Infow("quote accepted", "quote_id", accepted.ID, "share_id", accepted.ShareID)
	return accepted, nil
}

func (u *QuoteUseCase) RenderPDF(ctx context.Context, shareID string) ([]byte, error) {
	if u.renderer == nil {
		return nil, ErrQuoteRendererUnavailable
	}
	q, err := u.getByShareID(ctx, shareID)
	if err != nil {
		return nil, err
	}
	return u.renderer.RenderPDF(ctx, q)
}

func (u *QuoteUseCase) getByShareID(ctx context.Context, shareID string) (entities.Quote, error) {
	shareID = strings.TrimSpace(shareID)
	if shareID == "" {
		return entities.Quote{}, ErrInvalidShareID
	}

	q, err := u.repo.GetByShareID(ctx, shareID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
