package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"studio_pricing/internal/domain/entities"
	"studio_pricing/internal/usecase/interfaces"
	mock_interfaces "studio_pricing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_Publish(t *testing.T) {
	draft := entities.Estimate{
		ID:       "est-1",
		Status:   entities.EstimateStatusDraft,
		PriceMin: 9000,
		PriceMid: 11000,
		PriceMax: 13500,
		Spec:     entities.BuildSpec{Modules: []string{"crud-core"}},
	}

	t.Run("invalid recipient", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, "")
		_, err := uc.Publish(context.Background(), "est-1", "nope")
		if !errors.Is(err, ErrInvalidRecipientEmail) {
			t.Fatalf("expected ErrInvalidRecipientEmail, got %v", err)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewQuoteUseCase(nil, estRepo, nil, nil, "")
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.Publish(context.Background(), "est-1", "client@example.com")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("already quoted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewQuoteUseCase(nil, estRepo, nil, nil, "")
		quoted := draft
		quoted.Status = entities.EstimateStatusQuoted
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(quoted, nil)

		_, err := uc.Publish(context.Background(), "est-1", "client@example.com")
		if !errors.Is(err, ErrEstimateAlreadyQuoted) {
			t.Fatalf("expected ErrEstimateAlreadyQuoted, got %v", err)
		}
	})

	t.Run("success snapshots the estimate and emails the link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewQuoteUseCase(repo, estRepo, mailer, nil, "https://studio.dev/")

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draft, nil)
		repo.EXPECT().GetByShareID(gomock.Any(), gomock.Any()).Return(entities.Quote{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusSent || q.EstimateID != "est-1" {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if len(q.ShareID) == 0 || q.ShareID != strings.ToLower(q.ShareID) {
					t.Fatalf("share id must be non-empty lowercase, got %q", q.ShareID)
				}
				if q.Snapshot.PriceMid != draft.PriceMid {
					t.Fatalf("snapshot missing estimate fields: %+v", q.Snapshot)
				}
				return q, nil
			},
		)
		estRepo.EXPECT().UpdateStatus(gomock.Any(), "est-1", entities.EstimateStatusQuoted).Return(draft, nil)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m interfaces.Email) error {
				if m.To != "client@example.com" || !strings.Contains(m.HTML, "https://studio.dev/q/") {
					t.Fatalf("unexpected email: %+v", m)
				}
				return nil
			},
		)

		q, err := uc.Publish(context.Background(), "est-1", "client@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID == "" {
			t.Fatalf("expected quote id")
		}
	})

	t.Run("status flip failure aborts the publish", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewQuoteUseCase(repo, estRepo, nil, nil, "")

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draft, nil)
		repo.EXPECT().GetByShareID(gomock.Any(), gomock.Any()).Return(entities.Quote{}, nil)
		// No quote may be written when the estimate keeps its draft status.
		estRepo.EXPECT().UpdateStatus(gomock.Any(), "est-1", entities.EstimateStatusQuoted).Return(entities.Estimate{}, errors.New("dynamo down"))

		_, err := uc.Publish(context.Background(), "est-1", "client@example.com")
		if err == nil {
			t.Fatalf("expected error when the status flip fails")
		}
	})

	t.Run("quote create failure reverts the status flip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewQuoteUseCase(repo, estRepo, nil, nil, "")

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draft, nil)
		repo.EXPECT().GetByShareID(gomock.Any(), gomock.Any()).Return(entities.Quote{}, nil)
		quoted := draft
		quoted.Status = entities.EstimateStatusQuoted
		estRepo.EXPECT().UpdateStatus(gomock.Any(), "est-1", entities.EstimateStatusQuoted).Return(quoted, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("write throttled"))
		estRepo.EXPECT().UpdateStatus(gomock.Any(), "est-1", entities.EstimateStatusDraft).Return(draft, nil)

		_, err := uc.Publish(context.Background(), "est-1", "client@example.com")
		if err == nil {
			t.Fatalf("expected create error to propagate")
		}
	})

	t.Run("share id collisions exhaust retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewQuoteUseCase(repo, estRepo, nil, nil, "")

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draft, nil)
		repo.EXPECT().GetByShareID(gomock.Any(), gomock.Any()).Return(entities.Quote{ID: "taken"}, nil).Times(shareIDAttempts)

		_, err := uc.Publish(context.Background(), "est-1", "client@example.com")
		if !errors.Is(err, ErrShareIDGenerationFailed) {
			t.Fatalf("expected ErrShareIDGenerationFailed, got %v", err)
		}
	})
}

func TestQuoteUseCase_ViewByShareID(t *testing.T) {
	t.Run("first view stamps viewedAt and flips status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, "")

		repo.EXPECT().GetByShareID(gomock.Any(), "abc123").Return(entities.Quote{ID: "q-1", ShareID: "abc123", Status: entities.QuoteStatusSent}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusViewed || q.ViewedAt.IsZero() {
					t.Fatalf("first view not recorded: %+v", q)
				}
				return q, nil
			},
		)

		_, err := uc.ViewByShareID(context.Background(), "abc123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("second view is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, "")

		viewed := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByShareID(gomock.Any(), "abc123").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusViewed, ViewedAt: viewed}, nil)

		q, err := uc.ViewByShareID(context.Background(), "abc123")
		if err != nil || !q.ViewedAt.Equal(viewed) {
			t.Fatalf("second view must not rewrite viewedAt: %+v %v", q, err)
		}
	})

	t.Run("unknown share id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, "")
		repo.EXPECT().GetByShareID(gomock.Any(), "nope").Return(entities.Quote{}, nil)

		_, err := uc.ViewByShareID(context.Background(), "nope")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_Accept(t *testing.T) {
	t.Run("assumptions must be confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, "")
		repo.EXPECT().GetByShareID(gomock.Any(), "abc123").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusViewed}, nil)

		_, err := uc.Accept(context.Background(), "abc123", false)
		if !errors.Is(err, ErrAssumptionsNotConfirmed) {
			t.Fatalf("expected ErrAssumptionsNotConfirmed, got %v", err)
		}
	})

	t.Run("double accept rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, "")
		repo.EXPECT().GetByShareID(gomock.Any(), "abc123").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted}, nil)

		_, err := uc.Accept(context.Background(), "abc123", true)
		if !errors.Is(err, ErrQuoteAlreadyAccepted) {
			t.Fatalf("expected ErrQuoteAlreadyAccepted, got %v", err)
		}
	})

	t.Run("accept from sent records view and acceptance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, "")

		repo.EXPECT().GetByShareID(gomock.Any(), "abc123").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusAccepted || !q.AssumptionsConfirmed {
					t.Fatalf("acceptance not recorded: %+v", q)
				}
				if q.AcceptedAt.IsZero() || q.ViewedAt.IsZero() {
					t.Fatalf("timestamps missing: %+v", q)
				}
				return q, nil
			},
		)

		_, err := uc.Accept(context.Background(), "abc123", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_RenderPDF(t *testing.T) {
	t.Run("renderer not configured", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, "")
		_, err := uc.RenderPDF(context.Background(), "abc123")
		if !errors.Is(err, ErrQuoteRendererUnavailable) {
			t.Fatalf("expected ErrQuoteRendererUnavailable, got %v", err)
		}
	})

	t.Run("delegates to renderer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, renderer, "")

		q := entities.Quote{ID: "q-1", ShareID: "abc123"}
		repo.EXPECT().GetByShareID(gomock.Any(), "abc123").Return(q, nil)
		renderer.EXPECT().RenderPDF(gomock.Any(), q).Return([]byte("%PDF-1.4"), nil)

		pdf, err := uc.RenderPDF(context.Background(), "abc123")
		if err != nil || string(pdf) != "%PDF-1.4" {
			t.Fatalf("unexpected result: %q %v", pdf, err)
		}
	})
}

func TestRandomShareID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := randomShareID()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != strings.ToLower(id) || strings.Contains(id, "=") {
			t.Fatalf("share id must be lowercase and unpadded, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate share id %q in 100 draws", id)
		}
		seen[id] = true
	}
}
