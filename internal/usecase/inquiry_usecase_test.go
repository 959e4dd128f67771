package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio_pricing/internal/domain/entities"
	mock_interfaces "studio_pricing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInquiryUseCase_Submit(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewInquiryUseCase(nil, nil, "")
		_, err := uc.Submit(context.Background(), SubmitInquiryInput{Email: "not-an-email"})
		if !errors.Is(err, ErrInvalidInquiryInput) {
			t.Fatalf("expected ErrInvalidInquiryInput, got %v", err)
		}
	})

	t.Run("success computes rough range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewInquiryUseCase(repo, nil, "")

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Inquiry{})).DoAndReturn(
			func(_ context.Context, i entities.Inquiry) (entities.Inquiry, error) {
				if i.ID == "" || i.Status != entities.InquiryStatusNew || i.CreatedAt.IsZero() {
					t.Fatalf("unexpected inquiry: %+v", i)
				}
				if i.RoughMin != 4500 || i.RoughMax != 11000 {
					t.Fatalf("unexpected rough range: %d-%d", i.RoughMin, i.RoughMax)
				}
				if len(i.Keywords) != 3 {
					t.Fatalf("unexpected keywords: %v", i.Keywords)
				}
				return i, nil
			},
		)

		res, err := uc.Submit(context.Background(), SubmitInquiryInput{
			Description: "I need a chatbot with user logins and a dashboard",
			UserType:    entities.UserTypeTeam,
			Timeline:    entities.TimelineSoon,
			Email:       "visitor@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("notification failure does not fail the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewInquiryUseCase(repo, mailer, "owner@studio.dev")

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i entities.Inquiry) (entities.Inquiry, error) { return i, nil },
		)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		_, err := uc.Submit(context.Background(), SubmitInquiryInput{Email: "visitor@example.com"})
		if err != nil {
			t.Fatalf("mailer failure must not surface: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewInquiryUseCase(repo, nil, "")

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Inquiry{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), SubmitInquiryInput{Email: "visitor@example.com"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestInquiryUseCase_Update(t *testing.T) {
	status := func(s entities.InquiryStatus) *entities.InquiryStatus { return &s }

	t.Run("invalid id", func(t *testing.T) {
		uc := NewInquiryUseCase(nil, nil, "")
		_, err := uc.Update(context.Background(), "  ", InquiryPatch{})
		if !errors.Is(err, ErrInvalidInquiryID) {
			t.Fatalf("expected ErrInvalidInquiryID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewInquiryUseCase(repo, nil, "")
		repo.EXPECT().GetByID(gomock.Any(), "inq-1").Return(entities.Inquiry{}, nil)

		_, err := uc.Update(context.Background(), "inq-1", InquiryPatch{})
		if !errors.Is(err, ErrInquiryNotFound) {
			t.Fatalf("expected ErrInquiryNotFound, got %v", err)
		}
	})

	t.Run("backward transition rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewInquiryUseCase(repo, nil, "")
		repo.EXPECT().GetByID(gomock.Any(), "inq-1").Return(entities.Inquiry{ID: "inq-1", Status: entities.InquiryStatusQuoted}, nil)

		_, err := uc.Update(context.Background(), "inq-1", InquiryPatch{Status: status(entities.InquiryStatusNew)})
		if !errors.Is(err, ErrInquiryStatusWouldRevert) {
			t.Fatalf("expected ErrInquiryStatusWouldRevert, got %v", err)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewInquiryUseCase(repo, nil, "")
		repo.EXPECT().GetByID(gomock.Any(), "inq-1").Return(entities.Inquiry{ID: "inq-1", Status: entities.InquiryStatusNew}, nil)

		_, err := uc.Update(context.Background(), "inq-1", InquiryPatch{Status: status("bogus")})
		if !errors.Is(err, ErrInvalidInquiryStatus) {
			t.Fatalf("expected ErrInvalidInquiryStatus, got %v", err)
		}
	})

	t.Run("skipping review still stamps reviewedAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewInquiryUseCase(repo, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "inq-1").Return(entities.Inquiry{ID: "inq-1", Status: entities.InquiryStatusNew}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i entities.Inquiry) (entities.Inquiry, error) {
				if i.Status != entities.InquiryStatusQuoted {
					t.Fatalf("expected quoted, got %s", i.Status)
				}
				if i.ReviewedAt.IsZero() {
					t.Fatalf("reviewedAt must be stamped on any non-new status")
				}
				return i, nil
			},
		)

		_, err := uc.Update(context.Background(), "inq-1", InquiryPatch{Status: status(entities.InquiryStatusQuoted)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("existing reviewedAt is preserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewInquiryUseCase(repo, nil, "")

		reviewed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "inq-1").Return(entities.Inquiry{ID: "inq-1", Status: entities.InquiryStatusReviewed, ReviewedAt: reviewed}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i entities.Inquiry) (entities.Inquiry, error) {
				if !i.ReviewedAt.Equal(reviewed) {
					t.Fatalf("reviewedAt changed: %v", i.ReviewedAt)
				}
				return i, nil
			},
		)

		_, err := uc.Update(context.Background(), "inq-1", InquiryPatch{Status: status(entities.InquiryStatusConverted)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("notes and links patch without status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewInquiryUseCase(repo, nil, "")

		notes := " looks promising "
		quoteVal := 12500.0
		estID := "est-9"
		repo.EXPECT().GetByID(gomock.Any(), "inq-1").Return(entities.Inquiry{ID: "inq-1", Status: entities.InquiryStatusNew}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i entities.Inquiry) (entities.Inquiry, error) {
				if i.ReviewNotes != "looks promising" || i.ActualQuote != 12500.0 || i.EstimateID != "est-9" {
					t.Fatalf("patch not applied: %+v", i)
				}
				if !i.ReviewedAt.IsZero() {
					t.Fatalf("still-new inquiry must not get reviewedAt")
				}
				return i, nil
			},
		)

		_, err := uc.Update(context.Background(), "inq-1", InquiryPatch{ReviewNotes: &notes, ActualQuote: &quoteVal, EstimateID: &estID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInquiryUseCase_List(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewInquiryUseCase(nil, nil, "")
		_, err := uc.List(context.Background(), "bogus")
		if !errors.Is(err, ErrInvalidInquiryStatus) {
			t.Fatalf("expected ErrInvalidInquiryStatus, got %v", err)
		}
	})

	t.Run("passes filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewInquiryUseCase(repo, nil, "")
		repo.EXPECT().List(gomock.Any(), entities.InquiryStatusNew).Return([]entities.Inquiry{{ID: "inq-1"}}, nil)

		got, err := uc.List(context.Background(), entities.InquiryStatusNew)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}
