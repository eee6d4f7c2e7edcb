package waitlist

import (
	"context"
	"testing"

	"github.com/evervow/leads-api/internal/log"
	"github.com/evervow/leads-api/internal/models"
	apperrors "github.com/evervow/leads-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWaitlistService_JoinWaitlist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewWaitlistService(logger, mockRepo)

	t.Run("successful submission is normalized before storage", func(t *testing.T) {
		req := &JoinRequest{
			Email:    "A@B.com",
			FullName: " Jane Doe ",
			Role:     "Vendor",
		}

		var stored *models.WaitlistSubmission
		mockRepo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, submission *models.WaitlistSubmission) (*models.WaitlistSubmission, error) {
				stored = submission
				return submission, nil
			})

		err := service.JoinWaitlist(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "a@b.com", stored.Email)
		assert.Equal(t, "Jane Doe", *stored.FullName)
		assert.Equal(t, models.RoleVendor, stored.Role)
	})

	t.Run("repository error surfaces as storage failure", func(t *testing.T) {
		req := &JoinRequest{Email: "test@example.com"}

		mockRepo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewDatabaseError("DB error", nil))

		err := service.JoinWaitlist(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeDatabaseError, apperrors.GetErrorType(err))
	})

	t.Run("invalid email is rejected before any storage call", func(t *testing.T) {
		// No EXPECT: any repository call fails the test.
		for _, email := range []string{"", "   ", "not-an-email", "missing-at.example.com"} {
			err := service.JoinWaitlist(context.Background(), &JoinRequest{Email: email})

			assert.Error(t, err)
			assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
			assert.Equal(t, "Invalid email", apperrors.GetHumanReadableMessage(err))
		}
	})

	t.Run("nil request is rejected", func(t *testing.T) {
		err := service.JoinWaitlist(context.Background(), nil)

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})
}

func TestWaitlistService_RoleCoercion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewWaitlistService(logger, mockRepo)

	cases := []struct {
		name string
		role string
		want string
	}{
		{"user passes through", "User", models.RoleUser},
		{"vendor passes through", "Vendor", models.RoleVendor},
		{"other passes through", "Other", models.RoleOther},
		{"absent role collapses to Other", "", models.RoleOther},
		{"unknown role collapses to Other", "Planner", models.RoleOther},
		{"wrong case collapses to Other", "user", models.RoleOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stored *models.WaitlistSubmission
			mockRepo.EXPECT().
				CreateSubmission(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, submission *models.WaitlistSubmission) (*models.WaitlistSubmission, error) {
					stored = submission
					return submission, nil
				})

			err := service.JoinWaitlist(context.Background(), &JoinRequest{
				Email: "lead@example.com",
				Role:  tc.role,
			})

			assert.NoError(t, err)
			assert.Equal(t, tc.want, stored.Role)
		})
	}
}

func TestWaitlistService_OptionalNameNormalization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewWaitlistService(logger, mockRepo)

	t.Run("whitespace-only name stored as absent", func(t *testing.T) {
		var stored *models.WaitlistSubmission
		mockRepo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, submission *models.WaitlistSubmission) (*models.WaitlistSubmission, error) {
				stored = submission
				return submission, nil
			})

		err := service.JoinWaitlist(context.Background(), &JoinRequest{
			Email:    "lead@example.com",
			FullName: "   ",
		})

		assert.NoError(t, err)
		assert.Nil(t, stored.FullName)
	})
}
