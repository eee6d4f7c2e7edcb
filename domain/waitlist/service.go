package waitlist

import (
	"context"

	"github.com/evervow/leads-api/internal/log"
)

type WaitlistService interface {
	// JoinWaitlist validates, normalizes and stores one waitlist submission.
	// A rejected payload returns an INVALID_REQUEST error; a storage failure
	// returns a DATABASE_ERROR. Nothing is retried.
	JoinWaitlist(ctx context.Context, req *JoinRequest) error
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository) WaitlistService {
	return &waitlistService{logger: logger, repository: repository}
}

func (s *waitlistService) JoinWaitlist(ctx context.Context, req *JoinRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	submission, err := validateJoinRequest(req)
	if err != nil {
		logger.Error("Rejected waitlist submission", "error", err)
		return err
	}

	if _, err := s.repository.CreateSubmission(ctx, submission); err != nil {
		logger.Error("Failed to store waitlist submission", "error", err)
		return err
	}

	return nil
}
