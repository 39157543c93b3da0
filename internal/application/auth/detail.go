package auth

import (
	"context"

	"github.com/Anand4756/assessment-Connectverse/internal/domain"
)

func (s *Service) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
