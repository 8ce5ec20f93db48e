package workers

import (
	"context"
	"time"

	"clubsphere_backend/internal/logger"
	"clubsphere_backend/internal/repositories"
)

// MembershipWorker expires overdue memberships in the background.
type MembershipWorker struct {
	membershipRepo repositories.MembershipRepository
	interval       time.Duration
}

func NewMembershipWorker(membershipRepo repositories.MembershipRepository) *MembershipWorker {
	return &MembershipWorker{
		membershipRepo: membershipRepo,
		interval:       6 * time.Hour,
	}
}

func (w *MembershipWorker) Start(ctx context.Context) {
	go w.expireOverdueMemberships(ctx)
}

func (w *MembershipWorker) expireOverdueMemberships(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("membership worker stopped")
			return
		case <-ticker.C:
			expired, err := w.membershipRepo.ExpireOverdue()
			logger.WorkerLog("membership", "expire_overdue", err)
			if err == nil && expired > 0 {
				logger.Info("expired overdue memberships", "count", expired)
			}
		}
	}
}
