package service

import (
	"errors"
	"fmt"

	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/finance"
	"brokerage-backoffice/internal/logger"
	"brokerage-backoffice/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SponsorChainResolver walks an agent's sponsor pointers upward, producing
// the ordered upline that revenue share is paid to.
type SponsorChainResolver struct {
	agents repository.AgentRepositoryInterface
	log    *logger.Logger
}

// NewSponsorChainResolver creates a new sponsor chain resolver
func NewSponsorChainResolver(agents repository.AgentRepositoryInterface) *SponsorChainResolver {
	return &SponsorChainResolver{
		agents: agents,
		log:    logger.New(),
	}
}

// Resolve returns up to MaxSponsorDepth ancestors of the closing agent,
// tier 1 first. The walk keeps a visited set: the no-cycle invariant is
// enforced on writes, but a cycle in stored data must stop the walk and be
// reported instead of paying a duplicate or looping forever.
func (r *SponsorChainResolver) Resolve(tx *gorm.DB, closer *models.Agent) ([]models.Agent, error) {
	agents := r.agents
	if tx != nil {
		agents = agents.WithTx(tx)
	}

	visited := map[uuid.UUID]bool{closer.ID: true}
	chain := make([]models.Agent, 0, finance.MaxSponsorDepth)

	current := closer
	for len(chain) < finance.MaxSponsorDepth {
		if current.SponsorID == nil {
			break
		}
		if visited[*current.SponsorID] {
			r.log.WithFields(map[string]interface{}{
				"agent_id":   closer.ID,
				"sponsor_id": *current.SponsorID,
			}).Error("sponsor chain cycle detected")
			return nil, apperrors.ErrSponsorChainCycle
		}

		sponsor, err := agents.GetByID(*current.SponsorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDanglingSponsorRef
			}
			return nil, fmt.Errorf("failed to load sponsor: %w", err)
		}

		visited[sponsor.ID] = true
		chain = append(chain, *sponsor)
		current = sponsor
	}

	return chain, nil
}

// WouldCycle reports whether setting newSponsorID on the given agent would
// introduce a cycle. Used by agent updates before the write is accepted.
func (r *SponsorChainResolver) WouldCycle(agentID uuid.UUID, newSponsorID uuid.UUID) (bool, error) {
	if agentID == newSponsorID {
		return true, nil
	}

	visited := map[uuid.UUID]bool{}
	currentID := newSponsorID
	for {
		if currentID == agentID {
			return true, nil
		}
		if visited[currentID] {
			// Pre-existing cycle upstream; the new link does not reach the
			// agent but the data needs operator attention either way.
			return false, apperrors.ErrSponsorChainCycle
		}
		visited[currentID] = true

		current, err := r.agents.GetByID(currentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, apperrors.ErrDanglingSponsorRef
			}
			return false, fmt.Errorf("failed to load sponsor: %w", err)
		}
		if current.SponsorID == nil {
			return false, nil
		}
		currentID = *current.SponsorID
	}
}
