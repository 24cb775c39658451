package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type ListTiersUseCase struct {
	users port.UserAPIPort
}

func NewListTiersUseCase(users port.UserAPIPort) *ListTiersUseCase {
	return &ListTiersUseCase{users: users}
}

// Execute возвращает тарифы с подписью кнопки относительно текущего тарифа.
// session может быть nil для анонимного посетителя.
func (uc *ListTiersUseCase) Execute(ctx context.Context, session *domain.Session) ([]domain.TierOption, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListTiers"})

	ucLogger.Info("Use case started", nil)

	tiers, err := uc.users.GetAgentTiers(ctx)
	if err != nil {
		ucLogger.Error("Failed to load agent tiers", err, nil)
		return nil, err
	}

	var current *domain.AgentTier
	if session != nil && session.Dashboard != nil {
		current = session.Dashboard.Tier
	}

	options := make([]domain.TierOption, len(tiers))
	for i, tier := range tiers {
		options[i] = domain.TierOption{
			Tier:      tier,
			Action:    domain.TierActionFor(tier, current),
			IsUpgrade: domain.IsUpgrade(tier, current),
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"tiers": len(options)})
	return options, nil
}
