package usecase

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type SearchPropertiesUseCase struct {
	properties port.PropertyAPIPort
	sequencer  *searchSequencer
}

func NewSearchPropertiesUseCase(properties port.PropertyAPIPort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{properties: properties, sequencer: newSearchSequencer()}
}

// Execute загружает страницу выдачи. Ошибка API не пробрасывается, а кладется
// в ListResult.Err, чтобы страница отрисовалась с пустым списком.
func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, sessionKey string, filter domain.PropertyQueryFilter) domain.ListResult {
	logger := contextkeys.LoggerFromContext(ctx)
	page := filter.CurrentPage()
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchProperties",
		"query":    domain.Serialize(filter),
		"page":     page,
	})

	ucLogger.Info("Use case started", nil)

	fetchCtx := ctx
	var seq uint64
	if sessionKey != "" {
		var done func()
		fetchCtx, seq, done = uc.sequencer.begin(ctx, sessionKey)
		defer done()
	}

	items, total, err := uc.properties.SearchProperties(fetchCtx, filter, page, domain.PageSize)

	if sessionKey != "" && !uc.sequencer.isCurrent(sessionKey, seq) {
		ucLogger.Info("Search superseded by a newer one, response discarded", nil)
		return domain.ListResult{Page: page, PageSize: domain.PageSize, Stale: true}
	}

	if err != nil {
		ucLogger.Error("Property search failed", err, nil)
		return domain.ListResult{Items: []domain.PropertySummary{}, Page: page, PageSize: domain.PageSize, Err: err}
	}

	if total < len(items) {
		total = len(items)
	}
	result := domain.ListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   domain.PageSize,
		TotalPages: (total + domain.PageSize - 1) / domain.PageSize,
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": total, "items_on_page": len(items)})
	return result
}
