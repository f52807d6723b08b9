// Package fundflow contains the fund-flow use cases.
package fundflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// GetSettingsInput represents the input for reading the settings document.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsOutput represents the settings document read result.
type GetSettingsOutput struct {
	Settings *entity.Settings
}

// GetSettingsUseCase reads the per-user settings document, creating a
// zero-valued one on first touch.
type GetSettingsUseCase struct {
	store adapter.LedgerStore
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(store adapter.LedgerStore) *GetSettingsUseCase {
	return &GetSettingsUseCase{store: store}
}

// Execute reads the settings document.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
	settings, err := uc.store.GetSettings(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &GetSettingsOutput{Settings: settings}, nil
}
