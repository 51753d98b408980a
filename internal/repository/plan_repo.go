package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"drsparkle/internal/models"
	"drsparkle/internal/storage"
)

// ErrIncompletePlan is returned when a plan missing any day-slot is saved.
var ErrIncompletePlan = errors.New("weekly plan must cover all seven days")

// PlanRepository persists one weekly smile plan per user. Partial plans
// are rejected, never stored.
type PlanRepository struct {
	store storage.Store
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(store storage.Store) *PlanRepository {
	return &PlanRepository{store: store}
}

// Get returns a user's plan, or nil if none is stored.
func (r *PlanRepository) Get(userID string) (*models.WeeklySmilePlan, error) {
	if userID == "" {
		return nil, nil
	}
	raw, ok, err := r.store.Get(PlanKey(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to read plan for %s: %w", userID, err)
	}
	if !ok {
		return nil, nil
	}

	var plan models.WeeklySmilePlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan for %s: %w", userID, err)
	}
	return &plan, nil
}

// Save writes a user's plan. Plans missing any day are rejected.
func (r *PlanRepository) Save(userID string, plan *models.WeeklySmilePlan) error {
	if userID == "" || plan == nil {
		return nil
	}
	if !plan.IsComplete() {
		return ErrIncompletePlan
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan for %s: %w", userID, err)
	}
	if err := r.store.Set(PlanKey(userID), raw); err != nil {
		return fmt.Errorf("failed to write plan for %s: %w", userID, err)
	}
	return nil
}

// Delete removes a user's plan.
func (r *PlanRepository) Delete(userID string) error {
	if userID == "" {
		return nil
	}
	return r.store.Delete(PlanKey(userID))
}
