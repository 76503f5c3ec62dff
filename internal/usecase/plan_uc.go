// File: internal/usecase/plan_uc.go
package usecase

import (
	"proposal-ai-subscription/internal/domain/model"
)

// Compile-time check
var _ PlanUseCase = (*planUC)(nil)

// PlanUseCase exposes the immutable plan catalog.
type PlanUseCase interface {
	List() []model.Plan
	Find(id model.PlanID) (model.Plan, error)
}

type planUC struct {
	catalog *model.Catalog
}

func NewPlanUseCase(catalog *model.Catalog) *planUC {
	return &planUC{catalog: catalog}
}

func (u *planUC) List() []model.Plan { return u.catalog.List() }

func (u *planUC) Find(id model.PlanID) (model.Plan, error) { return u.catalog.FindByID(id) }
