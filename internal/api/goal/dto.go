package goal

import "ProjectWafeer/internal/entity"

type CreateGoalRequest struct {
	Name      string     `json:"name" validate:"required"`
	Target    float64    `json:"target" validate:"required,gt=0"`
	Current   float64    `json:"current" validate:"gte=0"`
	Color     string     `json:"color"`
	Deadline  string     `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Recurring *Recurring `json:"recurring,omitempty"`
}

type Recurring struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Frequency string  `json:"frequency" validate:"required,oneof=Weekly Monthly"`
}

type UpdateTargetRequest struct {
	Target float64 `json:"target" validate:"required,gt=0"`
}

type GoalResponse struct {
	ID        string                        `json:"id"`
	Name      string                        `json:"name"`
	Current   float64                       `json:"current"`
	Target    float64                       `json:"target"`
	Progress  int                           `json:"progress"`
	Color     string                        `json:"color"`
	Deadline  string                        `json:"deadline,omitempty"`
	Recurring *entity.RecurringContribution `json:"recurring,omitempty"`
}

type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}
