package goalHandler

import (
	"ProjectWafeer/internal/api/goal"
	"ProjectWafeer/internal/entity"
	contextPkg "ProjectWafeer/pkg/context"
	"ProjectWafeer/pkg/handlerUtil"
	"ProjectWafeer/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func goalResponse(g entity.Goal) goal.GoalResponse {
	return goal.GoalResponse{
		ID:        g.ID,
		Name:      g.Name,
		Current:   g.Current,
		Target:    g.Target,
		Progress:  goal.ProgressPercent(g),
		Color:     g.Color,
		Deadline:  g.Deadline,
		Recurring: g.Recurring,
	}
}

func goalListResponse(goals []entity.Goal) goal.GoalListResponse {
	responses := make([]goal.GoalResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, goalResponse(g))
	}
	return goal.GoalListResponse{Goals: responses}
}

func (h *GoalHandler) GetGoals(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get goals request")

	goals, err := h.goalService.GetGoals(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_goals")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, goalListResponse(goals))
	}
}

func (h *GoalHandler) CreateGoal(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create goal request")

	var req goal.CreateGoalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	created, err := h.goalService.CreateGoal(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_goal")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, goalResponse(created))
	}
}

func (h *GoalHandler) UpdateGoalTarget(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update goal target request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("goal ID is required"), ctx.Path())
	}

	var req goal.UpdateTargetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	updated, err := h.goalService.UpdateGoalTarget(c, id, req.Target)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_goal_target")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, goalResponse(updated))
	}
}

func (h *GoalHandler) DeleteGoal(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete goal request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("goal ID is required"), ctx.Path())
	}

	if err := h.goalService.DeleteGoal(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_goal")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Goal deleted successfully",
		})
	}
}

func (h *GoalHandler) GetGoalsDue(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get goals due request")

	day := ctx.Query("date")
	if day == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("date query parameter is required"), ctx.Path())
	}

	due, err := h.goalService.GetGoalsDueOn(c, day)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_goals_due")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, goalListResponse(due))
	}
}
