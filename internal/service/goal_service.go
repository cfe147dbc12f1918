package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/hz-solucoes/financas/internal/models"
	"github.com/hz-solucoes/financas/internal/storage"
	"github.com/hz-solucoes/financas/pkg/rpc"
)

// GoalService implements the hz.v1.GoalService RPC interface.
type GoalService struct {
	store storage.Store
}

// NewGoalService creates a new GoalService with the given storage backend.
func NewGoalService(store storage.Store) *GoalService {
	return &GoalService{store: store}
}

// Mount registers the service's procedures on the mux.
func (s *GoalService) Mount(mux *http.ServeMux, opts ...connect.HandlerOption) {
	mux.Handle(rpc.GoalCreateProcedure,
		connect.NewUnaryHandler(rpc.GoalCreateProcedure, s.CreateGoal, opts...))
	mux.Handle(rpc.GoalListProcedure,
		connect.NewUnaryHandler(rpc.GoalListProcedure, s.ListGoals, opts...))
	mux.Handle(rpc.GoalContributeProcedure,
		connect.NewUnaryHandler(rpc.GoalContributeProcedure, s.AddContribution, opts...))
	mux.Handle(rpc.GoalDeleteProcedure,
		connect.NewUnaryHandler(rpc.GoalDeleteProcedure, s.DeleteGoal, opts...))
}

// CreateGoal creates a savings goal for the authenticated user.
func (s *GoalService) CreateGoal(ctx context.Context, req *connect.Request[rpc.CreateGoalRequest]) (*connect.Response[rpc.CreateGoalResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}
	if req.Msg.Target <= 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("target must be positive"))
	}

	goal := &models.SavingsGoal{
		UserID:   userID,
		Name:     req.Msg.Name,
		Target:   req.Msg.Target,
		Deadline: req.Msg.Deadline,
	}
	if err := s.store.CreateGoal(ctx, goal); err != nil {
		slog.Error("CreateGoal failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&rpc.CreateGoalResponse{Goal: toRPCGoal(goal)}), nil
}

// ListGoals returns the authenticated user's savings goals.
func (s *GoalService) ListGoals(ctx context.Context, req *connect.Request[rpc.ListGoalsRequest]) (*connect.Response[rpc.ListGoalsResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}

	goals, err := s.store.ListGoals(ctx, userID)
	if err != nil {
		slog.Error("ListGoals failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]rpc.SavingsGoal, len(goals))
	for i := range goals {
		out[i] = toRPCGoal(&goals[i])
	}

	return connect.NewResponse(&rpc.ListGoalsResponse{Goals: out}), nil
}

// AddContribution increases a goal's saved amount.
func (s *GoalService) AddContribution(ctx context.Context, req *connect.Request[rpc.AddContributionRequest]) (*connect.Response[rpc.AddContributionResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.GoalID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("goal_id required"))
	}
	if req.Msg.Amount <= 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount must be positive"))
	}

	goal, err := s.store.AddContribution(ctx, userID, req.Msg.GoalID, req.Msg.Amount)
	if err != nil {
		slog.Error("AddContribution failed", "user_id", userID, "goal_id", req.Msg.GoalID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	return connect.NewResponse(&rpc.AddContributionResponse{Goal: toRPCGoal(goal)}), nil
}

// DeleteGoal removes one of the authenticated user's goals.
func (s *GoalService) DeleteGoal(ctx context.Context, req *connect.Request[rpc.DeleteGoalRequest]) (*connect.Response[rpc.DeleteGoalResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.GoalID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("goal_id required"))
	}

	if err := s.store.DeleteGoal(ctx, userID, req.Msg.GoalID); err != nil {
		slog.Error("DeleteGoal failed", "user_id", userID, "goal_id", req.Msg.GoalID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	return connect.NewResponse(&rpc.DeleteGoalResponse{}), nil
}

func toRPCGoal(goal *models.SavingsGoal) rpc.SavingsGoal {
	return rpc.SavingsGoal{
		ID:        goal.ID,
		Name:      goal.Name,
		Target:    goal.Target,
		Saved:     goal.Saved,
		Progress:  goal.Progress(),
		Deadline:  goal.Deadline,
		CreatedAt: goal.CreatedAt,
	}
}
