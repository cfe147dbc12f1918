package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"

	"github.com/hz-solucoes/financas/internal/bot"
	"github.com/hz-solucoes/financas/internal/models"
	"github.com/hz-solucoes/financas/internal/reports"
	"github.com/hz-solucoes/financas/internal/storage"
	"github.com/hz-solucoes/financas/pkg/rpc"
)

// CareService implements the hz.v1.CareService RPC interface: daily-care
// routines and water-intake tracking. It shares the water defaults with
// the chat interpreter so both surfaces report against the same goal.
type CareService struct {
	store storage.Store
	cfg   bot.Config
}

// NewCareService creates a new CareService with the given storage backend.
func NewCareService(store storage.Store, cfg bot.Config) *CareService {
	return &CareService{store: store, cfg: cfg}
}

// Mount registers the service's procedures on the mux.
func (s *CareService) Mount(mux *http.ServeMux, opts ...connect.HandlerOption) {
	mux.Handle(rpc.CareCreateTaskProcedure,
		connect.NewUnaryHandler(rpc.CareCreateTaskProcedure, s.CreateTask, opts...))
	mux.Handle(rpc.CareListTasksProcedure,
		connect.NewUnaryHandler(rpc.CareListTasksProcedure, s.ListTasks, opts...))
	mux.Handle(rpc.CareLogTaskProcedure,
		connect.NewUnaryHandler(rpc.CareLogTaskProcedure, s.LogTask, opts...))
	mux.Handle(rpc.CareDailyProgressProcedure,
		connect.NewUnaryHandler(rpc.CareDailyProgressProcedure, s.GetDailyProgress, opts...))
	mux.Handle(rpc.CareLogWaterProcedure,
		connect.NewUnaryHandler(rpc.CareLogWaterProcedure, s.LogWater, opts...))
	mux.Handle(rpc.CareWaterTodayProcedure,
		connect.NewUnaryHandler(rpc.CareWaterTodayProcedure, s.GetWaterToday, opts...))
}

// CreateTask creates a daily-care routine for the authenticated user.
func (s *CareService) CreateTask(ctx context.Context, req *connect.Request[rpc.CreateTaskRequest]) (*connect.Response[rpc.CreateTaskResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}

	task := &models.CareTask{UserID: userID, Name: req.Msg.Name}
	if err := s.store.CreateCareTask(ctx, task); err != nil {
		slog.Error("CreateTask failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&rpc.CreateTaskResponse{Task: toRPCTask(task)}), nil
}

// ListTasks returns the authenticated user's routines.
func (s *CareService) ListTasks(ctx context.Context, req *connect.Request[rpc.ListTasksRequest]) (*connect.Response[rpc.ListTasksResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.ListCareTasks(ctx, userID)
	if err != nil {
		slog.Error("ListTasks failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]rpc.CareTask, len(tasks))
	for i := range tasks {
		out[i] = toRPCTask(&tasks[i])
	}

	return connect.NewResponse(&rpc.ListTasksResponse{Tasks: out}), nil
}

// LogTask records completion of a routine for today.
func (s *CareService) LogTask(ctx context.Context, req *connect.Request[rpc.LogTaskRequest]) (*connect.Response[rpc.LogTaskResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.TaskID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("task_id required"))
	}

	log := &models.CareLog{
		UserID: userID,
		TaskID: req.Msg.TaskID,
		Day:    reports.Day(time.Now()),
		Done:   req.Msg.Done,
	}
	if err := s.store.UpsertCareLog(ctx, log); err != nil {
		slog.Error("LogTask failed", "user_id", userID, "task_id", req.Msg.TaskID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&rpc.LogTaskResponse{}), nil
}

// GetDailyProgress returns each routine with its completion state for a
// day (today by default).
func (s *CareService) GetDailyProgress(ctx context.Context, req *connect.Request[rpc.GetDailyProgressRequest]) (*connect.Response[rpc.GetDailyProgressResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}

	day := req.Msg.Day
	if day == "" {
		day = reports.Day(time.Now())
	}

	tasks, err := s.store.ListCareTasks(ctx, userID)
	if err != nil {
		slog.Error("GetDailyProgress failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	logs, err := s.store.ListCareLogs(ctx, userID, day)
	if err != nil {
		slog.Error("GetDailyProgress failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	done := make(map[string]bool, len(logs))
	for _, log := range logs {
		done[log.TaskID] = log.Done
	}

	out := make([]rpc.CareTaskStatus, len(tasks))
	for i := range tasks {
		out[i] = rpc.CareTaskStatus{
			Task: toRPCTask(&tasks[i]),
			Done: done[tasks[i].ID],
		}
	}

	return connect.NewResponse(&rpc.GetDailyProgressResponse{Day: day, Tasks: out}), nil
}

// LogWater records a water intake for the authenticated user.
func (s *CareService) LogWater(ctx context.Context, req *connect.Request[rpc.LogWaterRequest]) (*connect.Response[rpc.LogWaterResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Amount < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount must not be negative"))
	}

	amount := req.Msg.Amount
	if amount == 0 {
		amount = s.cfg.DefaultWaterAmount
	}

	if err := s.store.CreateWaterIntake(ctx, &models.WaterIntake{UserID: userID, Amount: amount}); err != nil {
		slog.Error("LogWater failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	total, err := s.waterToday(ctx, userID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&rpc.LogWaterResponse{
		Logged:     amount,
		TodayTotal: total,
		DailyGoal:  s.cfg.DailyWaterGoal,
	}), nil
}

// GetWaterToday returns today's total against the configured goal.
func (s *CareService) GetWaterToday(ctx context.Context, req *connect.Request[rpc.GetWaterTodayRequest]) (*connect.Response[rpc.GetWaterTodayResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}

	total, err := s.waterToday(ctx, userID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&rpc.GetWaterTodayResponse{
		TodayTotal: total,
		DailyGoal:  s.cfg.DailyWaterGoal,
	}), nil
}

func (s *CareService) waterToday(ctx context.Context, userID string) (float64, error) {
	from, to := reports.DayWindow(time.Now())
	total, err := s.store.SumWaterIntake(ctx, userID, from, to)
	if err != nil {
		slog.Error("water sum failed", "user_id", userID, "error", err)
		return 0, connect.NewError(connect.CodeInternal, err)
	}
	return total, nil
}

func toRPCTask(task *models.CareTask) rpc.CareTask {
	return rpc.CareTask{
		ID:        task.ID,
		Name:      task.Name,
		CreatedAt: task.CreatedAt,
	}
}
