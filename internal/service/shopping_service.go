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

// ShoppingService implements the hz.v1.ShoppingService RPC interface.
type ShoppingService struct {
	store storage.Store
}

// NewShoppingService creates a new ShoppingService with the given storage backend.
func NewShoppingService(store storage.Store) *ShoppingService {
	return &ShoppingService{store: store}
}

// Mount registers the service's procedures on the mux.
func (s *ShoppingService) Mount(mux *http.ServeMux, opts ...connect.HandlerOption) {
	mux.Handle(rpc.ShoppingAddProcedure,
		connect.NewUnaryHandler(rpc.ShoppingAddProcedure, s.AddItem, opts...))
	mux.Handle(rpc.ShoppingListProcedure,
		connect.NewUnaryHandler(rpc.ShoppingListProcedure, s.ListItems, opts...))
	mux.Handle(rpc.ShoppingSetStatusProcedure,
		connect.NewUnaryHandler(rpc.ShoppingSetStatusProcedure, s.SetItemStatus, opts...))
	mux.Handle(rpc.ShoppingDeleteProcedure,
		connect.NewUnaryHandler(rpc.ShoppingDeleteProcedure, s.DeleteItem, opts...))
}

// AddItem adds an entry to the authenticated user's shopping list.
func (s *ShoppingService) AddItem(ctx context.Context, req *connect.Request[rpc.AddItemRequest]) (*connect.Response[rpc.AddItemResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}
	if req.Msg.Price < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("price must not be negative"))
	}

	item := &models.ShoppingItem{
		UserID: userID,
		Name:   req.Msg.Name,
		Status: models.StatusPending,
		Price:  req.Msg.Price,
	}
	if err := s.store.CreateShoppingItem(ctx, item); err != nil {
		slog.Error("AddItem failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&rpc.AddItemResponse{Item: toRPCItem(item)}), nil
}

// ListItems returns the authenticated user's shopping list with the
// pending-items total.
func (s *ShoppingService) ListItems(ctx context.Context, req *connect.Request[rpc.ListItemsRequest]) (*connect.Response[rpc.ListItemsResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.store.ListShoppingItems(ctx, userID)
	if err != nil {
		slog.Error("ListItems failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]rpc.ShoppingItem, len(items))
	var pendingTotal float64
	for i := range items {
		out[i] = toRPCItem(&items[i])
		if items[i].Status == models.StatusPending {
			pendingTotal += items[i].Price
		}
	}

	return connect.NewResponse(&rpc.ListItemsResponse{
		Items:        out,
		PendingTotal: pendingTotal,
	}), nil
}

// SetItemStatus flips an item between pending and bought.
func (s *ShoppingService) SetItemStatus(ctx context.Context, req *connect.Request[rpc.SetItemStatusRequest]) (*connect.Response[rpc.SetItemStatusResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ItemID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("item_id required"))
	}
	status := models.ItemStatus(req.Msg.Status)
	if status != models.StatusPending && status != models.StatusBought {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("status must be pending or bought"))
	}

	if err := s.store.SetShoppingItemStatus(ctx, userID, req.Msg.ItemID, status); err != nil {
		slog.Error("SetItemStatus failed", "user_id", userID, "item_id", req.Msg.ItemID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	return connect.NewResponse(&rpc.SetItemStatusResponse{}), nil
}

// DeleteItem removes one of the authenticated user's items.
func (s *ShoppingService) DeleteItem(ctx context.Context, req *connect.Request[rpc.DeleteItemRequest]) (*connect.Response[rpc.DeleteItemResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ItemID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("item_id required"))
	}

	if err := s.store.DeleteShoppingItem(ctx, userID, req.Msg.ItemID); err != nil {
		slog.Error("DeleteItem failed", "user_id", userID, "item_id", req.Msg.ItemID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	return connect.NewResponse(&rpc.DeleteItemResponse{}), nil
}

func toRPCItem(item *models.ShoppingItem) rpc.ShoppingItem {
	return rpc.ShoppingItem{
		ID:        item.ID,
		Name:      item.Name,
		Status:    string(item.Status),
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
	}
}
