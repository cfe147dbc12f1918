package rpc

// User is the wire representation of an account holder. The password
// hash never leaves the server.
type User struct {
	ID        string `json:"id"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// Transaction is the wire representation of a money movement.
type Transaction struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Fixed       bool    `json:"fixed,omitempty"`
	OccurredAt  int64   `json:"occurred_at"`
	CreatedAt   int64   `json:"created_at"`
}

// SavingsGoal is the wire representation of a savings target.
type SavingsGoal struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Target    float64 `json:"target"`
	Saved     float64 `json:"saved"`
	// Progress is Saved/Target clamped to [0, 1].
	Progress float64 `json:"progress"`
	Deadline int64   `json:"deadline,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

// ShoppingItem is the wire representation of a shopping-list entry.
type ShoppingItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	Price     float64 `json:"price,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

// CareTask is the wire representation of a daily-care routine.
type CareTask struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// CareTaskStatus pairs a task with its completion state for one day.
type CareTaskStatus struct {
	Task CareTask `json:"task"`
	Done bool     `json:"done"`
}

// Account is the wire representation of a bank account.
type Account struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Balance   float64 `json:"balance"`
	CreatedAt int64   `json:"created_at"`
}

// Auth

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Transactions

type CreateTransactionRequest struct {
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Fixed       bool    `json:"fixed,omitempty"`
	OccurredAt  int64   `json:"occurred_at,omitempty"`
}

type CreateTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

type ListTransactionsRequest struct {
	Kind  string `json:"kind,omitempty"`
	From  int64  `json:"from,omitempty"`
	To    int64  `json:"to,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type GetMonthlySummaryRequest struct {
	// Year and Month select the summary window; zero values mean the
	// current month.
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
}

type GetMonthlySummaryResponse struct {
	Income       float64            `json:"income"`
	Expense      float64            `json:"expense"`
	Balance      float64            `json:"balance"`
	FixedExpense float64            `json:"fixed_expense"`
	ByCategory   map[string]float64 `json:"by_category"`
}

type DeleteTransactionRequest struct {
	TransactionID string `json:"transaction_id"`
}

type DeleteTransactionResponse struct{}

// Goals

type CreateGoalRequest struct {
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Deadline int64   `json:"deadline,omitempty"`
}

type CreateGoalResponse struct {
	Goal SavingsGoal `json:"goal"`
}

type ListGoalsRequest struct{}

type ListGoalsResponse struct {
	Goals []SavingsGoal `json:"goals"`
}

type AddContributionRequest struct {
	GoalID string  `json:"goal_id"`
	Amount float64 `json:"amount"`
}

type AddContributionResponse struct {
	Goal SavingsGoal `json:"goal"`
}

type DeleteGoalRequest struct {
	GoalID string `json:"goal_id"`
}

type DeleteGoalResponse struct{}

// Shopping list

type AddItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price,omitempty"`
}

type AddItemResponse struct {
	Item ShoppingItem `json:"item"`
}

type ListItemsRequest struct{}

type ListItemsResponse struct {
	Items []ShoppingItem `json:"items"`
	// PendingTotal sums the prices of items not yet bought.
	PendingTotal float64 `json:"pending_total"`
}

type SetItemStatusRequest struct {
	ItemID string `json:"item_id"`
	Status string `json:"status"`
}

type SetItemStatusResponse struct{}

type DeleteItemRequest struct {
	ItemID string `json:"item_id"`
}

type DeleteItemResponse struct{}

// Daily care and water

type CreateTaskRequest struct {
	Name string `json:"name"`
}

type CreateTaskResponse struct {
	Task CareTask `json:"task"`
}

type ListTasksRequest struct{}

type ListTasksResponse struct {
	Tasks []CareTask `json:"tasks"`
}

type LogTaskRequest struct {
	TaskID string `json:"task_id"`
	Done   bool   `json:"done"`
}

type LogTaskResponse struct{}

type GetDailyProgressRequest struct {
	// Day in "2006-01-02" format; empty means today.
	Day string `json:"day,omitempty"`
}

type GetDailyProgressResponse struct {
	Day   string           `json:"day"`
	Tasks []CareTaskStatus `json:"tasks"`
}

type LogWaterRequest struct {
	// Amount in milliliters; zero logs the configured default.
	Amount float64 `json:"amount,omitempty"`
}

type LogWaterResponse struct {
	Logged     float64 `json:"logged"`
	TodayTotal float64 `json:"today_total"`
	DailyGoal  float64 `json:"daily_goal"`
}

type GetWaterTodayRequest struct{}

type GetWaterTodayResponse struct {
	TodayTotal float64 `json:"today_total"`
	DailyGoal  float64 `json:"daily_goal"`
}

// Accounts

type CreateAccountRequest struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance,omitempty"`
}

type CreateAccountResponse struct {
	Account Account `json:"account"`
}

type ListAccountsRequest struct{}

type ListAccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

type UpdateBalanceRequest struct {
	AccountID string  `json:"account_id"`
	Balance   float64 `json:"balance"`
}

type UpdateBalanceResponse struct {
	Account Account `json:"account"`
}
