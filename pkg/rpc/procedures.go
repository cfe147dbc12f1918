package rpc

// Procedure paths follow the Connect convention /package.Service/Method.
const (
	AuthRegisterProcedure = "/hz.v1.AuthService/Register"
	AuthLoginProcedure    = "/hz.v1.AuthService/Login"

	TransactionCreateProcedure  = "/hz.v1.TransactionService/CreateTransaction"
	TransactionListProcedure    = "/hz.v1.TransactionService/ListTransactions"
	TransactionSummaryProcedure = "/hz.v1.TransactionService/GetMonthlySummary"
	TransactionDeleteProcedure  = "/hz.v1.TransactionService/DeleteTransaction"

	GoalCreateProcedure     = "/hz.v1.GoalService/CreateGoal"
	GoalListProcedure       = "/hz.v1.GoalService/ListGoals"
	GoalContributeProcedure = "/hz.v1.GoalService/AddContribution"
	GoalDeleteProcedure     = "/hz.v1.GoalService/DeleteGoal"

	ShoppingAddProcedure       = "/hz.v1.ShoppingService/AddItem"
	ShoppingListProcedure      = "/hz.v1.ShoppingService/ListItems"
	ShoppingSetStatusProcedure = "/hz.v1.ShoppingService/SetItemStatus"
	ShoppingDeleteProcedure    = "/hz.v1.ShoppingService/DeleteItem"

	CareCreateTaskProcedure    = "/hz.v1.CareService/CreateTask"
	CareListTasksProcedure     = "/hz.v1.CareService/ListTasks"
	CareLogTaskProcedure       = "/hz.v1.CareService/LogTask"
	CareDailyProgressProcedure = "/hz.v1.CareService/GetDailyProgress"
	CareLogWaterProcedure      = "/hz.v1.CareService/LogWater"
	CareWaterTodayProcedure    = "/hz.v1.CareService/GetWaterToday"

	AccountCreateProcedure        = "/hz.v1.AccountService/CreateAccount"
	AccountListProcedure          = "/hz.v1.AccountService/ListAccounts"
	AccountUpdateBalanceProcedure = "/hz.v1.AccountService/UpdateBalance"
)
