// Package models defines the core domain models for the HZ Soluções
// finance tracker.
//
// # Models
//
//   - User: an account holder, reachable via the web UI (email/password)
//     or via WhatsApp (phone identifier). Chat users are created lazily
//     on their first inbound message.
//   - Transaction: a single income or expense entry. Expenses carry a
//     category label assigned by the auto-categorizer; incomes never do.
//   - SavingsGoal: a named savings target with accumulated contributions.
//   - ShoppingItem: a shopping-list entry with an optional price.
//   - CareTask / CareLog: daily-care routines and their per-day completion.
//   - WaterIntake: a single logged water intake, summed per day.
//   - Account: a bank account with a tracked balance.
//
// # Design Principles
//
//  1. Records reference each other by ID strings, never by pointers.
//  2. Every record is owned by exactly one user; ownership is assigned by
//     the service or interpreter from the authenticated/resolved user,
//     never taken from request payloads.
//  3. Timestamps are Unix seconds (int64) for straightforward SQLite
//     storage and JSON transport.
package models
