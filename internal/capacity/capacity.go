// Package capacity models daily order-processing throughput: a base rate,
// purchasable warehouse expansions, an hourly employee, and the single-day
// overflow carry. Orders that overflow twice are gone for good.
package capacity

import (
	"fmt"

	"github.com/talgya/storedesk/internal/store"
)

// ProcessResult reports one day of order processing.
type ProcessResult struct {
	Processed      int // orders fulfilled today (yesterday's overflow + today's)
	Overflow       int // today's orders carried to tomorrow
	LostToCapacity int // yesterday's overflow that did not fit, permanently dropped
}

// StaffingResult reports whether the employee worked and what it cost.
type StaffingResult struct {
	Worked bool
	Salary float64
}

// Queue tracks effective capacity and the one-day overflow carry.
type Queue struct {
	state *store.State

	base           int
	perExpansion   int
	expansionCosts []float64
	expansions     int

	employeeSalary   float64
	employeeCapacity int
	employeeHired    bool
	employeeWorked   bool

	overflowYesterday int
	overflowToday     int
}

// NewQueue creates a capacity queue with no expansions and no employee.
func NewQueue(state *store.State, base, perExpansion int, expansionCosts []float64, employeeSalary float64, employeeCapacity int) *Queue {
	return &Queue{
		state:            state,
		base:             base,
		perExpansion:     perExpansion,
		expansionCosts:   expansionCosts,
		employeeSalary:   employeeSalary,
		employeeCapacity: employeeCapacity,
	}
}

// Capacity returns today's effective throughput: base plus expansions plus
// the employee bonus when the employee actually worked.
func (q *Queue) Capacity() int {
	capacity := q.base + q.expansions*q.perExpansion
	if q.employeeHired && q.employeeWorked {
		capacity += q.employeeCapacity
	}
	return capacity
}

// Expansions returns the number of purchased expansions.
func (q *Queue) Expansions() int {
	return q.expansions
}

// NextExpansionCost returns the price of the next expansion, or false when
// maxed out.
func (q *Queue) NextExpansionCost() (float64, bool) {
	if q.expansions >= len(q.expansionCosts) {
		return 0, false
	}
	return q.expansionCosts[q.expansions], true
}

// PurchaseExpansion buys the next warehouse expansion.
func (q *Queue) PurchaseExpansion() store.ActionResult {
	cost, ok := q.NextExpansionCost()
	if !ok {
		return store.ActionResult{Message: "maximum capacity reached"}
	}
	if q.state.Cash() < cost {
		return store.ActionResult{Message: fmt.Sprintf("insufficient cash ($%.0f)", cost)}
	}

	q.state.AddCash(-cost)
	q.expansions++
	return store.ActionResult{
		OK:      true,
		Message: fmt.Sprintf("warehouse expansion %d/%d purchased, capacity now %d orders/day", q.expansions, len(q.expansionCosts), q.Capacity()),
	}
}

// EmployeeHired reports whether an employee is on payroll.
func (q *Queue) EmployeeHired() bool {
	return q.employeeHired
}

// EmployeeWorked reports whether the employee worked the current day.
func (q *Queue) EmployeeWorked() bool {
	return q.employeeWorked
}

// EmployeeSalary returns the daily salary.
func (q *Queue) EmployeeSalary() float64 {
	return q.employeeSalary
}

// HireEmployee puts the operator on payroll.
func (q *Queue) HireEmployee() store.ActionResult {
	if q.employeeHired {
		return store.ActionResult{Message: "operator already hired"}
	}
	q.employeeHired = true
	return store.ActionResult{
		OK:      true,
		Message: fmt.Sprintf("operator hired: +%d capacity/day at $%.0f/day", q.employeeCapacity, q.employeeSalary),
	}
}

// FireEmployee takes the operator off payroll.
func (q *Queue) FireEmployee() store.ActionResult {
	if !q.employeeHired {
		return store.ActionResult{Message: "no operator hired"}
	}
	q.employeeHired = false
	q.employeeWorked = false
	return store.ActionResult{OK: true, Message: "operator dismissed, capacity reduced"}
}

// ResolveStaffing decides whether the employee works today. The salary is
// paid up front; an unpayable salary means a day off and no capacity bonus.
func (q *Queue) ResolveStaffing() StaffingResult {
	if !q.employeeHired {
		q.employeeWorked = false
		return StaffingResult{}
	}
	if q.state.Cash() < q.employeeSalary {
		q.employeeWorked = false
		return StaffingResult{}
	}
	q.state.AddCash(-q.employeeSalary)
	q.employeeWorked = true
	return StaffingResult{Worked: true, Salary: q.employeeSalary}
}

// ProcessOrders runs one day of fulfillment: yesterday's overflow first, then
// today's orders from whatever capacity remains. Yesterday's leftovers are
// dropped; today's leftovers carry exactly one day.
func (q *Queue) ProcessOrders(todayOrders int) ProcessResult {
	if todayOrders < 0 {
		panic("capacity: negative order count")
	}

	remaining := q.Capacity()
	processed := 0
	lost := 0

	if q.overflowYesterday > 0 {
		fromYesterday := min(q.overflowYesterday, remaining)
		processed += fromYesterday
		remaining -= fromYesterday
		lost = q.overflowYesterday - fromYesterday
		q.overflowYesterday = 0
	}

	fromToday := min(todayOrders, remaining)
	processed += fromToday
	q.overflowToday = todayOrders - fromToday

	return ProcessResult{
		Processed:      processed,
		Overflow:       q.overflowToday,
		LostToCapacity: lost,
	}
}

// AdvanceDay shifts today's overflow into the "yesterday" pool. Runs at the
// start of each resolution, before any orders are processed.
func (q *Queue) AdvanceDay() {
	q.overflowYesterday = q.overflowToday
	q.overflowToday = 0
}

// OverflowYesterday returns the carried pool awaiting processing.
func (q *Queue) OverflowYesterday() int {
	return q.overflowYesterday
}

// OverflowToday returns the overflow created by the latest processing run.
func (q *Queue) OverflowToday() int {
	return q.overflowToday
}
