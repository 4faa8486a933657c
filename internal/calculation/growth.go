package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/pkg/money"
	"github.com/shopspring/decimal"
)

// MaxHorizonYears bounds fixed-horizon yearly simulations.
const MaxHorizonYears = 100

// growthState accumulates a running savings balance.
type growthState struct {
	balance       decimal.Decimal
	contributions decimal.Decimal
	interest      decimal.Decimal
	periodContrib decimal.Decimal
	periodInt     decimal.Decimal
	steps         int
}

func newGrowthState(start decimal.Decimal) *growthState {
	return &growthState{balance: start}
}

// step credits one compounding period: balance*(1+rate) + contribution.
func (s *growthState) step(rate, contribution decimal.Decimal) {
	interest := money.Step(s.balance.Mul(rate))
	s.balance = money.Step(s.balance.Add(interest).Add(contribution))
	s.contributions = s.contributions.Add(contribution)
	s.interest = s.interest.Add(interest)
	s.periodContrib = s.periodContrib.Add(contribution)
	s.periodInt = s.periodInt.Add(interest)
	s.steps++
}

// point snapshots the state and resets the per-period sums.
func (s *growthState) point(period, year, month int, yearEnd bool) domain.GrowthPoint {
	p := domain.GrowthPoint{
		Period:             period,
		Year:               year,
		Month:              month,
		Balance:            s.balance,
		Contributions:      s.contributions,
		Interest:           s.interest,
		PeriodContribution: s.periodContrib,
		PeriodInterest:     s.periodInt,
		YearEnd:            yearEnd,
	}
	s.periodContrib = decimal.Zero
	s.periodInt = decimal.Zero
	return p
}

// reached reports whether a positive goal has been met.
func (s *growthState) reached(goal decimal.Decimal) bool {
	return goal.IsPositive() && s.balance.GreaterThanOrEqual(goal)
}

// growthSimulation is the outcome of one forward run.
type growthSimulation struct {
	Points  []domain.GrowthPoint
	Final   *growthState
	Goal    domain.GoalOutcome
	Months  int
	Periods int // compounding periods simulated
	Capped  bool
}

// PeriodContribution converts a monthly-equivalent contribution to one
// compounding period's contribution.
func PeriodContribution(monthly decimal.Decimal, c domain.Compounding) decimal.Decimal {
	return money.Step(monthly.Mul(twelve).Div(decimal.NewFromInt(int64(c.PeriodsPerYear()))))
}

// PeriodRate converts an annual rate to one compounding period's rate.
func PeriodRate(annual decimal.Decimal, c domain.Compounding) decimal.Decimal {
	return annual.Div(decimal.NewFromInt(int64(c.PeriodsPerYear())))
}

// simulateYears runs a fixed horizon of whole years, compounding at c and
// reporting one point per year after the year 0 starting point.
func simulateYears(start, monthly, annual decimal.Decimal, c domain.Compounding, years int, goal decimal.Decimal) growthSimulation {
	capped := years > MaxHorizonYears
	if capped {
		years = MaxHorizonYears
	}
	if years < 0 {
		years = 0
	}
	ppy := c.PeriodsPerYear()
	rate := PeriodRate(annual, c)
	contribution := PeriodContribution(monthly, c)

	s := newGrowthState(start)
	sim := growthSimulation{Final: s, Months: years * 12, Capped: capped}
	sim.Points = append(sim.Points, s.point(0, 0, 0, true))
	if s.reached(goal) {
		sim.Goal = domain.GoalOutcome{Reached: true}
	}
	for year := 1; year <= years; year++ {
		for sub := 0; sub < ppy; sub++ {
			s.step(rate, contribution)
			if !sim.Goal.Reached && s.reached(goal) {
				sim.Goal = domain.GoalOutcome{Reached: true, Months: monthsForPeriods(s.steps, ppy)}
			}
		}
		sim.Points = append(sim.Points, s.point(year, year, year*12, true))
	}
	sim.Periods = s.steps
	return sim
}

// simulateMonths runs a fixed horizon of months with monthly compounding,
// one point per month.
func simulateMonths(start, monthly, annual decimal.Decimal, months int, goal decimal.Decimal) growthSimulation {
	capped := months > MaxSimulationMonths
	if capped {
		months = MaxSimulationMonths
	}
	if months < 0 {
		months = 0
	}
	sim := runMonthly(start, monthly, annual, goal, months, false)
	sim.Capped = capped
	return sim
}

// simulateUntilGoal steps monthly until the goal is met or the month cap is
// hit. A non-positive goal is met before the first month.
func simulateUntilGoal(start, monthly, annual, goal decimal.Decimal) growthSimulation {
	if !goal.IsPositive() {
		sim := runMonthly(start, monthly, annual, goal, 0, true)
		sim.Goal = domain.GoalOutcome{Reached: true}
		return sim
	}
	return runMonthly(start, monthly, annual, goal, MaxSimulationMonths, true)
}

func runMonthly(start, monthly, annual, goal decimal.Decimal, months int, stopAtGoal bool) growthSimulation {
	rate := annual.Div(twelve)
	contribution := money.Step(monthly)

	s := newGrowthState(start)
	sim := growthSimulation{Final: s}
	sim.Points = append(sim.Points, s.point(0, 0, 0, true))
	if s.reached(goal) {
		sim.Goal = domain.GoalOutcome{Reached: true}
		if stopAtGoal {
			return sim
		}
	}
	for month := 1; month <= months; month++ {
		s.step(rate, contribution)
		done := false
		if !sim.Goal.Reached && s.reached(goal) {
			sim.Goal = domain.GoalOutcome{Reached: true, Months: month}
			done = stopAtGoal
		}
		yearEnd := month%12 == 0 || month == months || done
		sim.Points = append(sim.Points, s.point(month, (month-1)/12+1, month, yearEnd))
		sim.Months = month
		if done {
			break
		}
	}
	sim.Periods = s.steps
	return sim
}

// monthsForPeriods converts a count of compounding periods to whole months,
// rounding up.
func monthsForPeriods(periods, ppy int) int {
	return (periods*12 + ppy - 1) / ppy
}

// yearEndPoints keeps the year checkpoints of a monthly series and renumbers
// them by year.
func yearEndPoints(points []domain.GrowthPoint) []domain.GrowthPoint {
	out := make([]domain.GrowthPoint, 0, len(points)/12+2)
	var pendingContrib, pendingInt decimal.Decimal
	for _, p := range points {
		pendingContrib = pendingContrib.Add(p.PeriodContribution)
		pendingInt = pendingInt.Add(p.PeriodInterest)
		if !p.YearEnd {
			continue
		}
		p.PeriodContribution = pendingContrib
		p.PeriodInterest = pendingInt
		p.Period = len(out)
		out = append(out, p)
		pendingContrib = decimal.Zero
		pendingInt = decimal.Zero
	}
	return out
}

// RequiredPeriodicContribution solves the end-of-period contribution that
// grows start to goal over n periods at rate i:
//
//	c = (goal - start*(1+i)^n) * i / ((1+i)^n - 1)
//
// With i = 0 it is (goal - start) / n. The result is floored at 0.
func RequiredPeriodicContribution(start, goal, i decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	var c decimal.Decimal
	if i.IsZero() {
		c = goal.Sub(start).Div(decimal.NewFromInt(int64(n)))
	} else {
		growth, saturated := money.PowIntBounded(decimal.NewFromInt(1).Add(i), n, money.GrowthLimit)
		if saturated {
			c = start.Neg().Mul(i)
		} else {
			c = goal.Sub(start.Mul(growth)).Mul(i).Div(growth.Sub(decimal.NewFromInt(1)))
		}
	}
	return money.Step(decimal.Max(decimal.Zero, c))
}

// monthlyFromPeriod converts a per-period contribution to its monthly
// equivalent.
func monthlyFromPeriod(periodic decimal.Decimal, ppy int) decimal.Decimal {
	return money.Step(periodic.Mul(decimal.NewFromInt(int64(ppy))).Div(twelve))
}

// toUserFrequency converts a monthly-equivalent contribution back to the
// user's contribution frequency.
func toUserFrequency(monthly decimal.Decimal, f domain.ContributionFrequency) decimal.Decimal {
	m := f.MonthlyMultiplier()
	if m.IsZero() {
		return monthly
	}
	return money.Step(monthly.Div(m))
}

// MonthlyContribution normalizes a contribution to its monthly equivalent.
func MonthlyContribution(amount decimal.Decimal, f domain.ContributionFrequency) decimal.Decimal {
	return money.Step(amount.Mul(f.MonthlyMultiplier()))
}

// finish fills the totals shared by every growth result.
func finish(res *domain.GrowthResult, sim growthSimulation) {
	res.Points = sim.Points
	res.GoalOutcome = sim.Goal
	res.HorizonCapped = sim.Capped
	res.FinalBalance = sim.Final.balance
	res.TotalContributions = sim.Final.contributions
	res.TotalInterest = sim.Final.interest
	res.Achievable = res.FinalBalance.GreaterThanOrEqual(res.Goal)
	res.Shortfall = decimal.Max(decimal.Zero, res.Goal.Sub(res.FinalBalance))
}
