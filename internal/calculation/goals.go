package calculation

import (
	"time"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

var defaultMillionGoal = decimal.NewFromInt(1000000)

// MillionInputFromForm parses the million-dollar goal form.
func MillionInputFromForm(f domain.Form) domain.MillionInput {
	return domain.MillionInput{
		CurrentAge:            f.Int("current_age"),
		TargetAge:             f.Int("target_age"),
		CurrentSavings:        f.Decimal("current_savings"),
		Contribution:          f.Decimal("contribution"),
		ContributionFrequency: domain.ParseContributionFrequency(f.String("contribution_frequency", "monthly")),
		AnnualReturn:          f.Rate("annual_return"),
		Goal:                  f.DecimalOr("goal", defaultMillionGoal),
		Compounding:           domain.ParseCompounding(f.String("compounding", "monthly")),
	}
}

// SavingsGoalInputFromForm parses the savings goal form. A missing start date
// uses reference.
func SavingsGoalInputFromForm(f domain.Form, reference time.Time) domain.SavingsGoalInput {
	return domain.SavingsGoalInput{
		Goal:                  f.Decimal("goal"),
		CurrentSavings:        f.Decimal("current_savings"),
		Contribution:          f.Decimal("contribution"),
		ContributionFrequency: domain.ParseContributionFrequency(f.String("contribution_frequency", "monthly")),
		AnnualReturn:          f.Rate("annual_return"),
		TimelineMonths:        f.Int("timeline_months"),
		StartDate:             f.Date("start_date", reference),
	}
}

// GrowthInputFromForm parses the compound growth form.
func GrowthInputFromForm(f domain.Form) domain.GrowthInput {
	return domain.GrowthInput{
		Principal:             f.Decimal("principal"),
		Contribution:          f.Decimal("contribution"),
		ContributionFrequency: domain.ParseContributionFrequency(f.String("contribution_frequency", "monthly")),
		AnnualReturn:          f.Rate("annual_return"),
		Compounding:           domain.ParseCompounding(f.String("compounding", "monthly")),
		Years:                 f.Int("years"),
		Goal:                  f.Decimal("goal"),
	}
}

// MillionCalculator projects savings over an age window toward a goal.
type MillionCalculator struct{}

// Calculate projects in. An empty or inverted age window switches to the
// implicit horizon: months until the goal, capped.
func (MillionCalculator) Calculate(in domain.MillionInput) domain.GrowthResult {
	res := domain.GrowthResult{
		StartingBalance:       in.CurrentSavings,
		MonthlyContribution:   MonthlyContribution(in.Contribution, in.ContributionFrequency),
		ContributionFrequency: in.ContributionFrequency,
		Compounding:           in.Compounding,
		Goal:                  in.Goal,
	}

	years := in.TargetAge - in.CurrentAge
	var sim growthSimulation
	if years > 0 {
		res.FixedHorizon = true
		sim = simulateYears(res.StartingBalance, res.MonthlyContribution, in.AnnualReturn, in.Compounding, years, in.Goal)
		solveRequired(&res, PeriodRate(in.AnnualReturn, in.Compounding), sim.Periods, in.Compounding.PeriodsPerYear())
	} else {
		sim = simulateUntilGoal(res.StartingBalance, res.MonthlyContribution, in.AnnualReturn, in.Goal)
		sim.Points = yearEndPoints(sim.Points)
	}
	res.HorizonMonths = sim.Months
	finish(&res, sim)

	for i := range res.Points {
		res.Points[i].Age = in.CurrentAge + res.Points[i].Month/12
	}
	return res
}

// SavingsGoalCalculator projects monthly savings toward a target amount.
type SavingsGoalCalculator struct{}

// Calculate projects in over its timeline, or until the goal when no
// timeline is given.
func (SavingsGoalCalculator) Calculate(in domain.SavingsGoalInput) domain.GrowthResult {
	res := domain.GrowthResult{
		StartingBalance:       in.CurrentSavings,
		MonthlyContribution:   MonthlyContribution(in.Contribution, in.ContributionFrequency),
		ContributionFrequency: in.ContributionFrequency,
		Compounding:           domain.CompoundMonthly,
		Goal:                  in.Goal,
	}

	var sim growthSimulation
	if in.TimelineMonths > 0 {
		res.FixedHorizon = true
		sim = simulateMonths(res.StartingBalance, res.MonthlyContribution, in.AnnualReturn, in.TimelineMonths, in.Goal)
		solveRequired(&res, in.AnnualReturn.Div(twelve), sim.Periods, 12)
	} else {
		sim = simulateUntilGoal(res.StartingBalance, res.MonthlyContribution, in.AnnualReturn, in.Goal)
	}
	res.HorizonMonths = sim.Months
	finish(&res, sim)
	return res
}

// GrowthCalculator projects compound growth over a number of years.
type GrowthCalculator struct{}

// Calculate projects in. Without a horizon but with a goal it runs until
// the goal is met.
func (GrowthCalculator) Calculate(in domain.GrowthInput) domain.GrowthResult {
	res := domain.GrowthResult{
		StartingBalance:       in.Principal,
		MonthlyContribution:   MonthlyContribution(in.Contribution, in.ContributionFrequency),
		ContributionFrequency: in.ContributionFrequency,
		Compounding:           in.Compounding,
		Goal:                  in.Goal,
	}

	var sim growthSimulation
	if in.Years <= 0 && in.Goal.IsPositive() {
		sim = simulateUntilGoal(res.StartingBalance, res.MonthlyContribution, in.AnnualReturn, in.Goal)
		sim.Points = yearEndPoints(sim.Points)
	} else {
		res.FixedHorizon = true
		sim = simulateYears(res.StartingBalance, res.MonthlyContribution, in.AnnualReturn, in.Compounding, in.Years, in.Goal)
		if in.Goal.IsPositive() {
			solveRequired(&res, PeriodRate(in.AnnualReturn, in.Compounding), sim.Periods, in.Compounding.PeriodsPerYear())
		}
	}
	res.HorizonMonths = sim.Months
	finish(&res, sim)
	return res
}

// solveRequired sets the contribution that reaches the goal over the
// simulated periods, in both monthly and user frequency terms.
func solveRequired(res *domain.GrowthResult, rate decimal.Decimal, periods, ppy int) {
	periodic := RequiredPeriodicContribution(res.StartingBalance, res.Goal, rate, periods)
	res.RequiredMonthly = monthlyFromPeriod(periodic, ppy)
	res.RequiredContribution = toUserFrequency(res.RequiredMonthly, res.ContributionFrequency)
}
