package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GrowthPoint is one reporting period of a savings projection.
type GrowthPoint struct {
	Period             int
	Year               int
	Month              int
	Age                int
	Balance            decimal.Decimal
	Contributions      decimal.Decimal // cumulative, excluding the starting balance
	Interest           decimal.Decimal // cumulative
	PeriodContribution decimal.Decimal
	PeriodInterest     decimal.Decimal
	YearEnd            bool
}

// GoalOutcome records when, if ever, a goal is reached.
type GoalOutcome struct {
	Reached bool
	Months  int
}

// MillionInput is the parsed million-dollar goal form.
type MillionInput struct {
	CurrentAge            int
	TargetAge             int
	CurrentSavings        decimal.Decimal
	Contribution          decimal.Decimal
	ContributionFrequency ContributionFrequency
	AnnualReturn          decimal.Decimal
	Goal                  decimal.Decimal
	Compounding           Compounding
}

// SavingsGoalInput is the parsed savings goal form.
type SavingsGoalInput struct {
	Goal                  decimal.Decimal
	CurrentSavings        decimal.Decimal
	Contribution          decimal.Decimal
	ContributionFrequency ContributionFrequency
	AnnualReturn          decimal.Decimal
	TimelineMonths        int
	StartDate             time.Time
}

// GrowthInput is the parsed compound growth form.
type GrowthInput struct {
	Principal             decimal.Decimal
	Contribution          decimal.Decimal
	ContributionFrequency ContributionFrequency
	AnnualReturn          decimal.Decimal
	Compounding           Compounding
	Years                 int
	Goal                  decimal.Decimal
}

// GrowthResult is shared by the three goal and growth calculators.
type GrowthResult struct {
	StartingBalance       decimal.Decimal
	MonthlyContribution   decimal.Decimal
	ContributionFrequency ContributionFrequency
	Compounding           Compounding
	Goal                  decimal.Decimal

	FixedHorizon  bool
	HorizonMonths int
	HorizonCapped bool // the requested horizon exceeded the simulation limit

	FinalBalance       decimal.Decimal
	TotalContributions decimal.Decimal
	TotalInterest      decimal.Decimal
	Achievable         bool
	Shortfall          decimal.Decimal

	GoalOutcome          GoalOutcome
	RequiredContribution decimal.Decimal // in the user's contribution frequency
	RequiredMonthly      decimal.Decimal

	Points []GrowthPoint
}
