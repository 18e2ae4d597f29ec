package pay_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterd/internal/domain/pay"
)

func testTable() pay.RateTable {
	return pay.RateTable{
		Mode: pay.ModeDefault,
		Hourly: map[pay.Category]decimal.Decimal{
			pay.CategoryWeekdayDay:     decimal.RequireFromString("42.00"),
			pay.CategoryWeekdayEvening: decimal.RequireFromString("44.50"),
			pay.CategoryWeekdayNight:   decimal.RequireFromString("48.50"),
			pay.CategorySaturday:       decimal.RequireFromString("57.50"),
			pay.CategorySunday:         decimal.RequireFromString("74.00"),
			pay.CategoryPublicHoliday:  decimal.RequireFromString("88.50"),
		},
		SleepoverDefault: decimal.RequireFromString("175.00"),
		SleepoverSchads:  decimal.RequireFromString("60.02"),
	}
}

type fakeOracle struct {
	holidays map[string]bool
	err      error
	calls    int
}

func (f *fakeOracle) IsPublicHoliday(date time.Time, location string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.holidays[date.Format("2006-01-02")], nil
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculateWeekdayDay(t *testing.T) {
	calc := pay.NewCalculator(&fakeOracle{}, "QLD")

	got, err := calc.Calculate(pay.Shift{
		Date:      monday,
		StartTime: "07:30",
		EndTime:   "15:30",
	}, testTable())
	require.NoError(t, err)

	assert.Equal(t, pay.CategoryWeekdayDay, got.Category)
	assert.Equal(t, 8.0, got.HoursWorked)
	assert.True(t, got.BasePay.Equal(money("336.00")), "base pay %s", got.BasePay)
	assert.True(t, got.SleepoverAllowance.IsZero())
	assert.True(t, got.TotalPay.Equal(money("336.00")), "total pay %s", got.TotalPay)
}

func TestCalculateEveningBoundary(t *testing.T) {
	calc := pay.NewCalculator(&fakeOracle{}, "QLD")

	got, err := calc.Calculate(pay.Shift{
		Date:      monday,
		StartTime: "15:30",
		EndTime:   "23:30",
	}, testTable())
	require.NoError(t, err)

	assert.Equal(t, pay.CategoryWeekdayEvening, got.Category)
	assert.Equal(t, 8.0, got.HoursWorked)
	assert.True(t, got.TotalPay.Equal(money("356.00")), "total pay %s", got.TotalPay)
}

func TestCalculateSaturday(t *testing.T) {
	calc := pay.NewCalculator(&fakeOracle{}, "QLD")
	saturday := time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC)

	got, err := calc.Calculate(pay.Shift{
		Date:      saturday,
		StartTime: "07:30",
		EndTime:   "15:30",
	}, testTable())
	require.NoError(t, err)

	assert.Equal(t, pay.CategorySaturday, got.Category)
	assert.True(t, got.TotalPay.Equal(money("460.00")), "total pay %s", got.TotalPay)
}

func TestCalculateSleepoverFlat(t *testing.T) {
	calc := pay.NewCalculator(&fakeOracle{}, "QLD")

	got, err := calc.Calculate(pay.Shift{
		Date:      monday,
		StartTime: "23:30",
		EndTime:   "07:30",
		Sleepover: true,
	}, testTable())
	require.NoError(t, err)

	assert.Equal(t, 8.0, got.HoursWorked)
	assert.True(t, got.BasePay.IsZero(), "base pay %s", got.BasePay)
	assert.True(t, got.SleepoverAllowance.Equal(money("175.00")))
	assert.True(t, got.TotalPay.Equal(money("175.00")))
}

func TestCalculateSleepoverWakeHours(t *testing.T) {
	calc := pay.NewCalculator(&fakeOracle{}, "QLD")

	// Five hours awake, two included: three extra at the night rate.
	got, err := calc.Calculate(pay.Shift{
		Date:      monday,
		StartTime: "23:30",
		EndTime:   "07:30",
		Sleepover: true,
		WakeHours: 5,
	}, testTable())
	require.NoError(t, err)

	assert.Equal(t, pay.CategoryWeekdayNight, got.Category)
	assert.True(t, got.BasePay.Equal(money("145.50")), "base pay %s", got.BasePay)
	assert.True(t, got.SleepoverAllowance.Equal(money("175.00")))
	assert.True(t, got.TotalPay.Equal(money("320.50")), "total pay %s", got.TotalPay)
}

func TestCalculateSleepoverSchadsMode(t *testing.T) {
	calc := pay.NewCalculator(&fakeOracle{}, "QLD")
	table := testTable()
	table.Mode = pay.ModeSchads

	got, err := calc.Calculate(pay.Shift{
		Date:      monday,
		StartTime: "23:30",
		EndTime:   "07:30",
		Sleepover: true,
	}, table)
	require.NoError(t, err)

	assert.True(t, got.SleepoverAllowance.Equal(money("60.02")))
	assert.True(t, got.TotalPay.Equal(money("60.02")))
}

func TestCalculateManualOverrides(t *testing.T) {
	calc := pay.NewCalculator(&fakeOracle{}, "QLD")

	manualRate := money("50.00")
	got, err := calc.Calculate(pay.Shift{
		Date:       monday,
		StartTime:  "07:30",
		EndTime:    "15:30",
		ManualRate: &manualRate,
	}, testTable())
	require.NoError(t, err)
	assert.Equal(t, pay.CategoryWeekdayDay, got.Category)
	assert.True(t, got.TotalPay.Equal(money("400.00")), "total pay %s", got.TotalPay)

	manualCategory := pay.CategorySunday
	got, err = calc.Calculate(pay.Shift{
		Date:           monday,
		StartTime:      "07:30",
		EndTime:        "15:30",
		ManualCategory: &manualCategory,
	}, testTable())
	require.NoError(t, err)
	assert.Equal(t, pay.CategorySunday, got.Category)
	assert.True(t, got.TotalPay.Equal(money("592.00")), "total pay %s", got.TotalPay)

	manualSleepover := true
	got, err = calc.Calculate(pay.Shift{
		Date:            monday,
		StartTime:       "23:30",
		EndTime:         "07:30",
		ManualSleepover: &manualSleepover,
	}, testTable())
	require.NoError(t, err)
	assert.True(t, got.SleepoverAllowance.Equal(money("175.00")))
}

func TestCalculateUnknownManualCategory(t *testing.T) {
	calc := pay.NewCalculator(&fakeOracle{}, "QLD")

	bogus := pay.Category("overtime")
	_, err := calc.Calculate(pay.Shift{
		Date:           monday,
		StartTime:      "07:30",
		EndTime:        "15:30",
		ManualCategory: &bogus,
	}, testTable())
	assert.ErrorIs(t, err, pay.ErrUnknownCategory)
}

func TestCalculateOracleConsultedOnlyWithoutManualSignals(t *testing.T) {
	oracle := &fakeOracle{holidays: map[string]bool{"2025-08-04": true}}
	calc := pay.NewCalculator(oracle, "QLD")

	got, err := calc.Calculate(pay.Shift{
		Date:      monday,
		StartTime: "07:30",
		EndTime:   "15:30",
	}, testTable())
	require.NoError(t, err)
	assert.Equal(t, pay.CategoryPublicHoliday, got.Category)
	assert.True(t, got.PublicHoliday)
	assert.True(t, got.TotalPay.Equal(money("708.00")), "total pay %s", got.TotalPay)
	assert.Equal(t, 1, oracle.calls)

	// An explicit flag skips the lookup.
	oracle.calls = 0
	got, err = calc.Calculate(pay.Shift{
		Date:          monday,
		StartTime:     "07:30",
		EndTime:       "15:30",
		PublicHoliday: true,
	}, testTable())
	require.NoError(t, err)
	assert.True(t, got.PublicHoliday)
	assert.Equal(t, 0, oracle.calls)

	// So does a manual category.
	oracle.calls = 0
	manualCategory := pay.CategoryWeekdayDay
	got, err = calc.Calculate(pay.Shift{
		Date:           monday,
		StartTime:      "07:30",
		EndTime:        "15:30",
		ManualCategory: &manualCategory,
	}, testTable())
	require.NoError(t, err)
	assert.False(t, got.PublicHoliday)
	assert.Equal(t, 0, oracle.calls)
}

func TestCalculateOracleFailureDegradesToNonHoliday(t *testing.T) {
	oracle := &fakeOracle{err: errors.New("calendar offline")}
	calc := pay.NewCalculator(oracle, "QLD")

	got, err := calc.Calculate(pay.Shift{
		Date:      monday,
		StartTime: "07:30",
		EndTime:   "15:30",
	}, testTable())
	require.NoError(t, err)
	assert.False(t, got.PublicHoliday)
	assert.Equal(t, pay.CategoryWeekdayDay, got.Category)
}

func TestCalculateIdempotent(t *testing.T) {
	calc := pay.NewCalculator(&fakeOracle{}, "QLD")
	shift := pay.Shift{Date: monday, StartTime: "15:30", EndTime: "23:30"}

	first, err := calc.Calculate(shift, testTable())
	require.NoError(t, err)
	second, err := calc.Calculate(shift, testTable())
	require.NoError(t, err)

	assert.Equal(t, first.HoursWorked, second.HoursWorked)
	assert.True(t, first.BasePay.Equal(second.BasePay))
	assert.True(t, first.TotalPay.Equal(second.TotalPay))
}

func TestCalculateTotalIsBasePlusAllowance(t *testing.T) {
	calc := pay.NewCalculator(&fakeOracle{}, "QLD")
	shifts := []pay.Shift{
		{Date: monday, StartTime: "07:30", EndTime: "15:30"},
		{Date: monday, StartTime: "15:00", EndTime: "20:00"},
		{Date: monday, StartTime: "23:30", EndTime: "07:30", Sleepover: true, WakeHours: 3},
	}
	for _, shift := range shifts {
		got, err := calc.Calculate(shift, testTable())
		require.NoError(t, err)
		assert.True(t, got.TotalPay.Equal(got.BasePay.Add(got.SleepoverAllowance)))
	}
}

func TestCalculateInvalidTime(t *testing.T) {
	calc := pay.NewCalculator(&fakeOracle{}, "QLD")

	_, err := calc.Calculate(pay.Shift{Date: monday, StartTime: "7am", EndTime: "15:30"}, testTable())
	assert.ErrorIs(t, err, pay.ErrInvalidTime)
}

func TestRateTableValidate(t *testing.T) {
	table := testTable()
	require.NoError(t, table.Validate())

	missing := testTable()
	delete(missing.Hourly, pay.CategorySunday)
	err := missing.Validate()
	require.Error(t, err)
	var missingRate *pay.MissingRateError
	require.ErrorAs(t, err, &missingRate)
	assert.Equal(t, "sunday", missingRate.Key)

	negative := testTable()
	negative.Hourly[pay.CategorySaturday] = money("-1")
	require.Error(t, negative.Validate())

	badMode := testTable()
	badMode.Mode = "hourly"
	assert.ErrorIs(t, badMode.Validate(), pay.ErrUnknownMode)
}
