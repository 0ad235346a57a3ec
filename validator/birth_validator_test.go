package validator

import (
	"testing"

	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBirthInput_Valid(t *testing.T) {
	input, err := ValidateBirthInput(model.BirthInputRaw{
		Name:  "Ayşe",
		Date:  "15.05.1995",
		Time:  "14:30",
		Place: "Istanbul, Turkey",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, input.Day)
	assert.Equal(t, 5, input.Month)
	assert.Equal(t, 1995, input.Year)
	assert.Equal(t, 14, input.Hour)
	assert.Equal(t, 30, input.Minute)
	assert.Equal(t, "Istanbul, Turkey", input.Place)
}

func TestValidateBirthInput_SingleDigitDayAndMonth(t *testing.T) {
	input, err := ValidateBirthInput(model.BirthInputRaw{
		Date:  "5.3.1999",
		Time:  "7:05",
		Place: "Ankara",
	})
	require.NoError(t, err)
	assert.Equal(t, "05.03.1999", input.DateString())
	assert.Equal(t, "07:05", input.TimeString())
}

// The day bound is a flat 31 for every month: February 29 on a non-leap year
// passes. This mirrors what the live forms have always accepted and must not
// be silently tightened.
func TestValidateBirthInput_AcceptsNonLeapFebruary29(t *testing.T) {
	input, err := ValidateBirthInput(model.BirthInputRaw{
		Date:  "29.02.2021",
		Time:  "10:00",
		Place: "Izmir",
	})
	require.NoError(t, err)
	assert.Equal(t, 29, input.Day)
	assert.Equal(t, 2, input.Month)
}

func TestValidateBirthInput_RejectsBadDateFormat(t *testing.T) {
	cases := []string{"1995-05-15", "15/05/1995", "15.05.95", "", "birinci ocak"}
	for _, date := range cases {
		_, err := ValidateBirthInput(model.BirthInputRaw{
			Date:  date,
			Time:  "10:00",
			Place: "Izmir",
		})
		var vErr *customerrors.ValidationError
		require.ErrorAs(t, err, &vErr, "date %q", date)
		assert.Equal(t, "birth_date", vErr.Field)
	}
}

func TestValidateBirthInput_RejectsMonthOutOfRange(t *testing.T) {
	_, err := ValidateBirthInput(model.BirthInputRaw{
		Date:  "15.13.1995",
		Time:  "10:00",
		Place: "Izmir",
	})
	var vErr *customerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Geçersiz ay", vErr.Reason)
}

func TestValidateBirthInput_RejectsDayOutOfRange(t *testing.T) {
	_, err := ValidateBirthInput(model.BirthInputRaw{
		Date:  "32.01.1995",
		Time:  "10:00",
		Place: "Izmir",
	})
	var vErr *customerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Geçersiz gün", vErr.Reason)
}

func TestValidateBirthInput_RejectsHour24(t *testing.T) {
	_, err := ValidateBirthInput(model.BirthInputRaw{
		Date:  "15.05.1995",
		Time:  "24:00",
		Place: "Izmir",
	})
	var vErr *customerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "birth_time", vErr.Field)
}

func TestValidateBirthInput_RejectsMinute60(t *testing.T) {
	_, err := ValidateBirthInput(model.BirthInputRaw{
		Date:  "15.05.1995",
		Time:  "12:60",
		Place: "Izmir",
	})
	var vErr *customerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "birth_time", vErr.Field)
}

func TestValidateBirthInput_RejectsShortPlace(t *testing.T) {
	_, err := ValidateBirthInput(model.BirthInputRaw{
		Date:  "15.05.1995",
		Time:  "10:00",
		Place: " a ",
	})
	var vErr *customerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Doğum yeri çok kısa", vErr.Reason)
}

func TestValidateBirthInput_RejectsEmptyPlace(t *testing.T) {
	_, err := ValidateBirthInput(model.BirthInputRaw{
		Date:  "15.05.1995",
		Time:  "10:00",
		Place: "   ",
	})
	var vErr *customerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Lütfen doğum yerini girin", vErr.Reason)
}

// Fail-fast: a payload breaking several rules reports the date rule, the
// first one checked.
func TestValidateBirthInput_FailFastReportsFirstRule(t *testing.T) {
	_, err := ValidateBirthInput(model.BirthInputRaw{
		Date:  "bozuk",
		Time:  "24:99",
		Place: "x",
	})
	var vErr *customerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "birth_date", vErr.Field)
}

func TestValidateISOBirthInput_Valid(t *testing.T) {
	input, err := ValidateISOBirthInput(model.BirthInputRaw{
		Date:  "1995-05-15",
		Time:  "14:30",
		Place: "Istanbul",
	})
	require.NoError(t, err)
	assert.Equal(t, "1995-05-15", input.ISODateString())
}

// The ISO entry point delegates to time.Parse, so impossible calendar dates
// are rejected there, unlike the GG.AA.YYYY entry point.
func TestValidateISOBirthInput_RejectsNonLeapFebruary29(t *testing.T) {
	_, err := ValidateISOBirthInput(model.BirthInputRaw{
		Date:  "2021-02-29",
		Time:  "10:00",
		Place: "Izmir",
	})
	var vErr *customerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "birth_date", vErr.Field)
}

func TestValidateBirthInput_TrimsNameAndPlace(t *testing.T) {
	input, err := ValidateBirthInput(model.BirthInputRaw{
		Name:  "  Ayşe  ",
		Date:  "15.05.1995",
		Time:  "14:30",
		Place: "  Istanbul  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ayşe", input.Name)
	assert.Equal(t, "Istanbul", input.Place)
}
