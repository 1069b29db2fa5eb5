package engine

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/sada/pkg/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    float64
		wantErr bool
	}{
		{name: "integer", text: "90", want: 90},
		{name: "decimal", text: "0.5", want: 0.5},
		{name: "negative", text: "-3", want: -3},
		{name: "explicit plus", text: "+2.25", want: 2.25},
		{name: "leading dot", text: ".5", want: 0.5},
		{name: "trailing dot", text: "5.", want: 5},
		{name: "exponent", text: "1.086e-3", want: 0.001086},
		{name: "surrounding whitespace", text: "  40\t", want: 40},
		{name: "empty", text: "", wantErr: true},
		{name: "blank", text: "   ", wantErr: true},
		{name: "letters", text: "abc", wantErr: true},
		{name: "trailing garbage", text: "12dB", wantErr: true},
		{name: "comma decimal separator", text: "1,5", wantErr: true},
		{name: "thousands separator", text: "1,000", wantErr: true},
		{name: "nan", text: "NaN", wantErr: true},
		{name: "infinity", text: "Inf", wantErr: true},
		{name: "hex float", text: "0x1p-2", wantErr: true},
		{name: "underscore digits", text: "1_000", wantErr: true},
		{name: "overflow", text: "1e400", wantErr: true},
		{name: "lone sign", text: "-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			if tt.wantErr {
				var numErr *InvalidNumberError
				require.ErrorAs(t, err, &numErr)
				assert.Equal(t, tt.text, numErr.Text)
				assert.Empty(t, numErr.Field)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestParse_OverflowUnwrapsToRangeError(t *testing.T) {
	_, err := Parse("1e400")
	require.Error(t, err)
	assert.True(t, errors.Is(err, strconv.ErrRange))
}

func TestParseAll(t *testing.T) {
	values, err := ParseAll(map[string]string{"a": "1", "b": "2.5", "c": "-4"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a": 1, "b": 2.5, "c": -4}, values)
}

func TestParseAll_FirstFailureInSortedOrder(t *testing.T) {
	raw := map[string]string{"zeta": "x", "alpha": "1", "beta": "oops", "gamma": ""}

	// repeated runs must name the same field regardless of map iteration order
	for i := 0; i < 20; i++ {
		values, err := ParseAll(raw)
		assert.Nil(t, values)

		var numErr *InvalidNumberError
		require.ErrorAs(t, err, &numErr)
		assert.Equal(t, "beta", numErr.Field)
		assert.Equal(t, "oops", numErr.Text)
	}
}

func TestParseFields(t *testing.T) {
	raw := map[string]string{"r": "10", "L": "90", "extra": "not a number"}

	values, err := ParseFields(raw, []string{"L", "r"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"L": 90, "r": 10}, values)
}

func TestParseFields_MissingFieldIsEmpty(t *testing.T) {
	_, err := ParseFields(map[string]string{"L": "90"}, []string{"L", "r"})

	var numErr *InvalidNumberError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "r", numErr.Field)
	assert.Equal(t, "", numErr.Text)
	assert.Equal(t, "field r: value is required", numErr.Error())
}

func TestParseFields_ReportsInGivenOrder(t *testing.T) {
	raw := map[string]string{"L": "x", "r": "y"}

	_, err := ParseFields(raw, []string{"r", "L"})

	var numErr *InvalidNumberError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "r", numErr.Field)
}

func TestRequirePositive(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]float64
		names     []string
		wantField string
	}{
		{name: "all positive", values: map[string]float64{"a": 1, "b": 0.001}, names: []string{"a", "b"}},
		{name: "zero", values: map[string]float64{"a": 0}, names: []string{"a"}, wantField: "a"},
		{name: "negative", values: map[string]float64{"a": 1, "b": -2}, names: []string{"a", "b"}, wantField: "b"},
		{name: "nan", values: map[string]float64{"a": math.NaN()}, names: []string{"a"}, wantField: "a"},
		{name: "first violation wins", values: map[string]float64{"a": -1, "b": -2}, names: []string{"b", "a"}, wantField: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequirePositive(tt.values, tt.names...)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var domErr *DomainError
			require.ErrorAs(t, err, &domErr)
			assert.Equal(t, tt.wantField, domErr.Field)
			assert.Equal(t, tt.wantField, domErr.Name())
			assert.Empty(t, domErr.Expression)
		})
	}
}

func TestLog10(t *testing.T) {
	got, err := Log10("term", 1000)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-12)

	for _, x := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Log10("term", x)
		var domErr *DomainError
		require.ErrorAs(t, err, &domErr, "x=%v", x)
		assert.Equal(t, "term", domErr.Expression)
		assert.Equal(t, "term", domErr.Name())
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `"abc" is not a valid number`, (&InvalidNumberError{Text: "abc"}).Error())
	assert.Equal(t, `field L: "abc" is not a valid number`, (&InvalidNumberError{Field: "L", Text: "abc"}).Error())
	assert.Equal(t, "field r = 0: must be greater than zero",
		(&DomainError{Field: "r", Value: 0, Reason: "must be greater than zero"}).Error())
	assert.Equal(t, "expression term1 = -2.5: logarithm argument must be positive",
		(&DomainError{Expression: "term1", Value: -2.5, Reason: "logarithm argument must be positive"}).Error())
}

func TestRequireFinite(t *testing.T) {
	tests := []struct {
		name     string
		levels   []models.Level
		wantExpr string
	}{
		{name: "all finite", levels: []models.Level{{Name: "Lw", Value: 121}, {Name: "Lp1", Value: -3}}},
		{name: "positive infinity", levels: []models.Level{{Name: "Lw", Value: 1}, {Name: "Lp1", Value: math.Inf(1)}}, wantExpr: "Lp1"},
		{name: "negative infinity", levels: []models.Level{{Name: "Lr", Value: math.Inf(-1)}}, wantExpr: "Lr"},
		{name: "NaN", levels: []models.Level{{Name: "Ls", Value: math.NaN()}}, wantExpr: "Ls"},
		{name: "first offender wins", levels: []models.Level{{Name: "Lp1", Value: math.Inf(1)}, {Name: "Lp2", Value: math.Inf(1)}}, wantExpr: "Lp1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireFinite(tt.levels...)
			if tt.wantExpr == "" {
				assert.NoError(t, err)
				return
			}

			var domErr *DomainError
			require.ErrorAs(t, err, &domErr)
			assert.Equal(t, tt.wantExpr, domErr.Expression)
			assert.Empty(t, domErr.Field)
		})
	}
}
