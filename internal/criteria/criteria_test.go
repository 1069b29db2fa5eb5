package criteria

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/sada/internal/engine"
	"github.com/RMahshie/sada/internal/engine/methods"
	"github.com/RMahshie/sada/pkg/models"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{name: "double threshold", expr: "Lp2 >= 75.0"},
		{name: "integer threshold", expr: "Lp2 >= 75"},
		{name: "combined", expr: "Lp1 >= 85.0 && Lp2 >= 75.0"},
		{name: "unknown variable", expr: "Lr >= 75.0", wantErr: true},
		{name: "not boolean", expr: "Lp2 + 1.0", wantErr: true},
		{name: "syntax error", expr: "Lp2 >=", wantErr: true},
	}

	outputs := []string{"Lw", "Lp1", "Lp2"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crit, err := Compile(tt.expr, outputs)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expr, crit.Expression())
		})
	}
}

func TestCriterion_Evaluate(t *testing.T) {
	crit, err := Compile("Lp2 >= 75", []string{"Lw", "Lp1", "Lp2"})
	require.NoError(t, err)

	audible, err := crit.Evaluate(models.BBKResult{Lw: 121, Lp1: 116, Lp2: 87}.Levels())
	require.NoError(t, err)
	assert.True(t, audible)

	audible, err = crit.Evaluate(models.BBKResult{Lw: 100, Lp1: 95, Lp2: 74.99}.Levels())
	require.NoError(t, err)
	assert.False(t, audible)
}

func TestCriterion_Evaluate_MissingLevel(t *testing.T) {
	crit, err := Compile("Lr >= 75.0", []string{"Ls", "Lr"})
	require.NoError(t, err)

	_, err = crit.Evaluate([]models.Level{{Name: "Ls", Value: 80}})
	assert.Error(t, err)
}

func TestNewSet(t *testing.T) {
	eng := methods.NewEngine()

	set, err := NewSet(eng, map[string]string{"bbk": DefaultBBK, "hs": ""})
	require.NoError(t, err)
	assert.Equal(t, DefaultBBK, set.Expression("bbk"))
	assert.Equal(t, "", set.Expression("hs"))

	assessment, err := set.Assess("bbk", models.BBKResult{Lw: 121, Lp1: 116, Lp2: 87}.Levels())
	require.NoError(t, err)
	require.NotNil(t, assessment)
	assert.Equal(t, DefaultBBK, assessment.Criterion)
	assert.True(t, assessment.Audible)

	assessment, err = set.Assess("hs", models.HSResult{Ls: 93.59, Lr: 43.38}.Levels())
	require.NoError(t, err)
	assert.Nil(t, assessment)
}

func TestNewSet_Errors(t *testing.T) {
	eng := methods.NewEngine()

	_, err := NewSet(eng, map[string]string{"nope": "x > 1.0"})
	assert.ErrorIs(t, err, engine.ErrUnknownMethod)

	_, err = NewSet(eng, map[string]string{"hs": "Lp2 >= 75.0"})
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	set, err := NewSet(methods.NewEngine(), map[string]string{"bbk": DefaultBBK, "hs": DefaultHS})
	require.NoError(t, err)

	assessment, err := set.Assess("hs", models.HSResult{Ls: 93.59, Lr: 43.38}.Levels())
	require.NoError(t, err)
	require.NotNil(t, assessment)
	assert.False(t, assessment.Audible)
}

func TestSet_Assess_Concurrent(t *testing.T) {
	set, err := NewSet(methods.NewEngine(), map[string]string{"bbk": DefaultBBK, "hs": DefaultHS})
	require.NoError(t, err)

	bbk := models.BBKResult{Lw: 121, Lp1: 116, Lp2: 87}.Levels()
	hs := models.HSResult{Ls: 93.59, Lr: 43.38}.Levels()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				a, err := set.Assess("bbk", bbk)
				if assert.NoError(t, err) {
					assert.True(t, a.Audible)
				}
				a, err = set.Assess("hs", hs)
				if assert.NoError(t, err) {
					assert.False(t, a.Audible)
				}
			}
		}()
	}
	wg.Wait()
}
