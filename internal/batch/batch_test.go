package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/sada/internal/criteria"
	"github.com/RMahshie/sada/internal/engine"
	"github.com/RMahshie/sada/internal/processing"
)

const sampleBatch = `
[[scenario]]
name = "corridor sounder"
method = "bbk"
[scenario.fields]
L = 90
r = 10.0
C2 = 0
C3 = "-3"
C4 = 0
C5 = -2
C6 = 0
C7 = 0
R = 40

[[scenario]]
name = "adjacent bedroom"
method = "hs"
[scenario.fields]
P = 100
Vs = 50
T60 = 0.5
Ss = 40
lambda = 1
R = 10
S = 2
C = 1
Vr = 0
corr = -5

[[scenario]]
method = "hs"
[scenario.fields]
P = "loud"
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleBatch))
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 3)

	assert.Equal(t, "corridor sounder", f.Scenarios[0].Name)
	assert.Equal(t, "bbk", f.Scenarios[0].Method)
	assert.Equal(t, "scenario-3", f.Scenarios[2].Name)

	text := f.Scenarios[0].Text()
	assert.Equal(t, "90", text["L"])
	assert.Equal(t, "10", text["r"])
	assert.Equal(t, "-3", text["C3"])
	assert.Equal(t, "-2", text["C5"])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty document", doc: ""},
		{name: "missing method", doc: "[[scenario]]\nname = \"x\"\n"},
		{name: "malformed", doc: "[[scenario]\nmethod = \"bbk\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte("# nothing here\n"))
	assert.ErrorIs(t, err, ErrNoScenarios)
}

func TestFieldText(t *testing.T) {
	assert.Equal(t, "0.5", fieldText(0.5))
	assert.Equal(t, "-12", fieldText(int64(-12)))
	assert.Equal(t, " 7 ", fieldText(" 7 "))
	assert.Equal(t, "true", fieldText(true))
}

func TestLoadAndRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleBatch), 0o600))

	f, err := Load(path)
	require.NoError(t, err)

	svc, err := processing.NewDefaultCalculationService(map[string]string{"bbk": criteria.DefaultBBK})
	require.NoError(t, err)

	results, err := Run(context.Background(), svc, f)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	assert.Equal(t, []string{"Lw: 121.00 dB", "Lp1: 116.00 dBA", "Lp2: 87.00 dBA"}, results[0].Calculation.Lines)

	var domErr *engine.DomainError
	require.ErrorAs(t, results[1].Err, &domErr)
	assert.Equal(t, "Vr", domErr.Field)
	assert.Nil(t, results[1].Calculation)

	var numErr *engine.InvalidNumberError
	require.ErrorAs(t, results[2].Err, &numErr)
	assert.Equal(t, "P", numErr.Field)

	assert.Equal(t, 2, Failed(results))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_CanceledContext(t *testing.T) {
	f, err := Parse([]byte(sampleBatch))
	require.NoError(t, err)
	svc, err := processing.NewDefaultCalculationService(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, svc, f)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
