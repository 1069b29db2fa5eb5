package methods

import (
	"math"

	"github.com/RMahshie/sada/internal/engine"
	"github.com/RMahshie/sada/pkg/models"
)

const (
	// BBKName is the engine key of the Butler, Bowyer and Kew method.
	BBKName = "bbk"

	FieldL        = "L"
	FieldDistance = "r"
	FieldC2       = "C2"
	FieldC3       = "C3"
	FieldC4       = "C4"
	FieldC5       = "C5"
	FieldC6       = "C6"
	FieldC7       = "C7"
	// FieldReduction is the wall sound reduction index R, not the distance r.
	FieldReduction = "R"
)

// Compile-time assertion that BBKCalculator implements the Calculator interface.
var _ engine.Calculator = (*BBKCalculator)(nil)

var bbkFields = []models.Field{
	{Name: FieldL, Description: "Sound power level of a horn, bell, speaker or any sounder (dBA referenced to 10^-12 W)"},
	{Name: FieldDistance, Description: "Distance from the sound source, used in calculating the sound power level"},
	{Name: FieldC2, Description: "Function of the distance from the wall to the point of interest"},
	{Name: FieldC3, Description: "Correction for the number of directions that the sounder propagates"},
	{Name: FieldC4, Description: "Correction for the acoustic characteristics of the corridor walls, ceiling and floor (soft or hard)"},
	{Name: FieldC5, Description: "Function of the distance from the sounder to the centre of the bedroom wall"},
	{Name: FieldC6, Description: "Function of the area of the room wall the sound is impacting"},
	{Name: FieldC7, Description: "Function of the frequency of the sound reaching the wall"},
	{Name: FieldReduction, Description: "Average sound reduction index for the wall"},
}

// BBKCalculator implements the Butler, Bowyer and Kew corridor/room attenuation model.
type BBKCalculator struct{}

// NewBBKCalculator creates a BBKCalculator.
func NewBBKCalculator() *BBKCalculator {
	return &BBKCalculator{}
}

// Name returns the engine key of this calculator.
func (c *BBKCalculator) Name() string {
	return BBKName
}

// Title returns the human-readable method name.
func (c *BBKCalculator) Title() string {
	return "Butler, Bowyer and Kew Method"
}

// Keys returns the input field names in display order.
func (c *BBKCalculator) Keys() []string {
	return fieldNames(bbkFields)
}

// Fields returns the input fields with their descriptions.
func (c *BBKCalculator) Fields() []models.Field {
	return append([]models.Field(nil), bbkFields...)
}

// Outputs returns the output level names in display order.
func (c *BBKCalculator) Outputs() []string {
	return []string{"Lw", "Lp1", "Lp2"}
}

// References returns the literature for the method.
func (c *BBKCalculator) References() []models.Reference {
	return []models.Reference{refBowyerButlerKew, refSFPEHandbook}
}

// Calculate checks the domain of values and computes Lw, Lp1 and Lp2.
func (c *BBKCalculator) Calculate(values map[string]float64) ([]models.Level, error) {
	in := models.BBKInput{
		L:        values[FieldL],
		Distance: values[FieldDistance],
		C2:       values[FieldC2],
		C3:       values[FieldC3],
		C4:       values[FieldC4],
		C5:       values[FieldC5],
		C6:       values[FieldC6],
		C7:       values[FieldC7],
		R:        values[FieldReduction],
	}
	if err := CheckBBK(in); err != nil {
		return nil, err
	}

	res, err := c.Compute(in)
	if err != nil {
		return nil, err
	}
	return res.Levels(), nil
}

// CheckBBK validates the domain of a BBK input: r must be positive.
func CheckBBK(in models.BBKInput) error {
	return engine.RequirePositive(map[string]float64{FieldDistance: in.Distance}, FieldDistance)
}

// Compute evaluates
//
//	Lw  = L + 20*log10(r) + 11
//	Lp1 = Lw + C3 + C4 + C5
//	Lp2 = Lp1 - R + C2 + C6 + C7 + 11
//
// at full precision. A non-positive r or a level that overflows yields a *engine.DomainError.
func (c *BBKCalculator) Compute(in models.BBKInput) (models.BBKResult, error) {
	if !(in.Distance > 0) {
		return models.BBKResult{}, &engine.DomainError{Field: FieldDistance, Value: in.Distance, Reason: "must be greater than zero"}
	}

	lw := in.L + 20*math.Log10(in.Distance) + 11
	lp1 := lw + in.C3 + in.C4 + in.C5
	lp2 := lp1 - in.R + in.C2 + in.C6 + in.C7 + 11

	res := models.BBKResult{Lw: lw, Lp1: lp1, Lp2: lp2}
	if err := engine.RequireFinite(res.Levels()...); err != nil {
		return models.BBKResult{}, err
	}
	return res, nil
}

func fieldNames(fields []models.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}
