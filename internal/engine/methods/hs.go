package methods

import (
	"github.com/RMahshie/sada/internal/engine"
	"github.com/RMahshie/sada/pkg/models"
)

const (
	// HSName is the engine key of the Halliwell and Sultan method.
	HSName = "hs"

	FieldP      = "P"
	FieldVs     = "Vs"
	FieldT60    = "T60"
	FieldSs     = "Ss"
	FieldLambda = "lambda"
	// FieldAttenuation is the room attenuation R.
	FieldAttenuation = "R"
	FieldS           = "S"
	FieldC           = "C"
	FieldVr          = "Vr"
	FieldCorr        = "corr"

	// ExprTerm1 and ExprTerm2 name the logarithm arguments in domain errors.
	ExprTerm1 = "term1"
	ExprTerm2 = "term2"
)

// Compile-time assertion that HSCalculator implements the Calculator interface.
var _ engine.Calculator = (*HSCalculator)(nil)

var hsFields = []models.Field{
	{Name: FieldP, Description: "Sound power level (SPL) of the sounder"},
	{Name: FieldVs, Description: "Volume of the source room"},
	{Name: FieldT60, Description: "Reverberation time"},
	{Name: FieldSs, Description: "Surface area of the source room"},
	{Name: FieldLambda, Description: "Wavelength"},
	{Name: FieldAttenuation, Description: "Room attenuation"},
	{Name: FieldS, Description: "Surface area of the partition between the sounder room and the receiver room"},
	{Name: FieldC, Description: "Constant related to sound propagation"},
	{Name: FieldVr, Description: "Volume of the receiver room"},
	{Name: FieldCorr, Description: "Correction factor, recommended -5 dBA for every additional room in the propagation path"},
}

// HSCalculator implements the Halliwell and Sultan inter-room attenuation model.
type HSCalculator struct{}

// NewHSCalculator creates an HSCalculator.
func NewHSCalculator() *HSCalculator {
	return &HSCalculator{}
}

// Name returns the engine key of this calculator.
func (c *HSCalculator) Name() string {
	return HSName
}

// Title returns the human-readable method name.
func (c *HSCalculator) Title() string {
	return "Halliwell and Sultan Method"
}

// Keys returns the input field names in display order.
func (c *HSCalculator) Keys() []string {
	return fieldNames(hsFields)
}

// Fields returns the input fields with their descriptions.
func (c *HSCalculator) Fields() []models.Field {
	return append([]models.Field(nil), hsFields...)
}

// Outputs returns the output level names in display order.
func (c *HSCalculator) Outputs() []string {
	return []string{"Ls", "Lr"}
}

// References returns the literature for the method.
func (c *HSCalculator) References() []models.Reference {
	return []models.Reference{refHalliwellSultan, refSFPEHandbook}
}

// Calculate checks the domain of values and computes Ls and Lr.
func (c *HSCalculator) Calculate(values map[string]float64) ([]models.Level, error) {
	in := models.HSInput{
		P:      values[FieldP],
		Vs:     values[FieldVs],
		T60:    values[FieldT60],
		Ss:     values[FieldSs],
		Lambda: values[FieldLambda],
		R:      values[FieldAttenuation],
		S:      values[FieldS],
		C:      values[FieldC],
		Vr:     values[FieldVr],
		Corr:   values[FieldCorr],
	}
	if err := CheckHS(in); err != nil {
		return nil, err
	}

	res, err := c.Compute(in)
	if err != nil {
		return nil, err
	}
	return res.Levels(), nil
}

// CheckHS validates the domain of an HS input: Vs, T60 and Vr must be positive, checked in
// that order.
func CheckHS(in models.HSInput) error {
	return engine.RequirePositive(map[string]float64{
		FieldVs:  in.Vs,
		FieldT60: in.T60,
		FieldVr:  in.Vr,
	}, FieldVs, FieldT60, FieldVr)
}

// Compute evaluates
//
//	term1 = (Vs / T60) * (1 + (Ss*lambda) / (8*Vs))
//	Ls    = P - 10*log10(term1) + 14
//	term2 = (S * T60 * C * 1.086) / (60 * Vr)
//	Lr    = Ls - R + 10*log10(term2) + corr
//
// Vs, T60 and Vr are re-checked, and a term1 or term2 that is not strictly positive yields a
// *engine.DomainError naming the term. A level that overflows yields one naming the level.
func (c *HSCalculator) Compute(in models.HSInput) (models.HSResult, error) {
	if err := CheckHS(in); err != nil {
		return models.HSResult{}, err
	}

	term1 := (in.Vs / in.T60) * (1 + (in.Ss*in.Lambda)/(8*in.Vs))
	log1, err := engine.Log10(ExprTerm1, term1)
	if err != nil {
		return models.HSResult{}, err
	}
	ls := in.P - 10*log1 + 14

	term2 := (in.S * in.T60 * in.C * 1.086) / (60 * in.Vr)
	log2, err := engine.Log10(ExprTerm2, term2)
	if err != nil {
		return models.HSResult{}, err
	}
	lr := ls - in.R + 10*log2 + in.Corr

	res := models.HSResult{Ls: ls, Lr: lr}
	if err := engine.RequireFinite(res.Levels()...); err != nil {
		return models.HSResult{}, err
	}
	return res, nil
}
