package models

import (
	"time"
)

// BBKInput holds the inputs of the Butler, Bowyer and Kew method.
// Distance is the source distance r and must be positive.
type BBKInput struct {
	L        float64 `json:"L" doc:"Sound power level of the sounder (dBA re 10^-12 W)"`
	Distance float64 `json:"r" doc:"Distance from the sound source"`
	C2       float64 `json:"C2" doc:"Correction for the distance from the wall to the point of interest"`
	C3       float64 `json:"C3" doc:"Correction for the number of propagation directions"`
	C4       float64 `json:"C4" doc:"Correction for corridor wall, ceiling and floor characteristics"`
	C5       float64 `json:"C5" doc:"Correction for the distance from the sounder to the bedroom wall"`
	C6       float64 `json:"C6" doc:"Correction for the area of the room wall"`
	C7       float64 `json:"C7" doc:"Correction for the frequency reaching the wall"`
	R        float64 `json:"R" doc:"Average sound reduction index of the wall"`
}

// BBKResult holds the levels computed by the Butler, Bowyer and Kew method
type BBKResult struct {
	Lw  float64 `json:"Lw" doc:"Sound power level (dB)"`
	Lp1 float64 `json:"Lp1" doc:"Sound pressure level outside the room (dBA)"`
	Lp2 float64 `json:"Lp2" doc:"Sound pressure level inside the room (dBA)"`
}

// Levels returns the result in display order Lw, Lp1, Lp2
func (r BBKResult) Levels() []Level {
	return []Level{
		{Name: "Lw", Value: r.Lw, Unit: UnitDB},
		{Name: "Lp1", Value: r.Lp1, Unit: UnitDBA},
		{Name: "Lp2", Value: r.Lp2, Unit: UnitDBA},
	}
}

// HSInput holds the inputs of the Halliwell and Sultan method.
// Vs, T60 and Vr must be positive.
type HSInput struct {
	P      float64 `json:"P" doc:"Sound power level of the sounder"`
	Vs     float64 `json:"Vs" doc:"Volume of the source room"`
	T60    float64 `json:"T60" doc:"Reverberation time"`
	Ss     float64 `json:"Ss" doc:"Surface area of the source room"`
	Lambda float64 `json:"lambda" doc:"Wavelength"`
	R      float64 `json:"R" doc:"Room attenuation"`
	S      float64 `json:"S" doc:"Surface area of the partition between source and receiver rooms"`
	C      float64 `json:"C" doc:"Constant related to sound propagation"`
	Vr     float64 `json:"Vr" doc:"Volume of the receiver room"`
	Corr   float64 `json:"corr" doc:"Correction for additional rooms in the propagation path"`
}

// HSResult holds the levels computed by the Halliwell and Sultan method
type HSResult struct {
	Ls float64 `json:"Ls" doc:"Sound pressure level in the source room (dBA)"`
	Lr float64 `json:"Lr" doc:"Sound pressure level in the receiver room (dBA)"`
}

// Levels returns the result in display order Ls, Lr
func (r HSResult) Levels() []Level {
	return []Level{
		{Name: "Ls", Value: r.Ls, Unit: UnitDBA},
		{Name: "Lr", Value: r.Lr, Unit: UnitDBA},
	}
}

// Field describes one named input of a method
type Field struct {
	Name        string `json:"name" doc:"Field name as accepted in requests"`
	Description string `json:"description" doc:"What the field represents"`
}

// Reference is a literature source for a method
type Reference struct {
	Citation string `json:"citation" doc:"Bibliographic citation"`
	URL      string `json:"url" doc:"Link to the publication"`
}

// MethodInfo describes a registered calculation method
type MethodInfo struct {
	Name       string      `json:"name" example:"bbk" doc:"Method identifier"`
	Title      string      `json:"title" doc:"Human-readable method name"`
	Fields     []Field     `json:"fields" doc:"Inputs in display order"`
	Outputs    []string    `json:"outputs" doc:"Output levels in display order"`
	References []Reference `json:"references" doc:"Literature for the method"`
	Criterion  string      `json:"criterion,omitempty" doc:"Audibility criterion applied to the outputs"`
}

// Assessment is the outcome of an audibility criterion
type Assessment struct {
	Criterion string `json:"criterion" doc:"Criterion expression"`
	Audible   bool   `json:"audible" doc:"Whether the computed levels satisfy the criterion"`
}

// Calculation represents the outcome of a single method evaluation
type Calculation struct {
	ID         string             `json:"id" doc:"Calculation unique identifier"`
	Method     string             `json:"method" doc:"Method identifier"`
	Inputs     map[string]float64 `json:"inputs" doc:"Parsed input values"`
	Levels     []Level            `json:"levels" doc:"Computed levels in display order"`
	Lines      []string           `json:"lines" doc:"Rendered result lines"`
	Text       string             `json:"text" doc:"Rendered lines joined by newlines"`
	Assessment *Assessment        `json:"assessment,omitempty" doc:"Audibility assessment when a criterion is configured"`
	CreatedAt  time.Time          `json:"created_at" doc:"When the calculation ran"`
}
