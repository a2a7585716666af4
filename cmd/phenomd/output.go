package main

import (
	"encoding/json"
	"fmt"
	"io"

	phenomd "github.com/tphakala/go-phenomd"
)

// report is the JSON form of a computed result.
type report struct {
	Params struct {
		M1   float64 `json:"m1"`
		M2   float64 `json:"m2"`
		Chi1 float64 `json:"chi1"`
		Chi2 float64 `json:"chi2"`
	} `json:"params"`
	Derived struct {
		TotalMass       float64 `json:"total_mass"`
		GeometrizedMass float64 `json:"geometrized_mass_s"`
		Eta             float64 `json:"eta"`
		ChiPN           float64 `json:"chi_pn"`
		FinalSpin       float64 `json:"final_spin"`
	} `json:"derived"`
	Coefficients map[string]float64 `json:"coefficients"`
	Frequencies  struct {
		F1    float64 `json:"f1"`
		F2    float64 `json:"f2"`
		F3    float64 `json:"f3"`
		F4    float64 `json:"f4"`
		FRD   float64 `json:"f_rd"`
		FDamp float64 `json:"f_damp"`
	} `json:"frequencies_hz"`
}

func newReport(res *phenomd.Result) report {
	var r report
	r.Params.M1 = res.Params.M1
	r.Params.M2 = res.Params.M2
	r.Params.Chi1 = res.Params.Chi1
	r.Params.Chi2 = res.Params.Chi2

	r.Derived.TotalMass = res.Derived.TotalMass
	r.Derived.GeometrizedMass = res.Derived.GeometrizedMass
	r.Derived.Eta = res.Derived.Eta
	r.Derived.ChiPN = res.Derived.ChiPN
	r.Derived.FinalSpin = res.Derived.FinalSpin

	r.Coefficients = res.Coefficients.Map()

	tr := res.Transitions
	r.Frequencies.F1 = tr.F1
	r.Frequencies.F2 = tr.F2
	r.Frequencies.F3 = tr.F3
	r.Frequencies.F4 = tr.F4
	r.Frequencies.FRD = tr.FRD
	r.Frequencies.FDamp = tr.FDamp
	return r
}

// writeResult renders res to w in the requested format.
func writeResult(w io.Writer, res *phenomd.Result, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(res))
	case formatText:
		return writeText(w, res)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeText(w io.Writer, res *phenomd.Result) error {
	p, d, tr := res.Params, res.Derived, res.Transitions

	lines := []string{
		fmt.Sprintf("Binary: m1=%g Msun, m2=%g Msun, chi1=%g, chi2=%g", p.M1, p.M2, p.Chi1, p.Chi2),
		fmt.Sprintf("  Total mass: %g Msun (%.6e s)", d.TotalMass, d.GeometrizedMass),
		fmt.Sprintf("  Eta: %.6f  chiPN: %.6f  final spin: %.6f", d.Eta, d.ChiPN, d.FinalSpin),
		"",
		"Frequencies (Hz):",
		fmt.Sprintf("  f1 (phase join):     %10.4f", tr.F1),
		fmt.Sprintf("  f2 (merger join):    %10.4f", tr.F2),
		fmt.Sprintf("  f3 (amplitude join): %10.4f", tr.F3),
		fmt.Sprintf("  f4 (amplitude peak): %10.4f", tr.F4),
		fmt.Sprintf("  fRD:                 %10.4f", tr.FRD),
		fmt.Sprintf("  fdamp:               %10.4f", tr.FDamp),
		"",
		"Coefficients:",
	}
	for i := range phenomd.NumCoefficients {
		c := phenomd.Coefficient(i)
		lines = append(lines, fmt.Sprintf("  %-7s % .10e", c.String(), res.Coefficients.Get(c)))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
