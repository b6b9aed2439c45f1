// SPDX-License-Identifier: MIT
package gradation_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geolab/gradation"
)

// ExampleGradeSizes grades a sand from its D10/D30/D60 diameters.
func ExampleGradeSizes() {
	cc, _ := gradation.CurvatureCoefficient(0.1, 0.5, 1.2)
	cu, _ := gradation.UniformityCoefficient(0.1, 1.2)
	fmt.Printf("Cc=%.2f Cu=%.1f\n", cc, cu)

	g, err := gradation.GradeSizes(gradation.Sand, 0.1, 0.5, 1.2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(g, g.Symbol())
	// Output:
	// Cc=2.08 Cu=12.0
	// well graded W
}

// ExampleCurvatureCoefficient shows the sentinel returned when no curve exists.
func ExampleCurvatureCoefficient() {
	if !gradation.HasParticleSizes(0, 0, 0) {
		_, err := gradation.CurvatureCoefficient(0, 0, 0)
		fmt.Println(errors.Is(err, gradation.ErrDivisionByZero))
	}
	// Output:
	// true
}
