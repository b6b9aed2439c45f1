// SPDX-License-Identifier: MIT

package aashto

import (
	"math"

	"github.com/katalvlaran/geolab/core"
)

// Sieve openings in millimetres.
const (
	SieveNo4   = 4.75  // gravel / sand boundary
	SieveNo10  = 2.0   // AASHTO coarse reference sieve
	SieveNo40  = 0.425 // AASHTO medium reference sieve
	SieveNo200 = 0.075 // sand / fines boundary
)

// Fractions of the sand band (No.200–No.4) passing No.10 and No.40,
// assuming sand is spread evenly on a log-size axis.
var (
	no10SandFraction = math.Log(SieveNo10/SieveNo200) / math.Log(SieveNo4/SieveNo200)
	no40SandFraction = math.Log(SieveNo40/SieveNo200) / math.Log(SieveNo4/SieveNo200)
)

// PercentPassing returns percent passing the No.10, No.40 and No.200 sieves.
// Recorded sieve data is returned as is; otherwise No.200 is the fines
// percentage and No.10/No.40 add the interpolated share of the sand.
func PercentPassing(s core.Sample) core.SievePassing {
	if p, ok := s.SievePassing(); ok {
		return p
	}

	return core.SievePassing{
		No10:  s.Fines() + no10SandFraction*s.Sand(),
		No40:  s.Fines() + no40SandFraction*s.Sand(),
		No200: s.Fines(),
	}
}
