// Package plasma describes a LIBS simulation request and validates it.
//
// A [Request] bundles the sample [Composition], the plasma [Condition] and
// the wavelength [Window]. [Validate] checks the physical constraints and
// reports the first violated rule as a [*ParamError] naming the offending
// field. The error unwraps to [ErrComposition] for percentage sums above 100
// and to [ErrInvalidParameter] for everything else.
package plasma
