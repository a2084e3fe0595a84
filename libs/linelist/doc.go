// Package linelist turns upstream line-database responses into a
// [spectrum.Raw] line list.
//
// Two response shapes are supported:
//
//   - a script payload holding a dataDopplerArray literal of
//     [wavelength,intensity] pairs, parsed by [ParsePayload]
//   - a CSV table with a wavelength column, a summed intensity column and
//     optional per-ion columns, parsed by [ParseTable]
//
// [Provider] hides the shape from callers; [PayloadProvider] and
// [TableProvider] adapt each shape's source to it.
package linelist
