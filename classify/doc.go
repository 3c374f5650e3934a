// Package classify turns a numeric dataset into class Breaks.
//
// Closed-form strategies (generic over float32/float64):
//   - EqualInterval: k equal-width steps from min to max.
//   - Quantile: boundaries at evenly spaced ranks of sorted data.
//   - Quartile: Quantile with k = 4.
//
// Search-based strategy:
//   - Jenks: best natural-breaks partition from package jenks, reported as
//     Breaks.
//
// Every function returns ok=false when the data has fewer values than the
// requested number of classes; that is the only failure mode.
package classify
