// Package classbreaks computes class breakpoints for binning an ordered
// numeric dataset into k contiguous classes, the classic legend problem of
// choropleth maps.
//
// 🚀 What's inside?
//
//	combinatorics/ — exact n choose r and a lexicographic combination generator
//	jenks/         — exhaustive natural breaks: partitions, SDAM/SDCM/GVF, policies
//	breaks/        — Breaks and Ranges output model with lossless conversion
//	classify/      — equal interval, quantile, quartile and Jenks as Breaks
//	cmd/natbreaks  — command line front end
//
// Quick example:
//
//	data   = [4 5 9 10], k = 2
//	best   = [[4 5] [9 10]]     GVF ≈ 0.9615
//	breaks = [4 5 10]
//	ranges = [4,5) [5,10]
//
// Jenks here is deliberately exhaustive: it scores all C(n−1, k−1)
// partitions. Bound n and k before calling it.
//
//	go get github.com/katalvlaran/classbreaks
package classbreaks
