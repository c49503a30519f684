// Package tsplib reads TSP instances and writes tour files.
//
// It is the file-format boundary around package tsp: tsp never touches
// the filesystem, tsplib never searches.
//
// Instance files follow the TSPLIB layout:
//
//	NAME: sample
//	COMMENT: five cities
//	TYPE: TSP
//	DIMENSION: 5
//	EDGE_WEIGHT_TYPE: EUC_2D
//	NODE_COORD_SECTION
//	1 0.0 0.0
//	...
//	EOF
//
// Tour files carry a name line, a type marker, the dimension n, a section
// marker and one city id per line in visiting order; the closing anchor is
// written negated to mark the end of the tour:
//
//	NAME: sample.tour
//	TYPE: TOUR
//	DIMENSION: 5
//	TOUR_SECTION
//	1
//	3
//	...
//	-1
package tsplib
