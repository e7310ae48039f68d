// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// constants.go: canonical method names and parameter minima.

package builder

// Method names used as error context.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodSunflower         = "Sunflower"
	MethodRandomUniform     = "RandomUniform"
	MethodRandomEdge        = "RandomEdge"
)

// CenterVertexID is the fixed label of the hub in Star and Sunflower.
const CenterVertexID = "Center"

// Minimal sizes accepted by the constructors.
const (
	MinCycleNodes = 3
	MinPathNodes  = 2
	MinStarNodes  = 2
	MinGridDim    = 1
	MinPartition  = 1
	MinMembers    = 1
)
