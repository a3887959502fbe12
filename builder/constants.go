// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBinomialTree is the canonical name for the BinomialTree constructor.
	MethodBinomialTree = "BinomialTree"
	// MethodBuildGraph prefixes errors raised by the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
)

//-----------------------------------------------------------------------------
// Order bounds
//-----------------------------------------------------------------------------

// MinOrder is the smallest binomial tree order: B_0 is a single vertex.
const MinOrder = 0

// DefaultMaxOrder caps BinomialTree at 2^20 vertices unless WithMaxOrder says
// otherwise.
const DefaultMaxOrder = 20

// MaxOrderLimit is the largest value WithMaxOrder accepts. 2^30 vertices is
// already far past what core.Graph holds comfortably; the bound also keeps
// 1<<order representable on 32-bit platforms.
const MaxOrderLimit = 30

//-----------------------------------------------------------------------------
// Default Weights
//-----------------------------------------------------------------------------

// DefaultNodeWeight is the payload stored for tree nodes that neither
// WithNodeWeights nor WithNodeWeightFn cover.
const DefaultNodeWeight float64 = 0
