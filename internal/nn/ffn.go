package nn

// Constants of the illustrative feed-forward sublayer.
const (
	ffnW1 = 1.5
	ffnB1 = -0.3
	ffnW2 = 0.8
	ffnB2 = 0.1

	normMeanScale = 0.9
	normScale     = 0.3
	normShift     = 0.1
)

// FFNResult holds every stage of the toy feed-forward pipeline.
type FFNResult struct {
	Input    float64
	Linear1  float64 // x*1.5 - 0.3
	ReLU     float64 // max(0, Linear1)
	Linear2  float64 // ReLU*0.8 + 0.1
	Residual float64 // Linear2 + x
	Normed   float64 // (Residual - Residual*0.9)/0.3 + 0.1
}

// FeedForwardResidual runs a scalar through linear → ReLU → linear, adds the
// residual connection and applies a simplified normalization.
//
// Architecture:
//
//	FFN(x)    = ReLU(x*1.5 - 0.3)*0.8 + 0.1
//	Residual  = FFN(x) + x
//	Normed    = (Residual - 0.9*Residual) / 0.3 + 0.1
//
// Normed is a teaching stand-in for "Add & Norm". It treats the scalar as its
// own mean and uses fixed constants; it is not a layer normalization (see
// LayerNorm for that). The constants are part of the output contract.
func FeedForwardResidual(x float64) FFNResult {
	linear1 := x*ffnW1 + ffnB1
	relu := ReLU(linear1)
	linear2 := relu*ffnW2 + ffnB2
	residual := linear2 + x

	mean := residual
	normed := (residual-mean*normMeanScale)/normScale + normShift

	return FFNResult{
		Input:    x,
		Linear1:  linear1,
		ReLU:     relu,
		Linear2:  linear2,
		Residual: residual,
		Normed:   normed,
	}
}
