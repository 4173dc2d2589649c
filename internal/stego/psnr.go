package stego

import "math"

// perfectPSNR is what PSNR reports when two frames are pixel-identical
// (MSE == 0), where the textbook formula would divide by zero.
const perfectPSNR = 99.0

// QualityReport holds the diagnostic MSE/PSNR pair produced by Compare.
type QualityReport struct {
	MSE  float64
	PSNR float64
}

// Compare computes the mean squared error and PSNR between two
// same-dimension frames across all three colour channels. This is a
// diagnostic only — it plays no part in embed/extract correctness.
func Compare(a, b *Frame) (*QualityReport, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return nil, newErr(KindInternal, "frame dimensions differ: %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	}

	var sumSquared float64
	accA := AcquireAccessor(a)
	accB := AcquireAccessor(b)
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			ab, ag, ar := accA.GetPixel(x, y)
			bb, bg, br := accB.GetPixel(x, y)
			sumSquared += square(ab, bb) + square(ag, bg) + square(ar, br)
		}
	}
	accA.Release()
	accB.Release()

	totalSamples := float64(a.Width) * float64(a.Height) * 3
	mse := sumSquared / totalSamples

	psnr := perfectPSNR
	if mse != 0 {
		psnr = 10 * math.Log10((255*255)/mse)
	}

	return &QualityReport{MSE: mse, PSNR: psnr}, nil
}

func square(a, b byte) float64 {
	d := float64(a) - float64(b)
	return d * d
}
