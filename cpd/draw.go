package cpd

import "math/rand"

// DrawCategorical draws one outcome from c and returns its 1-based level.
// c is assumed valid (see Categorical.Validate). Rounding slack in the
// cumulative sum falls to the last level with non-zero weight.
func DrawCategorical(rng *rand.Rand, c Categorical) int {
	u := rng.Float64()
	acc := 0.0
	last := 0
	for i, p := range c {
		if p == 0 {
			continue
		}
		last = i
		acc += p
		if u < acc {
			return i + 1
		}
	}

	return last + 1
}

// DrawNormal draws from Normal(mean, sigma²). sigma == 0 returns mean exactly
// but still consumes one variate so stream alignment does not depend on it.
func DrawNormal(rng *rand.Rand, mean, sigma float64) float64 {
	return mean + sigma*rng.NormFloat64()
}

// DrawRegression draws a linear-Gaussian value: an intercept from
// Normal(0, interceptSigma²), then Normal(predictor + intercept, sigma²).
func DrawRegression(rng *rand.Rand, predictor, interceptSigma, sigma float64) float64 {
	intercept := DrawNormal(rng, 0, interceptSigma)

	return DrawNormal(rng, predictor+intercept, sigma)
}
