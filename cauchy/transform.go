package cauchy

// transform draws two independent standard-normal deviates from src and maps
// them to one Cauchy(x0, gamma) variate via the ratio-of-normals identity.
// Each call advances the source by exactly two normal draws. A zero n2
// follows IEEE-754 division (±Inf, or NaN for 0/0) — accepted behavior.
func transform(src func() float64, x0, gamma float64) float64 {
	n1 := src()
	n2 := src()

	return x0 + gamma*(n1/n2)
}
