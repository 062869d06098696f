package atmosphere

import "math"

// RayleighPhase evaluates the Rayleigh phase function for scattering angle
// cosine nu, normalized to integrate to 1 over the sphere
func RayleighPhase(nu float64) float64 {
	k := 3.0 / (16.0 * math.Pi)
	return k * (1.0 + nu*nu)
}

// MiePhase evaluates the Cornette-Shanks aerosol phase function with
// asymmetry parameter g for scattering angle cosine nu
func MiePhase(g, nu float64) float64 {
	k := 3.0 / (8.0 * math.Pi) * (1.0 - g*g) / (2.0 + g*g)
	return k * (1.0 + nu*nu) / math.Pow(1.0+g*g-2.0*g*nu, 1.5)
}
