package core

import (
	"math"

	"github.com/huangsam/chakra/core/algo"
	"github.com/huangsam/chakra/schema"
)

// Signal constants.
const (
	riseRate        = 0.3 // E2 envelope 1 - e^(-0.3t)
	pulseCount      = 4   // E3 Gaussian bumps at 1, 4, 7, 10
	pulseSpacing    = 3.0
	pulseSigma      = 0.2
	heartOffset     = 0.1 // E4 divisor t + 0.1
	convolutionBeta = 0.5 // E7 kernel decay
)

// heartDivisor is the denominator applied to the running energy of E4.
//
//	d(t) = 1        if t == 0
//	d(t) = t + 0.1  otherwise
//
// The singular point is exactly t == 0; every other sample uses the offset form.
// Domains that start below zero can pass close to t = -0.1.
func heartDivisor(t float64) float64 {
	if t == 0 {
		return 1
	}
	return t + heartOffset
}

// signalRules declares every signal with its dependencies, in display order.
func signalRules() []signalRule {
	return []signalRule{
		{
			name: schema.RootSignal,
			eval: func(env *evalEnv) []float64 {
				s := algo.Sine(env.t, 0.5)
				return algo.Mul(s, algo.Abs(s))
			},
		},
		{
			name: schema.SacralSignal,
			eval: func(env *evalEnv) []float64 {
				rise := algo.Map(env.t, func(v float64) float64 { return 1 - math.Exp(-riseRate*v) })
				return algo.Mul(rise, algo.Sine(env.t, 1.0), algo.AbsSine(env.t, 0.7))
			},
		},
		{
			name: schema.SolarSignal,
			eval: func(env *evalEnv) []float64 {
				pulses := make([]float64, len(env.t))
				for n := range pulseCount {
					pulses = algo.Add(pulses, algo.GaussianPulse(env.t, 1+pulseSpacing*float64(n), pulseSigma))
				}
				return algo.Mul(pulses, algo.AbsSine(env.t, 1.0))
			},
		},
		{
			name: schema.HeartSignal,
			deps: []schema.SignalName{schema.SacralSignal, schema.SolarSignal},
			eval: func(env *evalEnv) []float64 {
				energy := algo.CumSum(algo.Add(env.dep(schema.SacralSignal), env.dep(schema.SolarSignal)), env.dt)
				out := make([]float64, len(energy))
				for i, e := range energy {
					out[i] = e / heartDivisor(env.t[i])
				}
				return algo.Mul(out, algo.AbsSine(env.t, 1.2))
			},
		},
		{
			name: schema.ThroatSignal,
			deps: []schema.SignalName{schema.HeartSignal},
			eval: func(env *evalEnv) []float64 {
				return algo.Mul(algo.Gradient(env.dep(schema.HeartSignal), env.dt), algo.AbsSine(env.t, 1.5))
			},
		},
		{
			name: schema.ThirdEyeSignal,
			deps: []schema.SignalName{schema.SacralSignal, schema.SolarSignal},
			eval: func(env *evalEnv) []float64 {
				return algo.Mul(env.dep(schema.SacralSignal), env.dep(schema.SolarSignal), algo.AbsSine(env.t, 0.3))
			},
		},
		{
			name: schema.CrownSignal,
			deps: []schema.SignalName{schema.SacralSignal, schema.SolarSignal},
			eval: func(env *evalEnv) []float64 {
				coupled := algo.Mul(env.dep(schema.SacralSignal), env.dep(schema.SolarSignal))
				// O(n^2) dense kernel, see algo.CausalKernel
				convolved := algo.CausalConvolve(env.t, coupled, convolutionBeta, env.dt)
				return algo.Mul(convolved, algo.AbsSine(env.t, 0.1))
			},
		},
	}
}
