// Package sim runs the driver on a host against models of its hardware.
//
// The uninitialised RAM trick has no host equivalent, so the fast tier is a
// Capacitor whose cells survive a power gap shorter than Window and decay
// to a random non-zero pattern otherwise. Time is virtual: a boot with power
// held for 3 s and a 30 ms ramp step completes instantly and deterministically.
package sim
