// Package cortexm binds the timebase core to the Cortex-M SysTick
// peripheral: a 24-bit countdown register that reloads from RVR on
// underflow and sets the read-to-clear COUNTFLAG bit in CSR.
//
// The hardware binding only builds under TinyGo. Two dispatch modes are
// available: build with -tags systick_vector to bind the SysTick exception
// vector directly, or leave the tag off and call core.Interrupt from an
// external vector dispatcher.
package cortexm
