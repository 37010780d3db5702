//go:build tinygo && systick_vector

package cortexm

import "tickbase/core"

// Automatic dispatch: the SysTick exception vector goes straight to the
// shared tick handler. Enable with -tags systick_vector when no other
// component owns the vector; builds that multiplex the vector leave the tag
// off and invoke core.Interrupt from their own dispatcher instead.
//
//export SysTick_Handler
func sysTickHandler() {
	core.Interrupt()
}
