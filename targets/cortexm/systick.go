//go:build tinygo

package cortexm

import (
	"runtime/volatile"
	"unsafe"
)

// SysTick register block in the System Control Space.
type sysTickRegs struct {
	CSR   volatile.Register32
	RVR   volatile.Register32
	CVR   volatile.Register32
	CALIB volatile.Register32
}

const sysTickBase uintptr = 0xE000E010

// CSR bits
const (
	csrEnable    = 0x1 << 0  // counter enable
	csrTickInt   = 0x1 << 1  // underflow exception enable
	csrClkSource = 0x1 << 2  // 1 = core clock, 0 = external reference
	csrCountFlag = 0x1 << 16 // set on underflow, cleared by reading CSR
)

// reloadMask is the usable width of RVR and CVR.
const reloadMask = 0x00FFFFFF

// SysTick implements core.CountdownTimer over the hardware registers.
// There is one SysTick per core; treat the value from Timer as a singleton.
type SysTick struct {
	regs *sysTickRegs
}

// Timer returns the SysTick peripheral handle.
func Timer() *SysTick {
	return &SysTick{regs: (*sysTickRegs)(unsafe.Pointer(sysTickBase))}
}

func (s *SysTick) SetCoreClockSource() {
	s.regs.CSR.SetBits(csrClkSource)
}

func (s *SysTick) SetReload(value uint32) {
	s.regs.RVR.Set(value & reloadMask)
}

func (s *SysTick) Reload() uint32 {
	return s.regs.RVR.Get() & reloadMask
}

func (s *SysTick) Value() uint32 {
	return s.regs.CVR.Get() & reloadMask
}

func (s *SysTick) ClearValue() {
	// Any write clears CVR to zero and drops COUNTFLAG.
	s.regs.CVR.Set(0)
}

func (s *SysTick) CheckWrapped() bool {
	// Reading CSR clears COUNTFLAG as a side effect.
	return s.regs.CSR.Get()&csrCountFlag != 0
}

func (s *SysTick) EnableInterrupt() {
	s.regs.CSR.SetBits(csrTickInt)
}

func (s *SysTick) DisableInterrupt() {
	s.regs.CSR.ClearBits(csrTickInt)
}

func (s *SysTick) StartCounter() {
	s.regs.CSR.SetBits(csrEnable)
}

func (s *SysTick) StopCounter() {
	s.regs.CSR.ClearBits(csrEnable)
}

func (s *SysTick) MaxReload() uint32 {
	return reloadMask
}
