package mrms

import "math/bits"

// ReverseBytes16 returns v with its two bytes in the opposite order.
func ReverseBytes16(v uint16) uint16 { return bits.ReverseBytes16(v) }

// ReverseBytes32 returns v with its four bytes in the opposite order.
func ReverseBytes32(v uint32) uint32 { return bits.ReverseBytes32(v) }

// ReverseBytes64 returns v with its eight bytes in the opposite order.
func ReverseBytes64(v uint64) uint64 { return bits.ReverseBytes64(v) }

// swapInt32 reverses the byte order of a signed 32-bit value.
func swapInt32(v int32) int32 { return int32(ReverseBytes32(uint32(v))) }

// swapInt16 reverses the byte order of a signed 16-bit value.
func swapInt16(v int16) int16 { return int16(ReverseBytes16(uint16(v))) }
