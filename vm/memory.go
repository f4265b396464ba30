package vm

import "fmt"

// Memory is a flat, byte-addressed, little-endian, fixed-capacity
// buffer. Unlike a segmented MMU it has no regions or permissions: any
// address in [0, len(bytes)) is readable and writable.
type Memory struct {
	bytes []byte
}

// NewMemory allocates a zero-filled buffer of the given capacity.
func NewMemory(capacity int) *Memory {
	return &Memory{bytes: make([]byte, capacity)}
}

// Len reports the memory's total capacity in bytes.
func (m *Memory) Len() int {
	return len(m.bytes)
}

func (m *Memory) bounds(address uint32, size int) error {
	end := uint64(address) + uint64(size)
	if end > uint64(len(m.bytes)) {
		return fmt.Errorf("address 0x%08X (+%d) exceeds memory capacity %d", address, size, len(m.bytes))
	}
	return nil
}

// LoadBytes copies src into memory starting at start. It fails with a
// MemoryError if the slice would exceed the configured capacity.
func (m *Memory) LoadBytes(start uint32, src []byte) error {
	if err := m.bounds(start, len(src)); err != nil {
		return newTrap(KindMemoryError, start, err.Error())
	}
	copy(m.bytes[start:], src)
	return nil
}

// ReadByte reads a single byte.
func (m *Memory) ReadByte(address uint32) (byte, error) {
	if err := m.bounds(address, 1); err != nil {
		return 0, newTrap(KindMemoryError, address, err.Error())
	}
	return m.bytes[address], nil
}

// WriteByte writes a single byte.
func (m *Memory) WriteByte(address uint32, v byte) error {
	if err := m.bounds(address, 1); err != nil {
		return newTrap(KindMemoryError, address, err.Error())
	}
	m.bytes[address] = v
	return nil
}

// ReadWord reads four little-endian bytes. No alignment check is
// performed here, nor at instruction fetch; the SW and JR handlers check
// alignment themselves.
func (m *Memory) ReadWord(address uint32) (uint32, error) {
	if err := m.bounds(address, 4); err != nil {
		return 0, newTrap(KindMemoryError, address, err.Error())
	}
	b := m.bytes[address : address+4]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

// WriteWord writes four little-endian bytes.
func (m *Memory) WriteWord(address uint32, v uint32) error {
	if err := m.bounds(address, 4); err != nil {
		return newTrap(KindMemoryError, address, err.Error())
	}
	b := m.bytes[address : address+4]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	return nil
}
