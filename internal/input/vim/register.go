package vim

import (
	"strings"
	"sync"
)

// Register names.
const (
	// RegisterUnnamed is the default register (").
	RegisterUnnamed = '"'

	// RegisterLastYank is the yank register (0).
	RegisterLastYank = '0'
)

// Register holds one yanked row.
type Register struct {
	// Name is the register character.
	Name rune

	// Cells are the yanked cell values in column order.
	Cells []string

	// Row is the zero-based source row.
	Row int
}

// Text returns the cells joined by tabs, ready for pasting elsewhere.
func (r Register) Text() string {
	return strings.Join(r.Cells, "\t")
}

// RegisterStore manages the yank registers.
type RegisterStore struct {
	mu        sync.RWMutex
	registers map[rune]Register
}

// NewRegisterStore creates an empty register store.
func NewRegisterStore() *RegisterStore {
	return &RegisterStore{registers: make(map[rune]Register)}
}

// Get returns the register with the given name.
func (rs *RegisterStore) Get(name rune) (Register, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	reg, ok := rs.registers[name]
	return reg, ok
}

// SetYank stores a yanked row in both the unnamed and the yank register.
func (rs *RegisterStore) SetYank(row int, cells []string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	copied := append([]string(nil), cells...)
	rs.registers[RegisterUnnamed] = Register{Name: RegisterUnnamed, Cells: copied, Row: row}
	rs.registers[RegisterLastYank] = Register{Name: RegisterLastYank, Cells: copied, Row: row}
}

// Clear removes every register.
func (rs *RegisterStore) Clear() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	clear(rs.registers)
}
