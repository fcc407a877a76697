package asm

import "fmt"

// VarTable maps variable names to stable, unique, non-negative addresses.
// Addresses are handed out in declaration order and never reused within one
// generation run.
type VarTable struct {
	addrs map[string]int
	names []string
}

// NewVarTable creates an empty variable table.
func NewVarTable() *VarTable {
	return &VarTable{addrs: make(map[string]int)}
}

// Assign returns the address for name, allocating the next free address on
// first sight.
func (t *VarTable) Assign(name string) int {
	if addr, ok := t.addrs[name]; ok {
		return addr
	}
	addr := len(t.names)
	t.addrs[name] = addr
	t.names = append(t.names, name)
	return addr
}

// Lookup returns the address for name, if assigned.
func (t *VarTable) Lookup(name string) (int, bool) {
	addr, ok := t.addrs[name]
	return addr, ok
}

// Names returns the variable names in address order.
func (t *VarTable) Names() []string {
	return t.names
}

// Len returns the number of assigned variables.
func (t *VarTable) Len() int {
	return len(t.names)
}

// LabelTable maps synthesized label names to instruction addresses. Names
// are unique per generation run; binding an existing name is a programming
// error.
type LabelTable struct {
	addrs map[string]int
	names []string
}

// Label is one table entry.
type Label struct {
	Name string
	Addr int
}

// NewLabelTable creates an empty label table.
func NewLabelTable() *LabelTable {
	return &LabelTable{addrs: make(map[string]int)}
}

// Bind records name as designating addr. It panics on a duplicate name:
// label names carry a monotonic counter, so a collision means the counter
// was not threaded correctly.
func (t *LabelTable) Bind(name string, addr int) {
	if _, exists := t.addrs[name]; exists {
		panic(fmt.Sprintf("label %q bound twice", name))
	}
	t.addrs[name] = addr
	t.names = append(t.names, name)
}

// Rebind updates the address of an existing label. Used by the peephole
// pass when deletions shift addresses.
func (t *LabelTable) Rebind(name string, addr int) {
	if _, exists := t.addrs[name]; !exists {
		panic(fmt.Sprintf("rebind of unknown label %q", name))
	}
	t.addrs[name] = addr
}

// Resolve returns the address name designates.
func (t *LabelTable) Resolve(name string) (int, bool) {
	addr, ok := t.addrs[name]
	return addr, ok
}

// Entries returns the labels in binding order.
func (t *LabelTable) Entries() []Label {
	out := make([]Label, len(t.names))
	for i, name := range t.names {
		out[i] = Label{Name: name, Addr: t.addrs[name]}
	}
	return out
}

// Len returns the number of bound labels.
func (t *LabelTable) Len() int {
	return len(t.names)
}
