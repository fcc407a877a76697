// Package peephole rewrites an emitted instruction stream in place, removing
// profitless adjacent instruction pairs. It is the only stage allowed to
// delete instructions or renumber addresses.
package peephole

import "stackc/pkg/asm"

// Optimize scans prog's stream left to right and deletes every PUSH
// immediately followed by POP, re-examining the deletion point so chained
// redundancy collapses too. Instruction addresses are
// recomputed to the new indexes, and label-table entries are remapped so
// jump targets stay aligned with the renumbered stream. Returns the number
// of instructions removed.
func Optimize(prog *asm.Program) int {
	removed := 0
	code := prog.Code.Instrs
	i := 0
	for i+1 < len(code) {
		if code[i].Op == asm.OpPush && code[i+1].Op == asm.OpPop {
			shiftLabels(prog.Labels, i)
			code = append(code[:i], code[i+2:]...)
			removed += 2
			// re-examine around the deletion point: the instructions now
			// adjacent may form a new pair (PUSH PUSH POP POP collapses
			// completely)
			if i > 0 {
				i--
			}
			continue
		}
		i++
	}
	for idx := range code {
		code[idx].Addr = idx
	}
	prog.Code.Instrs = code
	return removed
}

// shiftLabels remaps label addresses around a deletion of the pair at
// (deleted, deleted+1): labels pointing into or past the pair move down to
// the instruction that now occupies the deletion point.
func shiftLabels(labels *asm.LabelTable, deleted int) {
	for _, entry := range labels.Entries() {
		switch {
		case entry.Addr > deleted+1:
			labels.Rebind(entry.Name, entry.Addr-2)
		case entry.Addr >= deleted:
			labels.Rebind(entry.Name, deleted)
		}
	}
}
