// Package history provides bounded undo/redo over reversible commands.
package history

// Command is one reversible operation. Do applies the change, Undo reverts
// it. Both closures capture whatever state they need; the manager never
// inspects them.
type Command struct {
	Name string
	Do   func()
	Undo func()
}

// defaultDepth bounds the undo stack; the oldest entries fall off.
const defaultDepth = 50

// Manager keeps two bounded stacks of executed commands. It is not safe for
// concurrent use; callers serialize through the application state lock.
type Manager struct {
	depth int
	undo  []Command
	redo  []Command
}

// NewManager creates a manager with the given stack depth, or the default
// depth when n <= 0.
func NewManager(n int) *Manager {
	if n <= 0 {
		n = defaultDepth
	}
	return &Manager{depth: n}
}

// Execute runs the command and records it. Any redoable commands are
// discarded: executing after undo forks the history.
func (m *Manager) Execute(cmd Command) {
	cmd.Do()
	m.push(cmd)
	m.redo = m.redo[:0]
}

// Record registers an already-applied command without running Do. Used when
// the change happened incrementally (such as a drag) and only the net effect
// is undoable.
func (m *Manager) Record(cmd Command) {
	m.push(cmd)
	m.redo = m.redo[:0]
}

func (m *Manager) push(cmd Command) {
	m.undo = append(m.undo, cmd)
	if len(m.undo) > m.depth {
		copy(m.undo, m.undo[1:])
		m.undo = m.undo[:m.depth]
	}
}

// Undo reverts the most recent command. Returns false when there is nothing
// to undo.
func (m *Manager) Undo() bool {
	if len(m.undo) == 0 {
		return false
	}
	cmd := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	cmd.Undo()
	m.redo = append(m.redo, cmd)
	return true
}

// Redo re-applies the most recently undone command. Returns false when there
// is nothing to redo.
func (m *Manager) Redo() bool {
	if len(m.redo) == 0 {
		return false
	}
	cmd := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	cmd.Do()
	m.undo = append(m.undo, cmd)
	return true
}

// CanUndo reports whether an undoable command exists.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether a redoable command exists.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// UndoDescription names the command Undo would revert, or "".
func (m *Manager) UndoDescription() string {
	if len(m.undo) == 0 {
		return ""
	}
	return m.undo[len(m.undo)-1].Name
}

// RedoDescription names the command Redo would re-apply, or "".
func (m *Manager) RedoDescription() string {
	if len(m.redo) == 0 {
		return ""
	}
	return m.redo[len(m.redo)-1].Name
}

// Clear drops both stacks. Called when the active workspace changes so
// history never crosses workspaces.
func (m *Manager) Clear() {
	m.undo = m.undo[:0]
	m.redo = m.redo[:0]
}
