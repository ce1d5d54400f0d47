package rop

// ProgrammingError is the panic value raised when a Result is misused, e.g.
// Value on a failure. It is never carried in a failure channel.
type ProgrammingError struct {
	Op  string
	Msg string
}

func newProgrammingError(op, msg string) *ProgrammingError {
	return &ProgrammingError{Op: op, Msg: msg}
}

func (e *ProgrammingError) Error() string {
	return "rop: " + e.Op + " " + e.Msg
}
