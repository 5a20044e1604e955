//go:build !unix

package arena

// reserve allocates the full region from the Go heap on platforms without an
// anonymous-mapping backend. The contract is identical: the slice never moves,
// so offsets stay valid as the break advances.
func reserve(limit int) ([]byte, func() error, error) {
	mem := make([]byte, limit)
	return mem, func() error { return nil }, nil
}
