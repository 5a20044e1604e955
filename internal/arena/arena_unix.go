//go:build unix

package arena

import (
	"errors"

	"golang.org/x/sys/unix"
)

// reserve maps an anonymous region of exactly limit bytes. The mapping is
// private and zero-filled; the arena break moves inside it without further
// system calls.
func reserve(limit int) ([]byte, func() error, error) {
	mem, err := unix.Mmap(-1, 0, limit,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	release := func() error {
		if mem == nil {
			return nil
		}
		err := unix.Munmap(mem)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return mem, release, nil
}
