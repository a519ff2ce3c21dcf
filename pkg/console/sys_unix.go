//go:build unix

package console

import (
	"errors"

	"golang.org/x/sys/unix"
)

func sysWrite(fd int, p []byte) (int, error) {
	n, err := unix.Write(fd, p)
	if n < 0 {
		n = 0
	}
	if errors.Is(err, unix.EINTR) {
		return n, errInterrupted
	}
	return n, err
}
