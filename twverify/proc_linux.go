//go:build linux

package twverify

import (
	"os/exec"
	"syscall"
)

// setParentDeathSignal arms the subprocess to receive SIGTERM when this
// process dies, so a crashed harness never leaks a JVM.
func setParentDeathSignal(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Pdeathsig: syscall.SIGTERM}
}
