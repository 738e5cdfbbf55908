//go:build !linux && !darwin

package cli

func isTerminalFd(int) bool { return false }
