//go:build !windows

package util

func IsRunFromGUI() bool {
	// On non-Windows, always return false.
	// We only use this to spawn the hidmux server without going through hoops...
	// On Linux you can use nohup, systemd, and bazillion other ways...
	return false
}

func HideConsoleWindow() {
	// No-op on non-Windows platforms
}
