//go:build !windows

package diskutils

func platformRoot() string {
	return "/"
}
