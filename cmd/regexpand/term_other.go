//go:build !unix

package main

func isTerminal(uintptr) bool {
	return false
}
