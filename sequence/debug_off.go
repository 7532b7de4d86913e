//go:build !seqdebug

package sequence

const debugChecks = false
