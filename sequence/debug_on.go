//go:build seqdebug

package sequence

// debugChecks enables the sortedness assertions around Merge.
const debugChecks = true
