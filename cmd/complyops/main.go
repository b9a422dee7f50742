// Package main provides the complyops CLI for GRC record keeping and
// compliance reporting.
package main

func main() {
	Execute()
}
