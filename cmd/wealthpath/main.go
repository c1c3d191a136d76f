// Command wealthpath projects the growth of a savings plan under taxable,
// traditional and roth account rules.
package main

func main() {
	Execute()
}
