// Package main provides the pizzeria CLI: order pizzas from a menu and watch
// them being prepared step by step.
package main

func main() {
	Execute()
}
