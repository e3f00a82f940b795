// dsctl - Oracle Data Safe target and connector administration
package main

func main() {
	Execute()
}
