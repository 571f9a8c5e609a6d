// entry point to app :)
package main

func main() {
	Execute()
}
