package main

import "inges/engine"

func main() {
	engine.Execute()
}
