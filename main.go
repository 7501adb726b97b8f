package main

import (
	"verilearn.io/infrastructure"
	"verilearn.io/infrastructure/env"
)

func init() {
	env.LoadEnv()
}

func main() {
	infrastructure.StartServer()
}
