package main

import "lbc/internal/app/server"

func main() {
	server.Run()
}
