package main

import "detailcrm/command"

func main() {
	command.Execute()
}
