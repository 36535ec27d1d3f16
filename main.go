package main

import "networth-ledger/cmd"

func main() {
	cmd.Execute()
}
