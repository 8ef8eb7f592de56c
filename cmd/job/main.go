package main

import "github.com/stashops/go-facility-recon/cmd/job/cmd"

func main() {
	cmd.Execute()
}
