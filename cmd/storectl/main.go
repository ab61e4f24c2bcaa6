package main

import "github.com/URTS404/UMKM-AWP-UAS/internal/cmd"

func main() {
	cmd.Execute()
}
