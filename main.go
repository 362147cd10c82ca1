/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/castsearch/transcripts-api/cmd"

func main() {
	cmd.Execute()
}
