package main

import "github.com/VoxDroid/mealr/cmd"

func main() {
	cmd.Execute()
}
