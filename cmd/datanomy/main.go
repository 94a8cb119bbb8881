package main

import "github.com/datanomy/datanomy/internal/cmd"

func main() {
	cmd.Execute()
}
