package main

import "github.com/pascal3d/scenebridge/cmd/scenebridge/cmd"

func main() {
	cmd.Execute()
}
