// loopsub is a CLI utility for Loop subdivision of triangle meshes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "subdivide", "sub":
		err = cmdSubdivide(args)
	case "info":
		err = cmdInfo(args)
	case "preview":
		err = cmdPreview(args)
	case "gen":
		err = cmdGen(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`loopsub - Loop subdivision for triangle meshes

Usage:
  loopsub <command> [options]

Commands:
  subdivide [-n N] [-o out] <mesh>   Subdivide a mesh N times
  info <mesh>                        Show topology statistics
  preview [-o out.png] <mesh>        Render a wireframe PNG
  gen <shape> <out>                  Write a primitive mesh
                                     (triangle, quad, cube, tetra, octa, ico, grid)

Common options:
  -config <file>   Config file (default ./loopsub.yaml)
  -debug           Enable debug logging

Examples:
  loopsub gen cube cube.obj
  loopsub subdivide -n 3 cube.obj
  loopsub subdivide -n 2 -format stl -o smooth.stl bunny.obj
  loopsub preview -n 2 -width 1024 -height 768 cube.obj`)
}
