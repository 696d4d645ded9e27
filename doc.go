/*
Package carve is a content aware image resize library built on seam carving:
it computes a per-pixel dual-gradient energy map, searches the implicit
graph over the pixel grid for the vertical path of minimum total energy and
removes that path, one pixel per row, until the requested size is reached.
Horizontal resizing is obtained by rotating the image 90 degrees and
reusing the vertical path.

The package provides a command line interface, supporting various flags for
the different rescaling operations. To check the supported commands type:

	$ carve --help

In case you wish to integrate the API in a self constructed environment
here is a simple example:

	package main

	import (
		"fmt"

		"github.com/teodorv/carve"
	)

	func main() {
		p := &carve.Processor{
			NewWidth:  800,
			NewHeight: 600,
		}

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error rescaling image: %s", err.Error())
		}
	}
*/
package carve
