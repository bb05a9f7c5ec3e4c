// Command inspect prints the model, view and projection matrices the
// pipeline computes for a scene. Useful when calibrating scene files or
// comparing against a reference implementation.
package main

import (
	"flag"
	"fmt"
	"os"

	"softrender/internal/clipspace"
	"softrender/internal/mathutil"
	"softrender/internal/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Path to scene JSON (default: built-in demo scene)")
	aspect := flag.Float64("aspect", 1, "Aspect ratio for the projection matrix")
	flag.Parse()

	var sc scene.Scene
	if *scenePath != "" {
		var err error
		sc, err = scene.Load(*scenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	} else {
		sc = scene.Default()
	}

	eye, look, up := sc.Camera.Pose()
	view := clipspace.ViewMatrix(eye, look, up)
	proj := clipspace.Projection(sc.Camera.Camera(), *aspect)

	fmt.Printf("camera eye=%v look=%v up=%v\n", eye, look, up)
	printMat("view", view)
	printMat("projection", proj)
	printMat("projection*view", mathutil.Mat4Mul(proj, view))

	for i := range sc.Objects {
		o := &sc.Objects[i]
		s, r, p := o.TransformParams()
		fmt.Printf("\nobject %d (%s) scale=%v rotation=%v position=%v\n", i, o.Mesh, s, r, p)
		printMat("model", clipspace.ModelMatrix(s, r, p))
	}
}

func printMat(name string, m mathutil.Mat4) {
	fmt.Printf("%s:\n", name)
	for r := 0; r < 4; r++ {
		fmt.Printf("  [%10.5f %10.5f %10.5f %10.5f]\n",
			m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
	}
}
