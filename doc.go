// Package fracgo renders 2D escape-time fractal images (Mandelbrot,
// Julia) to a pixel buffer.
//
// The package ties together a parallel worker-pool scheduler, an
// adaptive quadtree-style evaluator that decides per-tile whether to
// compute escape-iteration values pointwise or interpolate bilinearly
// from corner samples, and a render pipeline that maps the resulting
// value grid to colour with optional blur or oversampling
// anti-aliasing.
//
// Basic usage:
//
//	desc, _ := fracgo.NewDescriptor(fracgo.Mandelbrot, 0, fracgo.RealRect{X1: -2, Y1: -1.2, X2: 0.5, Y2: 1.2}, 4, 256)
//	grad, _ := fracgo.NewGradient(stops, 1024)
//	img, err := fracgo.Render(&fracgo.Options{
//		Width: 800, Height: 600,
//		Descriptor: desc,
//		Gradient:   grad,
//		Multiplier: 1,
//	})
package fracgo
