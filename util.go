package main

import "gonum.org/v1/gonum/spatial/r2"

func r2Vec(x, y float64) r2.Vec {
	return r2.Vec{X: x, Y: y}
}
