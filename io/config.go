package io

import (
	"github.com/hopi-project/scatter/rbf"
)

const (
	ExampleExperimentFile = `[Experiment]

#######################
# Optional Parameters #
#######################

# Number of source points the interpolant is fit from and number of target
# points it is evaluated at. Both default to the 10,000 of the original
# study.
SourcePoints = 10000
TargetPoints = 10000

# Dimension of the point clouds.
Dims = 3

# Seed for the random point clouds. 0 seeds from the wall clock, so two runs
# with Seed = 0 draw different clouds.
Seed = 0

# Field being interpolated. Must be one of:
# [ Bump | Affine ]
# Bump is 1 + sum(p) * exp(-Sharpness * |p|^2). Affine is 1 + sum(p), which
# a degree-1 interpolant reproduces exactly and is mainly useful as a
# correctness check.
Field = Bump
Sharpness = 6

# Radial basis kernel. Must be one of:
# [ ThinPlateSpline | Linear | Cubic | Quintic | Multiquadric | Gaussian ]
Kernel = ThinPlateSpline

# Shape parameter. Required (positive) for Multiquadric and Gaussian,
# ignored by the other kernels.
# Epsilon = 1

# Number of nearest source points used in the local solve at each target.
# Set to 0 to solve one dense system over all sources, which is exact but
# cubic in SourcePoints.
Neighbors = 100

# Degree of the appended polynomial term. 1 means an affine tail. Each
# kernel has a minimum degree; ThinPlateSpline requires at least 1.
Degree = 1

# When positive, the denominator of the relative error is clamped to at
# least this value. The default 0 keeps the naive |interp - true| / true
# metric, which blows up near roots of the field.
# ErrorFloor = 1e-8

# Instead of sampling random clouds, read them from whitespace-separated
# ASCII tables whose first Dims columns are coordinates.
# SourceFile = path/to/source.txt
# TargetFile = path/to/target.txt`
)

type ExperimentConfig struct {
	SourcePoints, TargetPoints int
	Dims int
	Seed int64

	Field string
	Sharpness float64

	Kernel string
	Epsilon float64
	Neighbors, Degree int

	ErrorFloor float64

	SourceFile, TargetFile string
}

type ExperimentWrapper struct {
	Experiment ExperimentConfig
}

func DefaultExperimentWrapper() *ExperimentWrapper {
	con := ExperimentConfig{
		SourcePoints: 10000,
		TargetPoints: 10000,
		Dims: 3,
		Field: "Bump",
		Sharpness: 6,
		Kernel: "ThinPlateSpline",
		Neighbors: 100,
		Degree: 1,
	}
	return &ExperimentWrapper{con}
}

func (con *ExperimentConfig) ValidSourcePoints() bool {
	return con.SourcePoints > 0
}
func (con *ExperimentConfig) ValidTargetPoints() bool {
	return con.TargetPoints > 0
}
func (con *ExperimentConfig) ValidDims() bool {
	return con.Dims > 0
}
func (con *ExperimentConfig) ValidField() bool {
	return con.Field == "Bump" || con.Field == "Affine"
}
func (con *ExperimentConfig) ValidSharpness() bool {
	return con.Sharpness > 0
}
func (con *ExperimentConfig) ValidKernel() bool {
	_, err := rbf.ParseKernel(con.Kernel)
	return err == nil
}
func (con *ExperimentConfig) ValidNeighbors() bool {
	return con.Neighbors >= 0
}
func (con *ExperimentConfig) ValidErrorFloor() bool {
	return con.ErrorFloor >= 0
}
func (con *ExperimentConfig) ValidSourceFile() bool {
	return con.SourceFile != ""
}
func (con *ExperimentConfig) ValidTargetFile() bool {
	return con.TargetFile != ""
}
