package io

import (
	"testing"

	"gopkg.in/gcfg.v1"
)

func TestExampleExperimentFileParses(t *testing.T) {
	wrap := DefaultExperimentWrapper()
	if err := gcfg.ReadStringInto(wrap, ExampleExperimentFile); err != nil {
		t.Fatal(err.Error())
	}

	con := &wrap.Experiment
	if con.SourcePoints != 10000 || con.TargetPoints != 10000 {
		t.Errorf("Parsed point counts (%d, %d), expected (10000, 10000).",
			con.SourcePoints, con.TargetPoints)
	}
	if con.Dims != 3 {
		t.Errorf("Parsed Dims = %d, expected 3.", con.Dims)
	}
	if con.Kernel != "ThinPlateSpline" {
		t.Errorf("Parsed Kernel = '%s'.", con.Kernel)
	}
	if con.Neighbors != 100 || con.Degree != 1 {
		t.Errorf("Parsed (Neighbors, Degree) = (%d, %d), expected (100, 1).",
			con.Neighbors, con.Degree)
	}
}

func TestExampleExperimentFileValid(t *testing.T) {
	wrap := DefaultExperimentWrapper()
	if err := gcfg.ReadStringInto(wrap, ExampleExperimentFile); err != nil {
		t.Fatal(err.Error())
	}
	con := &wrap.Experiment

	if !con.ValidSourcePoints() || !con.ValidTargetPoints() {
		t.Error("Example point counts fail validation.")
	}
	if !con.ValidDims() || !con.ValidField() || !con.ValidSharpness() {
		t.Error("Example field settings fail validation.")
	}
	if !con.ValidKernel() || !con.ValidNeighbors() {
		t.Error("Example interpolation settings fail validation.")
	}
	if con.ValidSourceFile() || con.ValidTargetFile() {
		t.Error("Example config unexpectedly sets point cloud files.")
	}
}

func TestDefaultsValid(t *testing.T) {
	con := &DefaultExperimentWrapper().Experiment

	if !con.ValidSourcePoints() || !con.ValidTargetPoints() ||
		!con.ValidDims() || !con.ValidField() || !con.ValidSharpness() ||
		!con.ValidKernel() || !con.ValidNeighbors() ||
		!con.ValidErrorFloor() {

		t.Error("Default configuration fails validation.")
	}
}

func TestInvalidKernelName(t *testing.T) {
	con := &DefaultExperimentWrapper().Experiment
	con.Kernel = "thin_plate_spline"
	if con.ValidKernel() {
		t.Error("ValidKernel accepted an unrecognized name.")
	}
}
