package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/gcfg.v1"

	"github.com/hopi-project/scatter/expt"
	"github.com/hopi-project/scatter/field"
	"github.com/hopi-project/scatter/io"
	"github.com/hopi-project/scatter/points"
	"github.com/hopi-project/scatter/rbf"
)

func main() {
	var (
		configFile    string
		exampleConfig bool
	)

	flag.StringVar(
		&configFile, "Config", "",
		"Configuration file for the [Experiment] mode. Without it the "+
			"original 10,000-point thin-plate-spline study is run.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleExperimentFile)
		return
	}

	wrap := io.DefaultExperimentWrapper()
	if configFile != "" {
		if err := gcfg.ReadFileInto(wrap, configFile); err != nil {
			log.Fatal(err.Error())
		}
	}
	con := &wrap.Experiment

	if !con.ValidSourcePoints() {
		log.Fatal("Invalid 'SourcePoints' value.")
	} else if !con.ValidTargetPoints() {
		log.Fatal("Invalid 'TargetPoints' value.")
	} else if !con.ValidDims() {
		log.Fatal("Invalid 'Dims' value.")
	} else if !con.ValidField() {
		log.Fatal("'Field' must be one of [ Bump | Affine ].")
	} else if !con.ValidSharpness() {
		log.Fatal("Invalid 'Sharpness' value.")
	} else if !con.ValidKernel() {
		log.Fatalf("Unrecognized 'Kernel' value '%s'.", con.Kernel)
	} else if !con.ValidNeighbors() {
		log.Fatal("Invalid 'Neighbors' value.")
	} else if !con.ValidErrorFloor() {
		log.Fatal("Invalid 'ErrorFloor' value.")
	}

	params, err := experimentParams(con)
	if err != nil {
		log.Fatal(err.Error())
	}

	res, err := expt.Run(params)
	if err != nil {
		log.Fatal(err.Error())
	}
	res.Print(os.Stdout)
}

// experimentParams converts a validated config into experiment parameters,
// reading point clouds from table files when the config asks for them.
func experimentParams(con *io.ExperimentConfig) (*expt.Params, error) {
	kern, err := rbf.ParseKernel(con.Kernel)
	if err != nil {
		return nil, err
	}

	var f field.Field
	switch con.Field {
	case "Bump":
		f = &field.Bump{Sharpness: con.Sharpness}
	case "Affine":
		coeffs := make([]float64, con.Dims)
		for d := range coeffs {
			coeffs[d] = 1
		}
		f = &field.Affine{Const: 1, Coeffs: coeffs}
	}

	seed := con.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	params := &expt.Params{
		SourcePoints: con.SourcePoints,
		TargetPoints: con.TargetPoints,
		Dims:         con.Dims,
		Seed:         seed,
		Field:        f,
		Engine: expt.RBFEngine(rbf.Config{
			Kernel:    kern,
			Epsilon:   con.Epsilon,
			Neighbors: con.Neighbors,
			Degree:    con.Degree,
		}),
		ErrorFloor: con.ErrorFloor,
	}

	coordCols := make([]int, con.Dims)
	for d := range coordCols {
		coordCols[d] = d
	}
	if con.ValidSourceFile() {
		params.Source, err = points.FromTable(con.SourceFile, coordCols)
		if err != nil {
			return nil, err
		}
	}
	if con.ValidTargetFile() {
		params.Target, err = points.FromTable(con.TargetFile, coordCols)
		if err != nil {
			return nil, err
		}
	}

	return params, nil
}
