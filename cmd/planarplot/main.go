// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command planarplot ticks a scene and renders each frame's generalized
// coordinate trajectory, both as a PNG (via gosl/plt) and as an
// interactive HTML line chart (via go-echarts/v2).
package main

import (
	"bytes"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/planarfem/solver"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	scenefile, fnkey := io.ArgToFilename(0, "scene", ".json", true)
	nsteps := io.ArgToInt(1, 200)
	dt := io.ArgToFloat(2, 0.01)
	outdir := io.ArgToString(3, "/tmp")

	io.Pf("\n%s\n", io.ArgsTable(
		"scene file", "scenefile", scenefile,
		"number of ticks", "nsteps", nsteps,
		"time step", "dt", dt,
		"output directory", "outdir", outdir,
	))

	if err := run(scenefile, fnkey, nsteps, dt, outdir); err != nil {
		chk.Panic("%v", err)
	}
}

func run(scenefile, fnkey string, nsteps int, dt float64, outdir string) error {
	b, err := utl.ReadFile(scenefile)
	if err != nil {
		return chk.Err("cannot read scene file %q: %v", scenefile, err)
	}
	s, err := solver.Create(string(b))
	if err != nil {
		return chk.Err("cannot create solver: %v", err)
	}

	n := s.N()
	state := s.InitialState()
	extForces := make([]float64, n)

	times := make([]float64, nsteps+1)
	q := make([][]float64, n)
	for i := range q {
		q[i] = make([]float64, nsteps+1)
		q[i][0] = state[2*i]
	}

	for step := 1; step <= nsteps; step++ {
		if err := s.Tick(state, extForces, dt); err != nil {
			return chk.Err("tick %d failed: %v", step, err)
		}
		times[step] = times[step-1] + dt
		for i := 0; i < n; i++ {
			q[i][step] = state[2*i]
		}
	}

	if err := plotPNG(times, q, fnkey, outdir); err != nil {
		return err
	}
	return plotHTML(times, q, fnkey, outdir)
}

func plotPNG(times []float64, q [][]float64, fnkey, outdir string) error {
	plt.SetForPng(0.8, 400, 200)
	colors := []string{"b", "r", "g", "m", "c", "k"}
	for i := range q {
		fmtStr := io.Sf("'%s-', clip_on=0, label='q%d'", colors[i%len(colors)], i)
		plt.Plot(times, q[i], fmtStr)
	}
	plt.Gll("$t$", "$q$", "")
	plt.SaveD(outdir, fnkey+".png")
	return nil
}

func plotHTML(times []float64, q [][]float64, fnkey, outdir string) error {
	xAxis := make([]string, len(times))
	for i, t := range times {
		xAxis[i] = io.Sf("%.3f", t)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "960px", Height: "540px"}),
		charts.WithTitleOpts(opts.Title{Title: "Frame trajectories: " + fnkey}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xAxis)
	for i := range q {
		data := make([]opts.LineData, len(q[i]))
		for j, v := range q[i] {
			data[j] = opts.LineData{Value: v}
		}
		label := io.Sf("q%d", i)
		line.AddSeries(label, data, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}))
	}

	page := components.NewPage()
	page.AddCharts(line)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return chk.Err("cannot render HTML chart: %v", err)
	}

	path := outdir + "/" + fnkey + ".html"
	return os.WriteFile(path, buf.Bytes(), 0644)
}
