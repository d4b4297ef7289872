package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dxfgen/dxfgen"
	"github.com/tdewolff/argp"
)

type Sample struct {
	Output string  `short:"o" default:"sample_drawing.dxf" desc:"Output DXF filename"`
	PNG    bool    `desc:"Also render a PNG preview"`
	Width  float64 `default:"12" desc:"PNG width in inches"`
	Height float64 `default:"8" desc:"PNG height in inches"`
	DPI    int     `default:"300" desc:"PNG resolution in dots per inch"`
}

type House struct {
	Output string  `short:"o" default:"house.dxf" desc:"Output DXF filename"`
	PNG    bool    `desc:"Also render a PNG preview"`
	Width  float64 `default:"12" desc:"PNG width in inches"`
	Height float64 `default:"8" desc:"PNG height in inches"`
	DPI    int     `default:"300" desc:"PNG resolution in dots per inch"`
}

type Grid struct {
	Output     string  `short:"o" default:"spoil_board.dxf" desc:"Output DXF filename"`
	PNG        bool    `desc:"Also render a PNG preview"`
	PNGWidth   float64 `default:"16" desc:"PNG width in inches"`
	PNGHeight  float64 `default:"12" desc:"PNG height in inches"`
	DPI        int     `default:"300" desc:"PNG resolution in dots per inch"`
	Width      float64 `default:"300" desc:"Grid width"`
	Height     float64 `default:"800" desc:"Grid height"`
	Spacing    float64 `default:"50" desc:"Grid line spacing"`
	Coords     bool    `default:"true" desc:"Label grid intersections with their coordinates"`
	TextHeight float64 `default:"2.5" desc:"Coordinate label text height"`
}

func main() {
	root := argp.NewCmd(&Sample{}, "Generator for simple DXF technical drawings")
	root.AddCmd(&House{}, "house", "Write a simple house drawing")
	root.AddCmd(&Grid{}, "grid", "Write a spoil board coordinate grid")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Sample) Run() error {
	d := dxfgen.New()
	d.AddText("Sample DXF Drawing", dxfgen.P(10, 90), 3, dxfgen.Red)

	d.AddRectangle(dxfgen.P(10, 10), dxfgen.P(30, 20), dxfgen.Blue)
	d.AddCircle(dxfgen.P(50, 15), 8, dxfgen.Green)
	d.AddLine(dxfgen.P(70, 10), dxfgen.P(90, 20), dxfgen.Yellow)
	d.AddPolygon([]dxfgen.Point{{X: 100, Y: 10}, {X: 110, Y: 25}, {X: 120, Y: 10}}, true, dxfgen.Magenta)
	d.AddArc(dxfgen.P(140, 15), 10, 0, 180, dxfgen.Cyan)
	d.AddStar(dxfgen.P(50, 50), 15, 8, 6, dxfgen.Red)
	d.AddGrid(200, 100, 5, dxfgen.P(0, 0), true, 0.8, dxfgen.Gray)

	d.AddText("Rectangle", dxfgen.P(10, 5), 1.5)
	d.AddText("Circle", dxfgen.P(45, 5), 1.5)
	d.AddText("Line", dxfgen.P(75, 5), 1.5)
	d.AddText("Triangle", dxfgen.P(100, 5), 1.5)
	d.AddText("Arc", dxfgen.P(135, 5), 1.5)
	d.AddText("Star", dxfgen.P(40, 35), 1.5)

	return save(d, cmd.Output, cmd.PNG, dxfgen.PNGOptions{
		WidthInch:  cmd.Width,
		HeightInch: cmd.Height,
		DPI:        cmd.DPI,
	})
}

func (cmd *House) Run() error {
	d := dxfgen.New()
	d.AddRectangle(dxfgen.P(0, 0), dxfgen.P(20, 15), dxfgen.Blue)
	d.AddPolygon([]dxfgen.Point{{X: 0, Y: 15}, {X: 10, Y: 25}, {X: 20, Y: 15}}, true, dxfgen.Red)
	d.AddRectangle(dxfgen.P(8, 0), dxfgen.P(12, 8), dxfgen.Yellow)
	d.AddRectangle(dxfgen.P(2, 8), dxfgen.P(6, 12), dxfgen.Cyan)
	d.AddRectangle(dxfgen.P(14, 8), dxfgen.P(18, 12), dxfgen.Cyan)
	d.AddCircle(dxfgen.P(11, 4), 0.3, dxfgen.Black)
	d.AddText("Simple House", dxfgen.P(2, 30), 2, dxfgen.Black)

	return save(d, cmd.Output, cmd.PNG, dxfgen.PNGOptions{
		WidthInch:  cmd.Width,
		HeightInch: cmd.Height,
		DPI:        cmd.DPI,
	})
}

func (cmd *Grid) Run() error {
	d := dxfgen.New()
	title := fmt.Sprintf("Spoil Board - %gx%g Grid (%gmm spacing)", cmd.Width, cmd.Height, cmd.Spacing)
	if err := d.AddText(title, dxfgen.P(10, cmd.Height+20), 4, dxfgen.Black); err != nil {
		return err
	}
	if err := d.AddGrid(cmd.Width, cmd.Height, cmd.Spacing, dxfgen.P(0, 0), cmd.Coords, cmd.TextHeight, dxfgen.Gray); err != nil {
		return err
	}

	return save(d, cmd.Output, cmd.PNG, dxfgen.PNGOptions{
		WidthInch:  cmd.PNGWidth,
		HeightInch: cmd.PNGHeight,
		DPI:        cmd.DPI,
	})
}

func save(d *dxfgen.Drawing, output string, png bool, opts dxfgen.PNGOptions) error {
	if !strings.EqualFold(filepath.Ext(output), ".dxf") {
		output += ".dxf"
	}
	var pngOpts *dxfgen.PNGOptions
	if png {
		pngOpts = &opts
	}
	if err := d.Save(output, pngOpts); err != nil {
		return err
	}
	fmt.Println("DXF file saved as:", output)
	if png {
		fmt.Println("PNG file saved as:", output[:len(output)-len(filepath.Ext(output))]+".png")
	}
	return nil
}
