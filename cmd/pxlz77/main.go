// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: CLI stack grounded on ethereum-go-ethereum's go.mod dependency
// on github.com/urfave/cli/v2 (geth's cmd/ tree is built on it).

// Command pxlz77 drives the batch image codec from the command line:
// compress a directory of rasters into .lz77 containers, decompress them
// back, or blur a single bitmap (spec §4.4, §6).
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/pxlz77/pxlz77/batch"
	"github.com/pxlz77/pxlz77/blur"
	"github.com/pxlz77/pxlz77/codec"
	"github.com/pxlz77/pxlz77/imgio"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pxlz77:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "pxlz77",
		Usage: "batch pixel-LZ77 image codec",
		Commands: []*cli.Command{
			compressCommand(),
			decompressCommand(),
			blurCommand(),
		},
	}
}

func backendFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "backend",
		Value: "vector",
		Usage: "codec backend: scalar or vector",
	}
}

func resolveBackend(c *cli.Context) (codec.Backend, error) {
	name := c.String("backend")
	backend, ok := codec.Backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (want scalar or vector)", name)
	}
	return backend, nil
}

func compressCommand() *cli.Command {
	return &cli.Command{
		Name:  "compress",
		Usage: "compress a directory of images into .lz77 containers",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Required: true},
			&cli.StringFlag{Name: "output", Required: true},
			&cli.IntFlag{Name: "threads", Value: runtime.NumCPU()},
			backendFlag(),
		},
		Action: func(c *cli.Context) error {
			backend, err := resolveBackend(c)
			if err != nil {
				return err
			}

			log := batch.NewLogrusLogger()
			elapsed, err := batch.StartCompression(context.Background(),
				c.String("source"), c.String("output"), backend, c.Int("threads"),
				printProgress, log)
			if err != nil {
				return err
			}

			fmt.Printf("compression finished in %s\n", elapsed)
			return nil
		},
	}
}

func decompressCommand() *cli.Command {
	return &cli.Command{
		Name:  "decompress",
		Usage: "decompress a directory of .lz77 containers back to bitmaps",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Required: true},
			&cli.StringFlag{Name: "output", Required: true},
			&cli.IntFlag{Name: "threads", Value: runtime.NumCPU()},
			backendFlag(),
		},
		Action: func(c *cli.Context) error {
			backend, err := resolveBackend(c)
			if err != nil {
				return err
			}

			log := batch.NewLogrusLogger()
			elapsed, err := batch.StartDecompression(context.Background(),
				c.String("source"), c.String("output"), backend, c.Int("threads"),
				printProgress, log)
			if err != nil {
				return err
			}

			fmt.Printf("decompression finished in %s\n", elapsed)
			return nil
		},
	}
}

func blurCommand() *cli.Command {
	return &cli.Command{
		Name:  "blur",
		Usage: "apply a disc box-blur to a single bitmap",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Required: true},
			&cli.StringFlag{Name: "output", Required: true},
			&cli.IntFlag{Name: "center-x", Required: true},
			&cli.IntFlag{Name: "center-y", Required: true},
			&cli.IntFlag{Name: "radius", Required: true},
			&cli.IntFlag{Name: "threads", Value: runtime.NumCPU()},
		},
		Action: func(c *cli.Context) error {
			return runBlur(c.String("source"), c.String("output"),
				c.Int("center-x"), c.Int("center-y"), c.Int("radius"), c.Int("threads"))
		},
	}
}

func runBlur(source, output string, centerX, centerY, radius, threads int) error {
	w, h, pixels, err := imgio.LoadPixels(source)
	if err != nil {
		return err
	}

	rgb := make([]byte, w*h*3)
	for i, p := range pixels {
		rgb[i*3] = byte(p)
		rgb[i*3+1] = byte(p >> 8)
		rgb[i*3+2] = byte(p >> 16)
	}

	blur.Apply(rgb, w, h, centerX, centerY, radius, threads)

	blurred := make([]codec.Pixel, w*h)
	for i := range blurred {
		blurred[i] = uint32(rgb[i*3]) | uint32(rgb[i*3+1])<<8 | uint32(rgb[i*3+2])<<16 | uint32(0xFF)<<24
	}

	return imgio.SavePixelsAsBitmap(output, w, h, blurred)
}

func printProgress(percent int) {
	fmt.Printf("\rprogress: %3d%%", percent)
	if percent >= 100 {
		fmt.Println()
	}
}
