// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// seamrepair reads a mesh, a texture, an optional seam-selection mask, and
// a yaml configuration, runs the seam repair engine, and writes the
// result as a PNG.
//
//	seamrepair [-mask mask.png] [-config config.yaml] mesh.obj texture.png out.png
package main

import (
	"flag"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"

	"github.com/galvanized/seamrepair/config"
	"github.com/galvanized/seamrepair/mesh"
	"github.com/galvanized/seamrepair/repair"
)

func main() {
	maskPath := flag.String("mask", "", "optional seam-selection mask image")
	configPath := flag.String("config", "", "optional yaml configuration (defaults used otherwise)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		log.Fatalf("usage: seamrepair [-mask mask.png] [-config config.yaml] mesh.obj texture.png out.png")
	}
	meshPath, texturePath, outPath := args[0], args[1], args[2]

	m, err := loadMesh(meshPath)
	if err != nil {
		log.Fatalf("seamrepair: %s: %s", meshPath, err)
	}

	texture, err := loadImage(texturePath)
	if err != nil {
		log.Fatalf("seamrepair: %s: %s", texturePath, err)
	}

	var maskImage image.Image
	if *maskPath != "" {
		maskImage, err = loadImage(*maskPath)
		if err != nil {
			log.Fatalf("seamrepair: %s: %s", *maskPath, err)
		}
	}

	cfg := config.Default()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("seamrepair: %s: %s", *configPath, err)
		}
		cfg, err = config.Load(data)
		if err != nil {
			log.Fatalf("seamrepair: %s: %s", *configPath, err)
		}
	}

	out, err := repair.Repair(m, texture, maskImage, cfg)
	if err != nil {
		log.Fatalf("seamrepair: repair failed: %s", err)
	}

	if err := saveImage(outPath, out); err != nil {
		log.Fatalf("seamrepair: %s: %s", outPath, err)
	}
}

func loadMesh(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return mesh.Parse(f)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func saveImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
