package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/mzen17/PDF-Page-Editor/pkg/utils"
)

func main() {
	pdfPath := flag.String("file", "", "Path to PDF file")
	withHashes := flag.Bool("hash", false, "Render each page and print its image hash")
	flag.Parse()

	if *pdfPath == "" {
		fmt.Println("Please provide a PDF file path using -file flag")
		os.Exit(1)
	}

	fmt.Printf("Inspecting PDF: %s\n", *pdfPath)

	count, err := api.PageCountFile(*pdfPath)
	if err != nil {
		fmt.Printf("Error getting page count: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Pages: %d\n", count)

	dims, err := api.PageDimsFile(*pdfPath)
	if err != nil {
		fmt.Printf("Error getting page dimensions: %v\n", err)
		os.Exit(1)
	}

	doc, err := fitz.New(*pdfPath)
	if err != nil {
		fmt.Printf("Error opening PDF: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	for i, dim := range dims {
		fmt.Printf("\nPage %d:\n", i+1)
		fmt.Printf("Dimensions (Width x Height): %.3f x %.3f points\n", dim.Width, dim.Height)

		text, err := doc.Text(i)
		if err != nil {
			fmt.Printf("Error extracting text: %v\n", err)
		} else {
			trimmed := strings.TrimSpace(text)
			fmt.Printf("Text characters: %d\n", len(trimmed))
			if line := firstLine(trimmed); line != "" {
				fmt.Printf("First line: %s\n", line)
			}
		}

		if *withHashes {
			img, err := doc.Image(i)
			if err != nil {
				fmt.Printf("Error rendering page: %v\n", err)
				continue
			}

			hash, err := utils.GenerateImageHash(img)
			if err != nil {
				fmt.Printf("Error hashing page: %v\n", err)
				continue
			}
			fmt.Printf("Render hash: %s\n", hash)
		}
	}
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
