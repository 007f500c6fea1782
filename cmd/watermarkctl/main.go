// Command watermarkctl embeds and extracts invisible text watermarks from
// the command line, exercising the same library surface as the HTTP
// adapter without a server in the loop.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/YannKr/watermarkengine/internal/watermark"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "embed":
		runEmbed(os.Args[2:])
	case "extract":
		runExtract(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: watermarkctl embed -in x.png -out y.png -text \"hi\" -method dct")
	fmt.Fprintln(os.Stderr, "       watermarkctl extract -in y.png -method dct")
}

func runEmbed(args []string) {
	fs := flag.NewFlagSet("embed", flag.ExitOnError)
	in := fs.String("in", "", "input image file path")
	out := fs.String("out", "", "output image file path")
	text := fs.String("text", "", "text to embed")
	method := fs.String("method", "dct", "embedding method: lsb, dct, dwt, or robust")
	fs.Parse(args)

	if *in == "" || *out == "" || *text == "" {
		fmt.Fprintln(os.Stderr, "embed: -in, -out, and -text are required")
		os.Exit(1)
	}

	m, err := watermark.ParseMethod(*method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cant parse method %s: %s\n", *method, err)
		os.Exit(1)
	}

	imgBytes, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cant read input %s: %s\n", *in, err)
		os.Exit(1)
	}

	result, err := watermark.Embed(imgBytes, *text, m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cant embed watermark: %s\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, result, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "cant write output %s: %s\n", *out, err)
		os.Exit(1)
	}
}

func runExtract(args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	in := fs.String("in", "", "input image file path")
	method := fs.String("method", "dct", "embedding method: lsb, dct, dwt, or robust")
	fs.Parse(args)

	if *in == "" {
		fmt.Fprintln(os.Stderr, "extract: -in is required")
		os.Exit(1)
	}

	m, err := watermark.ParseMethod(*method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cant parse method %s: %s\n", *method, err)
		os.Exit(1)
	}

	imgBytes, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cant read input %s: %s\n", *in, err)
		os.Exit(1)
	}

	text, err := watermark.Extract(imgBytes, m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cant extract watermark: %s\n", err)
		os.Exit(1)
	}

	fmt.Println(text)
}
