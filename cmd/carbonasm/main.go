package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/carbonpp/carbonasm/asm"
	"github.com/carbonpp/carbonasm/parser"
	"github.com/carbonpp/carbonasm/translate"
)

func main() {
	var output string
	var hex bool
	var listing bool
	var verbose bool
	var lang string

	p := &parser.Parser{}

	flag.StringVar(&output, "o", "-", "Image output")
	flag.BoolVar(&hex, "x", false, "Write the image as hex text")
	flag.BoolVar(&listing, "l", false, "Print a listing to stderr")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message language, overriding the user locale")
	flag.Func("D", "Predefine NAME=VALUE", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("%q is not NAME=VALUE", arg)
		}
		p.Predefine(name, value)
		return nil
	})

	flag.Parse()

	if len(lang) != 0 {
		translate.Use(lang)
	}

	source := "./test.carbon++"
	switch flag.NArg() {
	case 0:
	case 1:
		source = flag.Arg(0)
	default:
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	p.Verbose = verbose
	prog, err := p.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	assembler := &asm.Assembler{Verbose: verbose}
	img, err := assembler.Assemble(prog)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if listing {
		err = img.Listing(os.Stderr)
		if err != nil {
			log.Fatal(err)
		}
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	if hex {
		err = img.WriteHex(ouf)
	} else {
		_, err = ouf.Write(img.Bytes)
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
