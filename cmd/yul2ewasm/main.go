// Command yul2ewasm parses a Yul-like source file in the EVM256 dialect,
// runs it through the translator pipeline, and prints the resulting
// WASM64-dialect object back out as text.
package main

import (
	"flag"
	"fmt"
	"os"

	"yul2ewasm/printer"
	"yul2ewasm/translator"
	"yul2ewasm/yulparse"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <object.yul>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	obj, err := yulparse.ParseObject(path, string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", path, err)
		os.Exit(1)
	}

	out, err := translator.New().Translate(*obj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error translating %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Println(printer.Object(&out))
}
