// Command fgk is a thin driver around the FGK adaptive Huffman codec: it
// reads an input file, hands its bytes to the core codec, and writes the
// result. All file-opening prompts, flag parsing, and user-facing messages
// live here, outside the core.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ArthurEmidio/fgk/huffman"
)

var (
	flagDecompress = flag.Bool("d", false, "decompress (default: compress)")
	flagIn         = flag.String("i", "", "input file (required)")
	flagOut        = flag.String("o", "", "output file")
	flagReport     = flag.Bool("r", false, "report compression ratio")
	flagVersion    = flag.Bool("version", false, "report executable version")
)

const (
	extension = ".fgk"
	version   = "1.0.0"
)

func quitF(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		panic(err)
	}
	os.Exit(1)
}

func assertNoError(err error) {
	if err != nil {
		quitF("%v\n", err)
	}
}

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Println("fgk v" + version)
		os.Exit(0)
	}

	if *flagIn == "" {
		quitF("no input file specified\n")
	}

	in, err := os.ReadFile(*flagIn)
	assertNoError(err)

	if *flagOut == "" { // construct an output file name from the input name
		if *flagDecompress {
			if strings.HasSuffix(*flagIn, extension) {
				*flagOut = (*flagIn)[:len(*flagIn)-len(extension)]
			} else {
				*flagOut = *flagIn + ".decompressed"
			}
		} else {
			*flagOut = *flagIn + extension
		}
	}

	var out []byte
	var lenC, lenD int
	if *flagDecompress {
		out, err = huffman.Decompress(in)
		assertNoError(err)
		lenC, lenD = len(in), len(out)
	} else {
		out, err = huffman.Compress(in)
		assertNoError(err)
		lenC, lenD = len(out), len(in)
	}

	assertNoError(os.WriteFile(*flagOut, out, 0600))

	if *flagReport {
		if lenD == 0 {
			fmt.Printf("%dB -> %dB\n", lenC, lenD)
		} else {
			ratioPct := lenC * 100 / lenD
			fmt.Printf("%dB -> %dB compression ratio %d.%02d\n", lenC, lenD, ratioPct/100, ratioPct%100)
		}
	}
}
