// Command pngstash hides, reads and removes messages stored in ancillary
// PNG chunks.
//
//	pngstash -f image.png encode ruSt "secret message" [output.png]
//	pngstash -f image.png decode ruSt
//	pngstash -f image.png remove ruSt
//	pngstash -f image.png print [--only ruSt]
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
