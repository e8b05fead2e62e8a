// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gentab writes the constant tables of package divpow10.
package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"github.com/db47h/divpow10/internal/tabgen"
)

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("gentab: ")

	var b bytes.Buffer
	if err := tabgen.Generate().WriteGo(&b); err != nil {
		log.Fatal(err)
	}
	if *out == "" {
		if _, err := os.Stdout.Write(b.Bytes()); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := os.WriteFile(*out, b.Bytes(), 0644); err != nil {
		log.Fatal(err)
	}
}
