package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/refutelabs/fol"
	"github.com/refutelabs/fol/engine"
)

// Version is a version of this build.
var Version = "fol/0.1"

func main() {
	var verbose, version bool
	var steps int
	pflag.BoolVarP(&verbose, "verbose", "v", false, `print the derivation chain of proved queries`)
	pflag.IntVarP(&steps, "steps", "s", 0, `pair budget per proof attempt (0 means the default)`)
	pflag.BoolVar(&version, "version", false, `print version and exit`)
	pflag.Parse()

	if version {
		fmt.Println(Version)
		return
	}

	p := fol.New(fol.Options{MaxSteps: steps})

	var query string
	for _, path := range pflag.Args() {
		kb, err := fol.ReadKBFile(path)
		if err != nil {
			log.Fatalf("failed to read %s: %v", path, err)
		}
		if err := p.AddKB(kb); err != nil {
			log.Fatalf("failed to load %s: %v", path, err)
		}
		if kb.Query != "" {
			query = kb.Query
		}
	}

	// A knowledge base that names its query runs one-shot.
	if query != "" {
		prove(p, query, verbose, os.Stdout)
		return
	}

	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		log.Panicf("failed to enter raw mode: %v", err)
	}
	restore := func() {
		_ = terminal.Restore(0, oldState)
	}
	defer restore()

	t := terminal.NewTerminal(os.Stdin, "?- ")
	defer fmt.Printf("\r\n")

	log.SetOutput(t)

	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Panicf("failed to read: %v", err)
		}
		line = strings.TrimSuffix(strings.TrimSpace(line), ".")
		switch line {
		case "":
			continue
		case "halt":
			return
		case "listing":
			for _, c := range p.Clauses() {
				_, _ = fmt.Fprintf(t, "%s\n", c)
			}
			continue
		}
		prove(p, line, verbose, t)
	}
}

func prove(p *fol.Prover, query string, verbose bool, w io.Writer) {
	r, err := p.Prove(query)
	if err != nil {
		_, _ = fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	if r.Verdict != engine.Proved {
		_, _ = fmt.Fprintf(w, "not proved within %d steps.\n", r.Steps)
		return
	}
	if verbose {
		for i, s := range r.Proof {
			_, _ = fmt.Fprintf(w, "%2d. %s  +  %s  =>  %s  with %s\n", i+1, s.Left, s.Right, s.Resolvent, s.Mgu)
		}
	}
	if len(r.Answer) > 0 {
		_, _ = fmt.Fprintf(w, "proved with %s.\n", r.Answer)
	} else {
		_, _ = fmt.Fprintf(w, "proved.\n")
	}
}
