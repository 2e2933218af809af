// Command nestq evaluates a path or wildcard pattern against a TOML, JSON,
// or YAML document and prints the matches as "path = value" lines.
//
// Usage:
//
//	nestq -f data.json -p 'users.*.name'
//	nestq -f config.toml -p server.port -strict
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"nest"
)

func main() {
	var (
		file      = flag.String("f", "", "document file (.toml, .json, .yaml)")
		pattern   = flag.String("p", "", "path or wildcard pattern to evaluate")
		separator = flag.String("sep", ".", "path separator")
		wildcard  = flag.String("wildcard", "*", "wildcard symbol")
		strict    = flag.Bool("strict", false, "fail on unresolvable paths instead of printing null")
	)
	flag.Parse()

	if *file == "" || *pattern == "" {
		flag.Usage()
		os.Exit(2)
	}

	n, err := nest.NewBuilder().
		WithFile(*file).
		WithSeparator(*separator).
		WithWildcard(*wildcard).
		WithSilentFail(!*strict).
		Build()
	if err != nil {
		log.Fatalf("nestq: %v", err)
	}

	count := 0
	for m, err := range n.IterPattern(*pattern) {
		if err != nil {
			log.Fatalf("nestq: %v", err)
		}
		fmt.Printf("%s = %s\n", m.Path, renderValue(m.Value))
		count++
	}

	if count == 0 {
		os.Exit(1)
	}
}

func renderValue(v any) string {
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}
