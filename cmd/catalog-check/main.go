package main

import (
	"fmt"
	"os"

	"golang.org/x/text/language"

	"github.com/osse101/DoughGuardian_Go/internal/catalog"
	"github.com/osse101/DoughGuardian_Go/internal/info"
)

// catalog-check validates a catalog file the same way the service does at
// startup and prints what it contains. Without an argument it prints the
// built-in catalog.
func main() {
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "Usage: catalog-check [catalog.json|catalog.yaml]")
		os.Exit(1)
	}

	cat := catalog.Default()
	source := "built-in"
	if len(os.Args) == 2 {
		source = os.Args[1]
		loaded, err := catalog.LoadFile(source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %s: %v\n", source, err)
			os.Exit(1)
		}
		cat = loaded
	}

	fmt.Printf("✅ %s catalog is valid (version %s)\n\n", source, orDefault(cat.Version(), "unversioned"))
	fmt.Println(info.NewFormatter(language.English).CatalogSummary(cat))
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
