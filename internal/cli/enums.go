package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

// EnumsRun lists the known tokens of every enum domain
func EnumsRun() {
	printVocabularies(os.Stdout)
}

func printVocabularies(w io.Writer) {
	for _, v := range tsconfig.Vocabularies() {
		open := "closed"
		if v.Open {
			open = "open"
		}
		casing := "case-insensitive"
		if v.CaseSensitive {
			casing = "case-sensitive"
		}
		fmt.Fprintf(w, "%s (%s, %s):\n  %s\n", v.Domain, open, casing, strings.Join(v.Tokens, ", "))
	}
}
