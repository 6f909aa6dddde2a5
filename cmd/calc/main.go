package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Muthuselvi-09/calc"
)

func main() {
	log.SetFlags(0)
	var (
		verb  string
		theme string
		pipe  bool
	)
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.StringVar(&theme, "theme", "dark", "display theme (dark or light)")
	flag.BoolVar(&pipe, "n", false, "read expressions line by line from stdin")
	flag.Parse()

	verb += "\n"
	if flag.NArg() > 0 {
		ok := true
		for _, arg := range flag.Args() {
			ok = evalLine(os.Stdout, arg, verb) && ok
		}
		if !ok {
			os.Exit(1)
		}
		return
	}
	if pipe {
		ok := true
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			ok = evalLine(os.Stdout, sc.Text(), verb) && ok
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	t, ok := themes[theme]
	if !ok {
		log.Fatalf("unknown theme %q", theme)
	}
	if _, err := tea.NewProgram(newModel(t)).Run(); err != nil {
		log.Fatal(err)
	}
}

// evalLine evaluates one expression and prints the result to w. A
// failure is reported and does not stop later expressions.
func evalLine(w io.Writer, expr, verb string) bool {
	r, err := calc.Evaluate(expr)
	if err != nil {
		log.Print(err)
		return false
	}
	fmt.Fprintf(w, verb, r)
	return true
}
