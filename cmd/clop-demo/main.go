// Command clop-demo exercises every kind of option clop supports.
package main

import (
	"fmt"
	"log"
	"os"
	"unicode/utf8"

	"github.com/napalu/clop"
)

const (
	synopsis = "Test program that uses clop"
	version  = "1"
)

// char holds exactly one character
type char rune

func (c *char) Set(text string) error {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) {
		return fmt.Errorf("%q is not a single character", text)
	}
	*c = char(r)

	return nil
}

func (c *char) String() string {
	return fmt.Sprintf("'%c'", rune(*c))
}

func (c *char) Metavar() string {
	return "character"
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("clop-demo: ")

	var (
		int1       = 1
		int2       = 2
		double1    = 3.14
		string1    string
		string2    string
		bool1      bool
		bool2      bool
		bool3      = true
		bool4      = true
		g          = char('8')
		help       bool
		completion string
	)

	parser, err := clop.NewParserWith(
		clop.WithHyphenArgError(false),
		clop.WithBind(&int1, "-i", "--int1", "integer option #1"),
		clop.WithBind(&int2, "-j", "--int2", "integer option #2"),
		clop.WithBind(&double1, "-r", "--double1", "double option #1"),
		clop.WithFlag(&string1, "-s", "string option #1"),
		clop.WithFlag(&string2, "-t", "string option #2"),
		clop.WithFlag(&bool1, "-a", "bool option #1"),
		clop.WithFlag(&bool2, "-b", "bool option #2"),
		clop.WithFlag(&bool3, "-c", "bool option #3"),
		clop.WithFlag(&bool4, "-d", "bool option #4"),
		clop.WithValue(&g, "-g", "", "char option"),
		clop.WithFlag(&completion, "--completion", "print a completion script for the given shell and exit"),
		clop.WithOption(&help, "-h", "--help", "print usage and exit"),
	)
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	if _, err := parser.ParseEnv("CLOP_DEMO_OPTS"); err != nil {
		log.Fatalf("error: CLOP_DEMO_OPTS: %v", err)
	}
	args, err := parser.Parse(os.Args[1:])
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	if help {
		err := parser.PrintHelp(os.Stderr, clop.HelpInfo{
			Synopsis:     synopsis,
			Version:      version,
			Usage:        os.Args[0] + " [options] <your name> <your age>",
			ShowDefaults: true,
		})
		if err != nil {
			log.Fatalf("error: %v", err)
		}
		os.Exit(1)
	}

	if completion != "" {
		script, err := parser.GenerateCompletion(completion, os.Args[0])
		if err != nil {
			log.Fatalf("error: %v", err)
		}
		fmt.Print(script)
		return
	}

	fmt.Println("program info:", clop.DescribeProcess(version))

	for i, arg := range args {
		fmt.Printf("argument #%d is: %q\n", i+1, arg)
	}
	fmt.Printf("--- %d arguments.\n", len(args))

	fmt.Printf("integer option #1 is (%s): %d\n", setOrDefault(parser.IsSet(&int1)), int1)
	fmt.Printf("integer option #2 is (%s): %d\n", setOrDefault(parser.IsFlagSet("--int2")), int2)
	fmt.Printf("double option #1 is: %g\n", double1)

	if parser.IsSet(&string1) {
		fmt.Printf("string option #1 is: %q\n", string1)
	} else {
		fmt.Println("string option #1 is not set")
	}
	fmt.Printf("string option #2 is: %q\n", string2)

	fmt.Printf("bool option #1 is: %t (%s)\n", bool1, setOrNot(parser.IsSet(&bool1)))
	fmt.Printf("bool option #2 is: %t (%s)\n", bool2, setOrNot(parser.IsFlagSet("-b")))
	fmt.Printf("bool option #3 is: %t (%s)\n", bool3, setOrNot(parser.IsSet(&bool3)))
	fmt.Printf("bool option #4 is: %t (%s)\n", bool4, setOrNot(parser.IsSet(&bool4)))

	fmt.Printf("char option is: %s\n", g.String())

	for _, a := range parser.Assignments() {
		log.Printf("%s set by %s to %s", a.Option, a.Flag, a.Option.CurrentValue())
	}

	fmt.Println("all done!")
}

func setOrDefault(set bool) string {
	if set {
		return "set"
	}
	return "default"
}

func setOrNot(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}
