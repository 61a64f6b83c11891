// Package main implements kaedetypes, an interactive explorer for the
// Kaede type environment. Compiler developers use it to build type
// values, allocate and link type variables, and inspect environment
// dumps without running the full checker.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/kaede-lang/kaede/internal/types"
	"github.com/kaede-lang/kaede/internal/typexpr"
)

const (
	historyFile = ".kaedetypes_history"
	prompt      = ">> "
)

const helpText = `Type expressions:
  float, string, void, none    primitives
  T& / T*                      reference / pointer to T
  (A,B) -> R                   function type
  (A,B)                        tuple
  [T x N]                      array of N elements
  {f:T,g:U}                    struct
  'N                           registered type variable N
  NAME                         type bound to NAME in the environment

Commands:
  EXPR                 print the canonical form and kind of EXPR
  let NAME = EXPR      bind NAME to EXPR
  alias NAME = EXPR    bind NAME to an alias of EXPR
  find NAME            print the type bound to NAME
  tv                   allocate a fresh type variable
  set N EXPR           set the contained type of variable N
  link N M             link variable N's chain onto variable M
  resolve N            print the resolved type of variable N's class
  subst                replace type variables in all bindings
  kind EXPR            print the kind classification of EXPR
  dump [-v]            print all bindings (-v expands aliases)
  links                print chain connectivity of all variables
  help                 show this help
  quit                 exit`

var verbose = flag.Bool("v", false, "verbose dumps by default (expand alias targets)")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kaedetypes [options]\n\n")
		fmt.Fprintf(os.Stderr, "Interactive Kaede type environment explorer.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(run())
}

func run() int {
	fmt.Println("Kaede type explorer. Type help for commands, quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	env := types.NewEnv()

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			// Ctrl+C clears the current line; Ctrl+D and closed input exit.
			if err == liner.ErrPromptAborted {
				continue
			}
			fmt.Println()
			return 0
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if quit := eval(env, line); quit {
			return 0
		}
	}
}

// eval runs one explorer command. It reports whether the session should end.
func eval(env *types.Env, line string) bool {
	cmd, rest := splitWord(line)

	switch cmd {
	case "quit", "exit":
		return true

	case "help":
		fmt.Println(helpText)

	case "let", "alias":
		name, expr, ok := strings.Cut(rest, "=")
		name, expr = strings.TrimSpace(name), strings.TrimSpace(expr)
		if !ok || name == "" || expr == "" {
			fmt.Printf("usage: %s NAME = EXPR\n", cmd)
			return false
		}
		v, err := typexpr.Parse(expr, env)
		if err != nil {
			fmt.Println("error:", err)
			return false
		}
		if cmd == "alias" {
			v = types.NewAlias(name, v)
		}
		if env.Emplace(name, v) {
			fmt.Printf("inserted %s : %s\n", name, types.ToString(v, *verbose))
		} else {
			fmt.Printf("overwrote %s : %s\n", name, types.ToString(v, *verbose))
		}

	case "find":
		v, err := env.Find(strings.TrimSpace(rest))
		if err != nil {
			fmt.Println("error:", err)
			return false
		}
		fmt.Println(types.ToString(v, *verbose))

	case "tv":
		tv := env.CreateTypeVar()
		fmt.Println(tv)

	case "set":
		arg, expr := splitWord(rest)
		tv, ok := lookupVar(env, arg)
		if !ok {
			return false
		}
		v, err := typexpr.Parse(expr, env)
		if err != nil {
			fmt.Println("error:", err)
			return false
		}
		tv.Contained = v
		fmt.Printf("%s contained=%s\n", tv, types.ToString(v, *verbose))

	case "link":
		from, to := splitWord(rest)
		a, ok := lookupVar(env, from)
		if !ok {
			return false
		}
		b, ok := lookupVar(env, strings.TrimSpace(to))
		if !ok {
			return false
		}
		// Splice a's chain onto b's: the combined chain stays acyclic as
		// long as the two chains were disjoint. Two variables share a
		// chain exactly when they share a representative.
		tail := a.LastLink()
		if tail == b.LastLink() {
			fmt.Println("error: variables are already in the same chain")
			return false
		}
		head := b.FirstLink()
		tail.Next = head
		head.Prev = tail
		fmt.Printf("%s -> %s (representative %s)\n", a, b, a.LastLink())

	case "resolve":
		tv, ok := lookupVar(env, strings.TrimSpace(rest))
		if !ok {
			return false
		}
		fmt.Println(types.ToString(tv.Resolve(), *verbose))

	case "subst":
		env.ReplaceTypeVars()
		env.Dump(os.Stdout, *verbose)

	case "dump":
		env.Dump(os.Stdout, *verbose || strings.TrimSpace(rest) == "-v")

	case "links":
		env.DumpTvLinks(os.Stdout)

	case "kind":
		v, err := typexpr.Parse(rest, env)
		if err != nil {
			fmt.Println("error:", err)
			return false
		}
		fmt.Println(types.KindOf(v))

	default:
		v, err := typexpr.Parse(line, env)
		if err != nil {
			fmt.Println("error:", err)
			return false
		}
		fmt.Printf("%s \t(%s)\n", types.ToString(v, *verbose), types.KindOf(v))
	}
	return false
}

// lookupVar resolves a variable index argument against the registry.
func lookupVar(env *types.Env, arg string) (*types.TypeVar, bool) {
	index, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || index < 0 || index >= env.NumTypeVars() {
		fmt.Printf("error: no registered type variable %q\n", strings.TrimSpace(arg))
		return nil, false
	}
	return env.FindTypeVar(index), true
}

// splitWord splits the first whitespace-delimited word from the rest.
func splitWord(s string) (word, rest string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}
