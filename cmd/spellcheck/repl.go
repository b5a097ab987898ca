package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/NullVsVoid/Spell-Checker-Final/internal/spell"
	"github.com/NullVsVoid/Spell-Checker-Final/internal/wordlist"
)

const menu = `
---- Spell Checker Menu ----
[L] Load dictionary
[C] Check spelling
[F] Check spelling and correct file
[A] Add word to dictionary
[P] Purge cache
[Q] Quit
Choose an option: `

// repl is the menu-driven session. The suggestion cache is created once and
// survives dictionary reloads; only the purge option clears it.
type repl struct {
	app   *app
	cache *spell.Cache
	in    *bufio.Scanner
	out   io.Writer
}

func newREPL(a *app, in io.Reader, out io.Writer) *repl {
	r := &repl{
		app:   a,
		cache: spell.NewCache(),
		in:    bufio.NewScanner(in),
		out:   out,
	}
	r.rebuild(spell.NewDictionary())
	return r
}

// rebuild points the session at a freshly loaded dictionary, carrying the
// shared suggestion cache over.
func (r *repl) rebuild(dict *spell.Dictionary) {
	r.app.dict = dict
	r.app.checker = spell.NewChecker(dict, append(r.app.cfg.CheckerOptions(), spell.WithCache(r.cache))...)
}

// run drives the menu until quit or EOF.
func (r *repl) run(ctx context.Context) {
	for {
		fmt.Fprint(r.out, menu)
		if !r.in.Scan() {
			return
		}
		switch strings.ToUpper(strings.TrimSpace(r.in.Text())) {
		case "L":
			r.loadDictionary(ctx)
		case "C":
			r.checkSpelling()
		case "F":
			r.correctFile()
		case "A":
			r.addWord(ctx)
		case "P":
			r.app.checker.PurgeCache()
			fmt.Fprintln(r.out, "\nCache purged.")
		case "Q":
			fmt.Fprintln(r.out, "\nExiting program.")
			return
		default:
			fmt.Fprintln(r.out, "\nInvalid option. Please try again.")
		}
	}
}

// prompt prints label and reads one trimmed line. The second return is false
// on EOF.
func (r *repl) prompt(label string) (string, bool) {
	fmt.Fprint(r.out, label)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *repl) loadDictionary(ctx context.Context) {
	path, ok := r.prompt("\nEnter the name of the dictionary file: ")
	if !ok {
		return
	}
	words, err := wordlist.Load(path)
	if err != nil || len(words) == 0 {
		fmt.Fprintln(r.out, "\nFailed to load dictionary.")
		return
	}

	dict := spell.NewDictionary()
	dict.AddAll(words)
	if r.app.store != nil {
		custom, err := r.app.store.All(ctx)
		if err != nil {
			fmt.Fprintf(r.out, "\nFailed to load custom words: %v\n", err)
		} else {
			dict.AddAll(custom)
		}
	}
	r.rebuild(dict)
	fmt.Fprintln(r.out, "\nDictionary loaded successfully.")
}

func (r *repl) checkSpelling() {
	if r.app.dict.Len() == 0 {
		fmt.Fprintln(r.out, "\nPlease load a dictionary first.")
		return
	}
	text, ok := r.prompt("\nEnter the text to spell check:\n")
	if !ok {
		return
	}
	misspelled := r.app.checker.Check(text)
	printReport(r.out, misspelled, r.app.checker.Suggest(misspelled))
}

func (r *repl) correctFile() {
	path, ok := r.prompt("Enter the filename for spell checking and correction: ")
	if !ok {
		return
	}
	if err := r.app.correctFile(r.in, r.out, path, path); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
}

func (r *repl) addWord(ctx context.Context) {
	word, ok := r.prompt("Enter the word to add to the dictionary: ")
	if !ok {
		return
	}
	normalized := spell.Normalize(word)
	if normalized == "" {
		fmt.Fprintln(r.out, "Word must contain letters.")
		return
	}
	if r.app.store != nil {
		if _, err := r.app.store.Add(ctx, normalized); err != nil {
			fmt.Fprintf(r.out, "Failed to persist word: %v\n", err)
			return
		}
	}
	if r.app.dict.Add(normalized) {
		fmt.Fprintln(r.out, "Word added successfully.")
	} else {
		fmt.Fprintln(r.out, "Word already exists in the dictionary.")
	}
}
