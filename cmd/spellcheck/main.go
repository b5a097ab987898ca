package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/NullVsVoid/Spell-Checker-Final/internal/config"
	"github.com/NullVsVoid/Spell-Checker-Final/internal/customdict"
	"github.com/NullVsVoid/Spell-Checker-Final/internal/spell"
	"github.com/NullVsVoid/Spell-Checker-Final/internal/wordlist"
)

// app carries the pieces the subcommands share once setup has run.
type app struct {
	cfg     config.Config
	dict    *spell.Dictionary
	checker *spell.Checker
	store   *customdict.Store
}

func main() {
	a := &app{cfg: config.FromEnv()}

	rootCmd := &cobra.Command{
		Use:   "spellcheck",
		Short: "Dictionary spell checking with edit-distance corrections",
		Long:  `Check text against a word dictionary, flag unknown words, and suggest corrections within a configurable edit distance.`,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfg.WordlistPath, "wordlist", a.cfg.WordlistPath, "path to a whitespace-delimited word list")
	rootCmd.PersistentFlags().StringVar(&a.cfg.PostgresDSN, "postgres", a.cfg.PostgresDSN, "Postgres DSN to load dictionary words from")
	rootCmd.PersistentFlags().StringVar(&a.cfg.RedisAddr, "redis", a.cfg.RedisAddr, "Redis address for the persistent custom word set")
	rootCmd.PersistentFlags().IntVar(&a.cfg.Threshold, "threshold", a.cfg.Threshold, "maximum edit distance for accepted corrections")

	rootCmd.AddCommand(createCheckCmd(a))
	rootCmd.AddCommand(createCorrectCmd(a))
	rootCmd.AddCommand(createWordsCmd(a))
	rootCmd.AddCommand(createInteractiveCmd(a))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setup builds the dictionary from every configured source and wires the
// checker over it.
func (a *app) setup(ctx context.Context) error {
	a.dict = spell.NewDictionary()

	if a.cfg.WordlistPath != "" {
		words, err := wordlist.Load(a.cfg.WordlistPath)
		if err != nil {
			return err
		}
		a.dict.AddAll(words)
	}

	if a.cfg.PostgresDSN != "" {
		db, err := wordlist.OpenPostgres(a.cfg.PostgresDSN)
		if err != nil {
			return err
		}
		words, err := wordlist.NewPostgresSource(db, "").Words(ctx)
		db.Close()
		if err != nil {
			return err
		}
		a.dict.AddAll(words)
	}

	a.connectStore()
	if a.store != nil {
		words, err := a.store.All(ctx)
		if err != nil {
			return fmt.Errorf("load custom words: %w", err)
		}
		a.dict.AddAll(words)
	}

	a.checker = spell.NewChecker(a.dict, a.cfg.CheckerOptions()...)
	return nil
}

// connectStore wires the Redis-backed custom word store when configured. The
// client connects lazily, so errors surface on first use.
func (a *app) connectStore() {
	if a.cfg.RedisAddr == "" || a.store != nil {
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.RedisAddr,
		Password: a.cfg.RedisPassword,
		DB:       a.cfg.RedisDB,
	})
	a.store = customdict.New(client, "")
}

// createCheckCmd creates the one-shot check subcommand.
func createCheckCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check [text ...]",
		Short: "Check text against the dictionary and suggest corrections",
		Run: func(cmd *cobra.Command, args []string) {
			if err := a.setup(cmd.Context()); err != nil {
				log.Fatalf("setup: %v", err)
			}
			text := strings.Join(args, " ")
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					log.Fatalf("read file: %v", err)
				}
				text = string(data)
			}
			if strings.TrimSpace(text) == "" {
				log.Fatal("nothing to check: pass text arguments or --file")
			}

			misspelled := a.checker.Check(text)
			printReport(os.Stdout, misspelled, a.checker.Suggest(misspelled))
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "check the contents of a file instead of arguments")

	return cmd
}

// createCorrectCmd creates the interactive file-correction subcommand.
func createCorrectCmd(a *app) *cobra.Command {
	var file, out string

	cmd := &cobra.Command{
		Use:   "correct",
		Short: "Walk a file's misspellings and apply chosen corrections",
		Run: func(cmd *cobra.Command, args []string) {
			if file == "" {
				log.Fatal("--file is required")
			}
			if err := a.setup(cmd.Context()); err != nil {
				log.Fatalf("setup: %v", err)
			}
			if out == "" {
				out = file
			}
			in := bufio.NewScanner(os.Stdin)
			if err := a.correctFile(in, os.Stdout, file, out); err != nil {
				log.Fatalf("correct: %v", err)
			}
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "file to check and correct")
	cmd.Flags().StringVar(&out, "out", "", "where to write the corrected text (default: the input file)")

	return cmd
}

// createWordsCmd creates the dictionary word management subcommand.
func createWordsCmd(a *app) *cobra.Command {
	wordsCmd := &cobra.Command{
		Use:   "words",
		Short: "Manage dictionary words",
	}
	wordsCmd.AddCommand(createWordsAddCmd(a))
	return wordsCmd
}

func createWordsAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <word> ...",
		Short: "Add words to the dictionary",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if err := a.setup(ctx); err != nil {
				log.Fatalf("setup: %v", err)
			}
			for _, arg := range args {
				word := spell.Normalize(arg)
				if word == "" {
					fmt.Printf("Word %q has no letters and was not added.\n", arg)
					continue
				}
				if a.store != nil {
					if _, err := a.store.Add(ctx, word); err != nil {
						log.Fatalf("persist word: %v", err)
					}
				}
				if a.dict.Add(word) {
					fmt.Printf("Word '%s' added successfully.\n", word)
				} else {
					fmt.Printf("Word '%s' already exists in dictionary.\n", word)
				}
			}
		},
	}
}

// createInteractiveCmd creates the menu-driven session subcommand.
func createInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Menu-driven spell checking session",
		Run: func(cmd *cobra.Command, args []string) {
			a.connectStore()
			newREPL(a, os.Stdin, os.Stdout).run(cmd.Context())
		},
	}
}

// correctFile runs the interactive correction flow over the file at path and
// writes the corrected text to outPath when any correction was applied.
func (a *app) correctFile(in *bufio.Scanner, out io.Writer, path, outPath string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	corrected, applied := a.checker.CorrectText(string(data), terminalChooser(in, out))
	if len(applied) == 0 {
		fmt.Fprintln(out, "No corrections were made to the file.")
		return nil
	}

	if err := os.WriteFile(outPath, []byte(corrected), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Fprintf(out, "All corrections have been applied and saved back to %q.\n", outPath)
	return nil
}

// terminalChooser prompts on out and reads the numbered choice from in.
// Anything that is not a number within range counts as a skip.
func terminalChooser(in *bufio.Scanner, out io.Writer) spell.Chooser {
	return func(token string, candidates []string) int {
		fmt.Fprintf(out, "\nMisspelled word: %s\n", token)
		fmt.Fprintf(out, "Suggestions for %q:\n", token)
		for i, cand := range candidates {
			fmt.Fprintf(out, "%d: %s\n", i+1, cand)
		}
		fmt.Fprintln(out, "0: Skip (make no change)")
		fmt.Fprint(out, "Choose a correction (number): ")
		if !in.Scan() {
			return 0
		}
		choice, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil || choice < 1 || choice > len(candidates) {
			return 0
		}
		fmt.Fprintln(out, "Applying correction...")
		return choice
	}
}

// printReport writes the check results: the misspelled words, then the
// corrections found for them.
func printReport(w io.Writer, misspelled []string, corrections []spell.Correction) {
	fmt.Fprintln(w)
	if len(misspelled) == 0 {
		fmt.Fprintln(w, "No misspelled words found.")
	} else {
		fmt.Fprintln(w, "Misspelled words:")
		for _, word := range misspelled {
			fmt.Fprintln(w, word)
		}
	}
	if len(corrections) > 0 {
		fmt.Fprintln(w, "Corrections:")
		for _, c := range corrections {
			fmt.Fprintf(w, "%s -> %s\n", c.Word, c.Suggestion)
		}
	}
}
