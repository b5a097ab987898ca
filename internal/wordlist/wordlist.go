// Package wordlist loads dictionary words from external sources: plain
// whitespace-delimited files via memory mapping, arbitrary readers, and
// Postgres tables. Every loader normalizes what it reads and drops entries
// that normalize to nothing, so the dictionary only ever sees canonical words.
package wordlist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/NullVsVoid/Spell-Checker-Final/internal/spell"
)

// Load reads a whitespace-delimited word list by memory-mapping path, which
// avoids copying large lists through the page cache twice.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat word list: %w", err)
	}
	// Zero-length files cannot be mapped.
	if info.Size() == 0 {
		return nil, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap word list %s: %w", path, err)
	}
	defer m.Unmap()

	var words []string
	for _, field := range bytes.Fields(m) {
		if w := spell.Normalize(string(field)); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

// Read collects normalized words from r, for sources that are not files on
// disk.
func Read(r io.Reader) ([]string, error) {
	var words []string
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	for s.Scan() {
		if w := spell.Normalize(s.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}
