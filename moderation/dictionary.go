package moderation

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"strings"

	"votekick-lab/errors"
)

//go:embed censored/*
var censoredFolder embed.FS

// Dictionary carries the parsed blocked words plus the language codes of the
// dictionary files they came from, for logging.
type Dictionary struct {
	Words     []string
	Languages []string
}

// LoadDictionary reads every .txt file under the embedded censored folder and
// merges their lines into a unique word list. One file per language,
// "en.txt" -> "en".
func LoadDictionary() (*Dictionary, error) {
	entries, err := fs.ReadDir(censoredFolder, "censored")
	if err != nil {
		return nil, err
	}

	var languages []string
	uniqueWords := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		lang := strings.TrimSuffix(entry.Name(), ".txt")
		languages = append(languages, lang)

		data, err := censoredFolder.ReadFile("censored/" + entry.Name())
		if err != nil {
			return nil, err
		}

		// A scanner handles both \n and \r\n line endings correctly.
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				uniqueWords[line] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(uniqueWords) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(uniqueWords))
	for w := range uniqueWords {
		words = append(words, w)
	}

	return &Dictionary{Words: words, Languages: languages}, nil
}
