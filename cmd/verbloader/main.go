// Command verbloader replaces the server's irregular-verbs reference table
// with rows read from a CSV file.
//
// The file is expected to hold one verb per line, separated by the -sep rune:
//
//	infinitive;secondary_infinitive;preterite;participle;translation
//
// The secondary infinitive column may be omitted entirely (four-column rows).
// The loader authenticates against the server with the given credentials and
// posts the whole file in one request, so a partially broken file never
// replaces the table.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"

	"github.com/mikas-m/wortschatz/internal/adapter"
	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/models"
)

func main() {
	var (
		file     = flag.String("file", "", "path to the CSV file with irregular verbs")
		server   = flag.String("server", "http://localhost:8080", "base URL of the wortschatz server")
		username = flag.String("username", "", "account username")
		password = flag.String("password", "", "account password")
		sep      = flag.String("sep", ";", "CSV field separator")
	)
	flag.Parse()

	log := logger.NewLogger("verbloader")

	if *file == "" || *username == "" || *password == "" {
		log.Fatal().Msg("-file, -username and -password are required")
	}
	if len([]rune(*sep)) != 1 {
		log.Fatal().Str("sep", *sep).Msg("separator must be a single rune")
	}

	verbs, err := readVerbsFile(*file, []rune(*sep)[0])
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("error reading verbs file")
	}
	log.Info().Int("rows", len(verbs)).Msg("verbs file parsed")

	srv, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{BaseURL: *server})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid server address")
	}

	ctx := context.Background()

	if err := srv.Login(ctx, models.User{Username: *username, Password: *password}); err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}

	imported, err := srv.ImportVerbs(ctx, verbs)
	if err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}

	log.Info().Int("imported", imported).Msg("irregular verbs replaced")
}

// readVerbsFile parses the CSV file into verb rows. Rows may carry four or
// five columns; the secondary infinitive sits in column two when present.
func readVerbsFile(path string, sep rune) ([]models.IrregularVerb, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open verbs file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = sep
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse verbs file: %w", err)
	}

	verbs := make([]models.IrregularVerb, 0, len(records))
	for i, record := range records {
		switch len(record) {
		case 4:
			verbs = append(verbs, models.IrregularVerb{
				Infinitive:  record[0],
				Preterite:   record[1],
				Participle:  record[2],
				Translation: record[3],
			})
		case 5:
			verbs = append(verbs, models.IrregularVerb{
				Infinitive:          record[0],
				SecondaryInfinitive: record[1],
				Preterite:           record[2],
				Participle:          record[3],
				Translation:         record[4],
			})
		default:
			return nil, fmt.Errorf("row %d: expected 4 or 5 columns, got %d", i+1, len(record))
		}
	}

	return verbs, nil
}
