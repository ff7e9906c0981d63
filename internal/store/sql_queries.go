package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/mikas-m/wortschatz/models"
)

// psql builds queries with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createUser = `INSERT INTO users (username, password_hash)
	VALUES ($1, $2)
	RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
	FROM users
	WHERE username = $1;`

	// collectionLock serialises insert, delete/resequence and batch update
	// per (user, collection). The second key is the collection code.
	collectionLock = `SELECT pg_advisory_xact_lock($1::int4, $2::int4);`

	// insertWord computes the next dense position atomically with the write:
	// MAX+1 over the user's live records in the same collection, 1 if none.
	insertWord = `INSERT INTO words (user_id, kind, position, term, translation, secondary_translation)
	SELECT $1, $2, COALESCE(MAX(position), 0) + 1, $3, $4, $5
	FROM words
	WHERE user_id = $1 AND kind = $2
	RETURNING id, position, created_at;`

	deleteWord = `DELETE FROM words
	WHERE id = $1 AND user_id = $2 AND kind = $3;`

	// resequenceWords restores the dense 1..N ordinal after a deletion.
	// Survivors are ranked by their immutable id (creation order), not by
	// the current, possibly gapped position.
	resequenceWords = `UPDATE words w
	SET position = ranked.rn
	FROM (
		SELECT id, ROW_NUMBER() OVER (ORDER BY id) AS rn
		FROM words
		WHERE user_id = $1 AND kind = $2
	) ranked
	WHERE w.id = ranked.id AND w.position <> ranked.rn;`

	deferWordPositions = `SET CONSTRAINTS words_user_kind_position_uniq DEFERRED;`

	getWordForUpdate = `SELECT id, user_id, kind, position, term, translation, secondary_translation, created_at
	FROM words
	WHERE id = $1 AND user_id = $2 AND kind = $3
	FOR UPDATE;`

	// randomWord samples uniformly in the database so large collections are
	// never pulled into memory for a client-side shuffle.
	randomWord = `SELECT id, user_id, kind, position, term, translation, secondary_translation, created_at
	FROM words
	WHERE user_id = $1 AND kind = $2
	ORDER BY RANDOM()
	LIMIT 1;`

	insertNote = `INSERT INTO notes (user_id, position, title, body)
	SELECT $1, COALESCE(MAX(position), 0) + 1, $2, $3
	FROM notes
	WHERE user_id = $1
	RETURNING id, position, created_at;`

	deleteNote = `DELETE FROM notes
	WHERE id = $1 AND user_id = $2;`

	resequenceNotes = `UPDATE notes n
	SET position = ranked.rn
	FROM (
		SELECT id, ROW_NUMBER() OVER (ORDER BY id) AS rn
		FROM notes
		WHERE user_id = $1
	) ranked
	WHERE n.id = ranked.id AND n.position <> ranked.rn;`

	deferNotePositions = `SET CONSTRAINTS notes_user_position_uniq DEFERRED;`

	getNoteForUpdate = `SELECT id, user_id, position, title, body, created_at
	FROM notes
	WHERE id = $1 AND user_id = $2
	FOR UPDATE;`

	getAllVerbs = `SELECT id, infinitive, secondary_infinitive, preterite, participle, translation
	FROM irregular_verbs
	ORDER BY infinitive;`

	deleteAllVerbs = `DELETE FROM irregular_verbs;`

	insertVerb = `INSERT INTO irregular_verbs (infinitive, secondary_infinitive, preterite, participle, translation)
	VALUES ($1, $2, $3, $4, $5);`
)

// Advisory lock collection codes. One code per independent position
// sequence.
const (
	lockStandardWords int32 = 1
	lockDialectWords  int32 = 2
	lockNotes         int32 = 3
)

func wordCollectionCode(kind models.WordKind) int32 {
	if kind == models.WordKindDialect {
		return lockDialectWords
	}
	return lockStandardWords
}

// Per-collection allow-lists mapping update field names to table columns.
// This explicit mapping replaces attribute lookup by string name: a field
// outside the map can never reach a SQL SET clause.
var (
	standardWordColumns = map[string]string{
		"term":        "term",
		"translation": "translation",
	}

	dialectWordColumns = map[string]string{
		"term":                  "term",
		"translation":           "translation",
		"secondary_translation": "secondary_translation",
	}

	noteColumns = map[string]string{
		"title": "title",
		"body":  "body",
	}
)

func wordColumn(kind models.WordKind, field string) (string, bool) {
	if kind == models.WordKindDialect {
		column, ok := dialectWordColumns[field]
		return column, ok
	}
	column, ok := standardWordColumns[field]
	return column, ok
}

const wordColumnsList = "id, user_id, kind, position, term, translation, secondary_translation, created_at"

const noteColumnsList = "id, user_id, position, title, body, created_at"

func buildSelectWordsQuery(userID int64, kind models.WordKind) (string, []any, error) {
	return psql.Select(wordColumnsList).
		From("words").
		Where(sq.Eq{"user_id": userID, "kind": kind}).
		OrderBy("position ASC").
		ToSql()
}

func buildUpdateWordQuery(userID, recordID int64, kind models.WordKind, setClauses map[string]string) (string, []any, error) {
	update := psql.Update("words")
	for column, value := range setClauses {
		update = update.Set(column, value)
	}

	return update.
		Where(sq.Eq{"id": recordID, "user_id": userID, "kind": kind}).
		Suffix("RETURNING " + wordColumnsList).
		ToSql()
}

func buildSelectNotesQuery(userID int64, newestFirst bool) (string, []any, error) {
	order := "position ASC"
	if newestFirst {
		order = "created_at DESC, id DESC"
	}

	return psql.Select(noteColumnsList).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy(order).
		ToSql()
}

func buildUpdateNoteQuery(userID, recordID int64, setClauses map[string]string) (string, []any, error) {
	update := psql.Update("notes")
	for column, value := range setClauses {
		update = update.Set(column, value)
	}

	return update.
		Where(sq.Eq{"id": recordID, "user_id": userID}).
		Suffix("RETURNING " + noteColumnsList).
		ToSql()
}
