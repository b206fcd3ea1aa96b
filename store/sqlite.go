package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/msanatan/stackabuse-scraper/scraper"
)

// SqliteStore archives crawls in a SQLite database file.
type SqliteStore struct {
	db *sql.DB
}

// NewSqliteStore opens (or creates) the database at path and ensures the
// schema exists.
func NewSqliteStore(path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SqliteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// initSchema creates the crawl tables if they don't exist. The position
// column keeps the crawl's page-then-in-page ordering stable across reads.
func (s *SqliteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS crawls (
		id TEXT PRIMARY KEY,
		start_url TEXT NOT NULL,
		post_count INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	CREATE TABLE IF NOT EXISTS posts (
		crawl_id TEXT NOT NULL REFERENCES crawls(id),
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		link TEXT NOT NULL,
		date TEXT NOT NULL,
		author TEXT NOT NULL DEFAULT '',
		editor TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		categories TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (crawl_id, position)
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}

// SaveCrawl writes one crawl row plus one row per post, all in a single
// transaction so a failed write never leaves a partial crawl behind.
func (s *SqliteStore) SaveCrawl(startURL string, posts []scraper.Post) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	crawlID := uuid.NewString()
	_, err = tx.Exec(
		"INSERT INTO crawls (id, start_url, post_count, created_at) VALUES (?, ?, ?, ?)",
		crawlID, startURL, len(posts), time.Now(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert crawl: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO posts
		(crawl_id, position, title, link, date, author, editor, description, categories, content)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare post insert: %w", err)
	}
	defer stmt.Close()

	for i, post := range posts {
		_, err = stmt.Exec(
			crawlID, i,
			post.Title, post.Link, post.Date,
			post.Author, post.Editor, post.Description,
			strings.Join(post.Categories, ","), post.Content,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert post %q: %w", post.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit crawl: %w", err)
	}
	return crawlID, nil
}

// Posts returns the stored posts of a crawl in their original order.
func (s *SqliteStore) Posts(crawlID string) ([]scraper.Post, error) {
	rows, err := s.db.Query(`
		SELECT title, link, date, author, editor, description, categories, content
		FROM posts
		WHERE crawl_id = ?
		ORDER BY position
	`, crawlID)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []scraper.Post
	for rows.Next() {
		var post scraper.Post
		var categories string
		err := rows.Scan(
			&post.Title, &post.Link, &post.Date,
			&post.Author, &post.Editor, &post.Description,
			&categories, &post.Content,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		if categories != "" {
			post.Categories = strings.Split(categories, ",")
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
