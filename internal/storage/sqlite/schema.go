// ABOUTME: SQLite schema for the product vector index
// ABOUTME: One documents table holding text, embedding BLOB, and metadata
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Indexed catalog documents (one per product, id = catalog row ordinal)
CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY,
    text TEXT NOT NULL,
    vector BLOB NOT NULL,
    name TEXT NOT NULL,
    gender TEXT NOT NULL,
    description TEXT DEFAULT '',
    price REAL NOT NULL,
    image_urls TEXT DEFAULT '',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Equality pre-filter for similarity search
CREATE INDEX IF NOT EXISTS idx_documents_gender ON documents(gender);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
