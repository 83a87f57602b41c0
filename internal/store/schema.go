package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS decks (
    deck_key     TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    last_page    INTEGER NOT NULL,
    page_count   INTEGER NOT NULL,
    opened_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decks_opened ON decks(opened_at);
`
