package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

-- One row per fetch invocation, successful or not.
CREATE TABLE IF NOT EXISTS fetches (
    fetch_id INTEGER PRIMARY KEY AUTOINCREMENT,
    requested_title TEXT,
    requested_url TEXT,
    final_url TEXT,
    status TEXT NOT NULL,          -- success, failed
    error_type TEXT,               -- invalid_request, request_error, not_found, missing_container
    error_message TEXT,
    status_code INTEGER DEFAULT 0, -- 0 for network errors
    paragraph_count INTEGER DEFAULT 0,
    language TEXT,
    fetched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_fetches_status ON fetches(status);
CREATE INDEX IF NOT EXISTS idx_fetches_fetched_at ON fetches(fetched_at);
`
