package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- One row per verification run
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    sources_pattern TEXT NOT NULL,
    results_pattern TEXT NOT NULL,
    source_format TEXT NOT NULL DEFAULT 'text',
    strict BOOLEAN DEFAULT 0,

    source_files INTEGER DEFAULT 0,
    result_files INTEGER DEFAULT 0,
    distinct_words INTEGER DEFAULT 0,
    total_words INTEGER DEFAULT 0,
    claimed_words INTEGER DEFAULT 0,

    verdict TEXT NOT NULL,        -- success, mismatch
    mismatch_word TEXT,
    expected_count INTEGER,
    actual_count INTEGER,         -- NULL when the word was missing

    -- sha256 over input names and contents
    fingerprint TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_verdict ON runs(verdict);
CREATE INDEX IF NOT EXISTS idx_runs_fingerprint ON runs(fingerprint);

-- Source documents seen by a run
CREATE TABLE IF NOT EXISTS run_sources (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    size_bytes INTEGER DEFAULT 0,
    word_count INTEGER DEFAULT 0,
    language TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_sources_run ON run_sources(run_id);
`
