package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at           TEXT NOT NULL,
    scenario             TEXT NOT NULL,
    initial              TEXT NOT NULL,
    monthly              TEXT NOT NULL,
    rate                 TEXT NOT NULL,
    tax_rate             TEXT NOT NULL,
    years                INTEGER NOT NULL,
    regime               TEXT NOT NULL,
    final_value          TEXT NOT NULL,
    total_invested       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
