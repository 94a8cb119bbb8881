package history

const schemaV1 = `
CREATE TABLE IF NOT EXISTS inspections (
    inspection_id  INTEGER PRIMARY KEY AUTOINCREMENT,
    file           TEXT NOT NULL,
    source         TEXT NOT NULL,
    file_size      INTEGER NOT NULL DEFAULT 0,
    num_rows       INTEGER NOT NULL DEFAULT 0,
    row_groups     INTEGER NOT NULL DEFAULT 0,
    columns        INTEGER NOT NULL DEFAULT 0,
    app_version    TEXT,
    inspected_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_inspections_time
    ON inspections(inspected_at DESC);
`
