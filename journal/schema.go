// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	tax_rate REAL NOT NULL,
	wealth_threshold REAL NOT NULL,
	base_growth_rate REAL NOT NULL,
	high_wealth_premium REAL NOT NULL,
	redistribution_efficiency REAL NOT NULL,
	years INTEGER NOT NULL,
	final_top REAL NOT NULL,
	final_middle REAL NOT NULL,
	final_lower REAL NOT NULL,
	total_revenue REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshots (
	run_id TEXT NOT NULL,
	year INTEGER NOT NULL,
	ultra_wealthy REAL NOT NULL,
	middle_wealth REAL NOT NULL,
	lower_wealth REAL NOT NULL,
	tax_collected REAL NOT NULL,
	PRIMARY KEY (run_id, year)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_run ON snapshots(run_id);
`
