package attr

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// PersistentArgumentCache is an optional, best-effort cross-run overlay
// on top of Cache: it remembers overloadCheck verdicts keyed by a
// string-rendered (source path, offset, target type, check mode) tuple,
// so a second compilation of largely-unchanged sources can skip
// re-running expensive speculative attribution for arguments whose
// surrounding code hasn't moved. A hit is returned as the verdict
// without re-running the check, so a stale entry yields a stale verdict;
// only the uncached overload check is skipped, speculative attribution of
// the argument still runs. Attached with Attributor.SetPersistentCache;
// the in-process per-argument results are consulted first.
type PersistentArgumentCache struct {
	db *sql.DB
}

// OpenPersistentCache opens (creating if absent) the sqlite-backed
// overlay at path.
func OpenPersistentCache(path string) (*PersistentArgumentCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	const schema = `
CREATE TABLE IF NOT EXISTS overload_check (
	key TEXT PRIMARY KEY,
	ok  INTEGER NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &PersistentArgumentCache{db: db}, nil
}

func (p *PersistentArgumentCache) Close() error {
	return p.db.Close()
}

func persistKey(pos UniquePos, ri ResultInfo) string {
	return fmt.Sprintf("%d:%d:%s:%d", pos.Src.Hash(), pos.Off, ri.Target.String(), ri.CheckMode)
}

// Lookup returns a previously-recorded verdict for (pos, ri), or
// ok=false if nothing was recorded.
func (p *PersistentArgumentCache) Lookup(pos UniquePos, ri ResultInfo) (verdict bool, found bool) {
	row := p.db.QueryRow(`SELECT ok FROM overload_check WHERE key = ?`, persistKey(pos, ri))
	var v int
	if err := row.Scan(&v); err != nil {
		return false, false
	}
	return v != 0, true
}

// Record persists (pos, ri) -> verdict, overwriting any prior entry.
func (p *PersistentArgumentCache) Record(pos UniquePos, ri ResultInfo, verdict bool) error {
	v := 0
	if verdict {
		v = 1
	}
	_, err := p.db.Exec(`INSERT INTO overload_check(key, ok) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET ok = excluded.ok`, persistKey(pos, ri), v)
	return err
}
