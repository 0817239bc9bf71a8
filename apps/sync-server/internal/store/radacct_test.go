package store

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
)

// insertSession はFreeRADIUSと同じ書式で日時を書き込む。
func insertSession(t *testing.T, db *sqlx.DB, id, username string, start time.Time, stop *time.Time, in, out int64) {
	t.Helper()
	var stopText any
	if stop != nil {
		stopText = stop.UTC().Format(accountingTimeLayout)
	}
	_, err := db.Exec(`INSERT INTO radacct
		(acctsessionid, username, nasipaddress, framedipaddress, acctstarttime, acctstoptime, acctinputoctets, acctoutputoctets)
		VALUES (?, ?, '10.0.0.1', '100.64.0.2', ?, ?, ?, ?)`,
		id, username, start.UTC().Format(accountingTimeLayout), stopText, in, out)
	if err != nil {
		t.Fatalf("insert radacct: %v", err)
	}
}

func TestAccountingLogOpenSession(t *testing.T) {
	db := newTestDB(t)
	log := NewAccountingLog(db)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	stop := base.Add(time.Hour)
	insertSession(t, db, "s1", "alice", base, &stop, 100, 200)
	insertSession(t, db, "s2", "alice", base.Add(2*time.Hour), nil, 10, 20)
	insertSession(t, db, "s3", "alice", base.Add(3*time.Hour), nil, 1, 2)
	insertSession(t, db, "s4", "bob", base, &stop, 1, 1)

	online, err := log.HasOpenSession(ctx, "alice")
	if err != nil || !online {
		t.Errorf("HasOpenSession(alice) = %v, %v, want true", online, err)
	}
	online, err = log.HasOpenSession(ctx, "bob")
	if err != nil || online {
		t.Errorf("HasOpenSession(bob) = %v, %v, want false", online, err)
	}

	s, err := log.LatestOpenSession(ctx, "alice")
	if err != nil {
		t.Fatalf("LatestOpenSession failed: %v", err)
	}
	if s == nil || s.AcctSessionID != "s3" {
		t.Fatalf("LatestOpenSession() = %+v, want s3", s)
	}
	if !s.StartTime.Equal(base.Add(3 * time.Hour)) {
		t.Errorf("StartTime = %v, want %v", s.StartTime, base.Add(3*time.Hour))
	}
	if s.StopTime != nil {
		t.Errorf("StopTime = %v, want nil", s.StopTime)
	}

	none, err := log.LatestOpenSession(ctx, "bob")
	if err != nil || none != nil {
		t.Errorf("LatestOpenSession(bob) = %+v, %v, want nil", none, err)
	}
}

func TestAccountingLogOnlineAmong(t *testing.T) {
	db := newTestDB(t)
	log := NewAccountingLog(db)
	ctx := context.Background()

	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	stop := now.Add(time.Minute)
	insertSession(t, db, "a", "alice", now, nil, 0, 0)
	insertSession(t, db, "a2", "alice", now.Add(time.Minute), nil, 0, 0)
	insertSession(t, db, "b", "bob", now, &stop, 0, 0)
	insertSession(t, db, "c", "carol", now, nil, 0, 0)

	got, err := log.OnlineAmong(ctx, []string{"alice", "bob", "dave"})
	if err != nil {
		t.Fatalf("OnlineAmong failed: %v", err)
	}
	if !slices.Equal(got, []string{"alice"}) {
		t.Errorf("OnlineAmong() = %v, want [alice]", got)
	}

	got, err = log.OnlineAmong(ctx, nil)
	if err != nil || len(got) != 0 {
		t.Errorf("OnlineAmong(nil) = %v, %v", got, err)
	}
}

func TestAccountingLogHistoryAndUsage(t *testing.T) {
	db := newTestDB(t)
	log := NewAccountingLog(db)
	ctx := context.Background()

	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		start := day.Add(time.Duration(i) * 24 * time.Hour)
		stop := start.Add(time.Hour)
		insertSession(t, db, string(rune('a'+i)), "alice", start, &stop, 100, 1000)
	}

	hist, err := log.History(ctx, "alice", 3)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(hist) != 3 {
		t.Fatalf("len(History()) = %d, want 3", len(hist))
	}
	if hist[0].AcctSessionID != "e" || hist[2].AcctSessionID != "c" {
		t.Errorf("History order = %s..%s, want e..c", hist[0].AcctSessionID, hist[2].AcctSessionID)
	}

	usage, err := log.Usage(ctx, "alice", day, day.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("Usage failed: %v", err)
	}
	// 5/1, 5/2, 5/3 の3セッション
	if usage.Upload != 300 || usage.Download != 3000 || usage.Total != 3300 {
		t.Errorf("Usage() = %+v, want 300/3000/3300", usage)
	}

	empty, err := log.Usage(ctx, "nobody", day, day.Add(time.Hour))
	if err != nil || empty.Total != 0 {
		t.Errorf("Usage(nobody) = %+v, %v", empty, err)
	}
}

func TestAccountingLogUsageIncludesBoundaries(t *testing.T) {
	db := newTestDB(t)
	log := NewAccountingLog(db)
	ctx := context.Background()

	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 31, 23, 59, 59, 0, time.UTC)
	insertSession(t, db, "before", "alice", from.Add(-time.Second), nil, 1, 1)
	insertSession(t, db, "first", "alice", from, nil, 10, 100)
	insertSession(t, db, "last", "alice", to, nil, 20, 200)
	insertSession(t, db, "after", "alice", to.Add(time.Second), nil, 1, 1)

	usage, err := log.Usage(ctx, "alice", from, to)
	if err != nil {
		t.Fatalf("Usage failed: %v", err)
	}
	if usage.Upload != 30 || usage.Download != 300 || usage.Total != 330 {
		t.Errorf("Usage() = %+v, want 30/300/330", usage)
	}

	// 非UTCの境界もUTCに揃えて比較する
	jst := time.FixedZone("JST", 9*60*60)
	usage, err = log.Usage(ctx, "alice", from.In(jst), from.In(jst))
	if err != nil {
		t.Fatalf("Usage failed: %v", err)
	}
	if usage.Total != 110 {
		t.Errorf("Usage(from, from) total = %d, want 110", usage.Total)
	}
}
