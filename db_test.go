package wallclock

import (
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestValue(t *testing.T) {
	v, err := MustNew(15, 4, 5).Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "15:04:05" {
		t.Fatalf("wrong driver value: %v", v)
	}
}

func TestScan(t *testing.T) {
	var wct Time
	if err := wct.Scan("17:15:30"); err != nil {
		t.Fatal(err)
	}
	if !wct.Equal(MustNew(17, 15, 30)) {
		t.Fatalf("string: %v", wct)
	}

	if err := wct.Scan([]byte("09:30:00")); err != nil {
		t.Fatal(err)
	}
	if !wct.Equal(MustNew(9, 30, 0)) {
		t.Fatalf("bytes: %v", wct)
	}

	if err := wct.Scan(time.Date(2025, 12, 15, 16, 0, 30, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if !wct.Equal(MustNew(16, 0, 30)) {
		t.Fatalf("time.Time: %v", wct)
	}

	if err := wct.Scan(int64(15 * 3600)); err != nil {
		t.Fatal(err)
	}
	if !wct.Equal(MustNew(15, 0, 0)) {
		t.Fatalf("int64: %v", wct)
	}

	if err := wct.Scan(uint32(61)); err != nil {
		t.Fatal(err)
	}
	if !wct.Equal(MustNew(0, 1, 1)) {
		t.Fatalf("uint32: %v", wct)
	}

	if err := wct.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if !wct.Equal(MustNew(0, 1, 1)) {
		t.Fatalf("nil should leave the value untouched: %v", wct)
	}

	if err := wct.Scan("25:00:00"); err == nil {
		t.Fatal("out-of-range text should fail")
	}
	if err := wct.Scan(int64(86400)); err == nil {
		t.Fatal("out-of-range offset should fail")
	}
	if err := wct.Scan(3.14); err == nil {
		t.Fatal("unsupported type should fail")
	}
}

func TestGormSqlite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("test.db"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}

	sq, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	if err = sq.Ping(); err != nil {
		t.Fatal(err)
	}

	v := db.Exec(`
		create table if not exists meeting (
			id integer primary key autoincrement,
			start_time time not null default '00:00:00'
		)
		`)
	if v.Error != nil {
		t.Fatal(v.Error)
	}

	wct := MustNew(15, 0, 0)
	v = db.Exec("insert into meeting (start_time) values (?)", wct)
	if v.Error != nil {
		t.Fatal(v.Error)
	}

	var row struct {
		Id        int
		StartTime Time
	}
	v = db.Raw("select id, start_time from meeting order by id desc limit 1").Scan(&row)
	if v.Error != nil {
		t.Fatal(v.Error)
	}
	t.Logf("row: %+v", row)
	if !row.StartTime.Equal(wct) {
		t.Fatalf("column round trip mismatch: %v != %v", row.StartTime, wct)
	}

	if err = os.Remove("test.db"); err != nil {
		logrus.Infof("Failed to delete test.db, %v", err)
	}
}
