package wallclock

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"
)

// Implements driver.Valuer in database/sql. The value is the 'HH:MM:SS' text
// form, accepted as a TIME literal by common SQL dialects.
func (t Time) Value() (driver.Value, error) {
	return t.String(), nil
}

// Implements sql.Scanner in database/sql.
//
// Drivers surface TIME columns as time.Time, []byte or string; integer kinds
// are read as seconds elapsed since midnight.
func (t *Time) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*t = FromTime(v)
	case []byte:
		p, err := Parse(string(v))
		if err != nil {
			return err
		}
		*t = p
	case string:
		p, err := Parse(v)
		if err != nil {
			return err
		}
		*t = p
	case int64, int, uint, uint64, int32, uint32, int16, uint16, *int64, *int, *uint, *uint64, *int32, *uint32, *int16, *uint16:
		n, err := cast.ToInt64E(reflect.Indirect(reflect.ValueOf(v)).Interface())
		if err != nil {
			return err
		}
		p, err := FromMidnightOffset(int(n))
		if err != nil {
			return err
		}
		*t = p
	default:
		err := fmt.Errorf("invalid field type '%v' for wallclock.Time, unable to convert, %#v", reflect.TypeOf(value), v)
		return err
	}
	return nil
}
