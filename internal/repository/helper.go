package repository

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"
)

const (
	timeFormat = time.RFC3339Nano
	cursorSep  = "|"

	PageMinNum     = 1
	PageMaxNum     = 100
	DefaultPageNum = 10
)

// DecodeCursor will decode cursor from user for mysql.
// The cursor carries the created_at and id of the last row of the previous page.
func DecodeCursor(encoded string) (time.Time, int64, error) {
	byt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return time.Time{}, 0, err
	}

	timeString, idString, found := strings.Cut(string(byt), cursorSep)
	t, err := time.Parse(timeFormat, timeString)
	if err != nil {
		return time.Time{}, 0, err
	}
	if !found {
		return t, 0, nil
	}
	id, err := strconv.ParseInt(idString, 10, 64)
	if err != nil {
		return time.Time{}, 0, err
	}
	return t, id, nil
}

// EncodeCursor will encode cursor from mysql to user
func EncodeCursor(t time.Time, id int64) string {
	raw := t.Format(timeFormat) + cursorSep + strconv.FormatInt(id, 10)

	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// PageVerify clamps num into the allowed page size range
func PageVerify(num *int64) {
	if *num < PageMinNum || *num > PageMaxNum {
		*num = DefaultPageNum
	}
}
