package residency

import (
	"fmt"
	"time"
)

// 日付の入出力書式
const DateLayout = "2006-01-02"

// 1日の秒数
const secondsPerDay = 24 * 60 * 60

// Rangeは暦日の範囲をあらわす。
// 開始日と終了日の両方を含む。
type Range struct {
	// 開始日
	bp time.Time

	// 終了日(含む)
	ep time.Time
}

// ParseDateはYYYY-MM-DD形式の日付を読んで、UTCの0時に揃えて返す
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDateFormat)
	}
	return t, nil
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// bpからepまでの範囲をあらわすRangeを返す。
// 時刻は切り捨てられる。bp > epならErrInvertedRangeを返す。
func NewRange(bp, ep time.Time) (Range, error) {
	bp, ep = truncate(bp), truncate(ep)
	if bp.After(ep) {
		return Range{}, fmt.Errorf("%s > %s: %w", bp.Format(DateLayout), ep.Format(DateLayout), ErrInvertedRange)
	}
	return Range{bp, ep}, nil
}

// ParseRangeはYYYY-MM-DD形式の開始日と終了日からRangeを返す
func ParseRange(start, end string) (Range, error) {
	bp, err := ParseDate(start)
	if err != nil {
		return Range{}, err
	}
	ep, err := ParseDate(end)
	if err != nil {
		return Range{}, err
	}
	return NewRange(bp, ep)
}

// yearの1月1日から12月31日までを返す
func Year(year int) Range {
	return Range{
		bp: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		ep: time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

func (r Range) Start() time.Time { return r.bp }
func (r Range) End() time.Time   { return r.ep }

// 範囲に含まれる日数を返す。
// 約292年を超える範囲もtime.Durationを経由せず秒単位で数える。
func (r Range) Days() int {
	return int((r.ep.Unix()-r.bp.Unix())/secondsPerDay) + 1
}

// 1日でも重なっていたらtrue
func (r Range) Overlaps(r1 Range) bool {
	return !later(r.bp, r1.bp).After(earlier(r.ep, r1.ep))
}

// Clipはr1に含まれる部分を返す。
// 重なりが無ければfalseを返す。
func (r Range) Clip(r1 Range) (Range, bool) {
	if !r.Overlaps(r1) {
		return Range{}, false
	}
	return Range{later(r.bp, r1.bp), earlier(r.ep, r1.ep)}, true
}

// Rangeが同じ値であればtrueを返す
func (r Range) Equal(r1 Range) bool {
	return r.bp.Equal(r1.bp) && r.ep.Equal(r1.ep)
}

func (r Range) String() string {
	return fmt.Sprintf("%s .. %s", r.bp.Format(DateLayout), r.ep.Format(DateLayout))
}

func later(t1, t2 time.Time) time.Time {
	if t1.After(t2) {
		return t1
	}
	return t2
}

func earlier(t1, t2 time.Time) time.Time {
	if t1.Before(t2) {
		return t1
	}
	return t2
}
