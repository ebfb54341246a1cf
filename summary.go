package residency

// Summaryは大陸ごとの滞在日数。日数が0の大陸は含まない。
type Summary map[Continent]int

// 全大陸の日数の合計を返す
func (s Summary) Total() int {
	n := 0
	for _, days := range s {
		n += days
	}
	return n
}

// SummaryBetweenは各滞在をwの範囲に切り詰めて、大陸ごとの日数を返す
func (l *Ledger) SummaryBetween(w Range) Summary {
	sum := make(Summary)
	for s := range l.All() {
		if s.Range.bp.After(w.ep) {
			break
		}
		if r, ok := s.Range.Clip(w); ok {
			sum[s.Continent] += r.Days()
		}
	}
	return sum
}

// SummaryByYearはyear年の1月1日から12月31日までの大陸ごとの日数を返す
func (l *Ledger) SummaryByYear(year int) Summary {
	return l.SummaryBetween(Year(year))
}

// Projectionは年、大陸ごとに滞在期間を並べたもの。
// 年をまたぐ滞在はそれぞれの年の範囲に切り詰めて含む。
type Projection map[int]map[Continent][]Range

// Projectionは台帳から年ごとの表示用データを作って返す。
// 返した値を変更しても台帳には影響しない。
func (l *Ledger) Projection() Projection {
	p := make(Projection)
	for s := range l.All() {
		for y := s.Range.bp.Year(); y <= s.Range.ep.Year(); y++ {
			r, _ := s.Range.Clip(Year(y))
			m := p[y]
			if m == nil {
				m = make(map[Continent][]Range)
				p[y] = m
			}
			m[s.Continent] = append(m[s.Continent], r)
		}
	}
	return p
}

// 滞在が1日でも含まれる年を昇順で返す
func (l *Ledger) Years() []int {
	var a []int
	for s := range l.All() {
		for y := s.Range.bp.Year(); y <= s.Range.ep.Year(); y++ {
			if n := len(a); n == 0 || a[n-1] < y {
				a = append(a, y)
			}
		}
	}
	return a
}
