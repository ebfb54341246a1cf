// Package residencyは大陸ごとの滞在期間を記録して集計する。
package residency // import "lufia.org/pkg/residency"

import (
	"container/list"
	"fmt"
	"iter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StayIDは台帳に登録された滞在を識別する
type StayID uuid.UUID

// ParseStayIDは文字列からStayIDを返す
func ParseStayID(s string) (StayID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return StayID{}, fmt.Errorf("parse stay id %q: %w", s, err)
	}
	return StayID(id), nil
}

func (id StayID) String() string {
	return uuid.UUID(id).String()
}

// Stayはひとつの大陸にひとつづきで滞在した期間をあらわす
type Stay struct {
	ID        StayID
	Continent Continent
	Range     Range
}

// 開始日、大陸名の順で並べたときにsがs1より前ならtrue
func (s *Stay) less(s1 *Stay) bool {
	if !s.Range.bp.Equal(s1.Range.bp) {
		return s.Range.bp.Before(s1.Range.bp)
	}
	return s.Continent.String() < s1.Continent.String()
}

// Ledgerは滞在の台帳。
// どの2つの滞在も期間が重ならないことを常に保つ。
// ゼロ値は空の台帳として使える。並行して呼び出してはいけない。
type Ledger struct {
	// 開始日順に並べた*Stay
	v   *list.List
	ids map[StayID]*list.Element
	log *zap.Logger
}

type Option func(*Ledger)

// WithLoggerは変更の記録に使うロガーを設定する
func WithLogger(log *zap.Logger) Option {
	return func(l *Ledger) {
		l.log = log
	}
}

// 空の台帳を返す
func New(opts ...Option) *Ledger {
	l := &Ledger{}
	for _, opt := range opts {
		opt(l)
	}
	l.init()
	return l
}

func (l *Ledger) init() {
	if l.v == nil {
		l.v = list.New()
		l.ids = make(map[StayID]*list.Element)
	}
	if l.log == nil {
		l.log = zap.NewNop()
	}
}

// 登録された滞在の数を返す
func (l *Ledger) Len() int {
	if l.v == nil {
		return 0
	}
	return l.v.Len()
}

// AddStayは文字列で与えられた滞在を検証して登録する。
// 大陸名、日付の書式、日付の前後、他の滞在との重なりの順に検証し、
// 最初に失敗した検証のエラーを返す。失敗した場合は台帳を変更しない。
func (l *Ledger) AddStay(continent, start, end string) (StayID, error) {
	l.init()
	c, r, err := parseStay(continent, start, end)
	if err != nil {
		l.reject("add", err)
		return StayID{}, err
	}
	return l.Add(c, r)
}

// Addは滞在を登録して、そのIDを返す。
// rはNewRange、ParseRange、Yearで作ったものでなければならない。
// ゼロ値のRangeにはErrInvalidDateFormatを返す。
func (l *Ledger) Add(c Continent, r Range) (StayID, error) {
	l.init()
	if !c.Valid() {
		err := fmt.Errorf("%d: %w", int(c), ErrInvalidContinent)
		l.reject("add", err)
		return StayID{}, err
	}
	if r.bp.IsZero() {
		err := fmt.Errorf("zero range: %w", ErrInvalidDateFormat)
		l.reject("add", err)
		return StayID{}, err
	}
	if err := l.conflict(r, nil); err != nil {
		l.reject("add", err)
		return StayID{}, err
	}
	s := &Stay{ID: StayID(uuid.New()), Continent: c, Range: r}
	l.insert(s)
	l.log.Debug("stay added", zap.Stringer("id", s.ID), zap.Stringer("continent", c), zap.Stringer("range", r))
	return s.ID, nil
}

// RemoveStayはidの滞在を取り除く。
// 見つからない場合はErrNotFoundを返す。
func (l *Ledger) RemoveStay(id StayID) error {
	l.init()
	e, ok := l.ids[id]
	if !ok {
		err := fmt.Errorf("%v: %w", id, ErrNotFound)
		l.reject("remove", err)
		return err
	}
	l.v.Remove(e)
	delete(l.ids, id)
	l.log.Debug("stay removed", zap.Stringer("id", id))
	return nil
}

// UpdateStayはidの滞在を置き換える。
// 検証はAddStayと同じだが、置き換える滞在自身との重なりは無視する。
func (l *Ledger) UpdateStay(id StayID, continent, start, end string) error {
	l.init()
	e, ok := l.ids[id]
	if !ok {
		err := fmt.Errorf("%v: %w", id, ErrNotFound)
		l.reject("update", err)
		return err
	}
	c, r, err := parseStay(continent, start, end)
	if err != nil {
		l.reject("update", err)
		return err
	}
	if err := l.conflict(r, e); err != nil {
		l.reject("update", err)
		return err
	}
	l.v.Remove(e)
	s := &Stay{ID: id, Continent: c, Range: r}
	l.insert(s)
	l.log.Debug("stay updated", zap.Stringer("id", id), zap.Stringer("continent", c), zap.Stringer("range", r))
	return nil
}

// idの滞在を返す
func (l *Ledger) Get(id StayID) (Stay, bool) {
	if l.ids == nil {
		return Stay{}, false
	}
	e, ok := l.ids[id]
	if !ok {
		return Stay{}, false
	}
	return *e.Value.(*Stay), true
}

// Allは全ての滞在を開始日順に返す。
// 開始日が同じ場合は大陸名の順になる。
func (l *Ledger) All() iter.Seq[Stay] {
	return func(yield func(Stay) bool) {
		if l.v == nil {
			return
		}
		for e := l.v.Front(); e != nil; e = e.Next() {
			if !yield(*e.Value.(*Stay)) {
				return
			}
		}
	}
}

func parseStay(continent, start, end string) (Continent, Range, error) {
	c, err := ParseContinent(continent)
	if err != nil {
		return 0, Range{}, err
	}
	r, err := ParseRange(start, end)
	if err != nil {
		return 0, Range{}, err
	}
	return c, r, nil
}

// rと重なる滞在があればErrOverlappingRangeを返す。skipは比較しない。
func (l *Ledger) conflict(r Range, skip *list.Element) error {
	for e := l.v.Front(); e != nil; e = e.Next() {
		s := e.Value.(*Stay)
		if s.Range.bp.After(r.ep) {
			break
		}
		if e != skip && s.Range.Overlaps(r) {
			return fmt.Errorf("%v with %v %v: %w", r, s.Continent, s.Range, ErrOverlappingRange)
		}
	}
	return nil
}

func (l *Ledger) insert(s *Stay) {
	for e := l.v.Front(); e != nil; e = e.Next() {
		if s.less(e.Value.(*Stay)) {
			l.ids[s.ID] = l.v.InsertBefore(s, e)
			return
		}
	}
	l.ids[s.ID] = l.v.PushBack(s)
}

func (l *Ledger) reject(op string, err error) {
	l.log.Debug("stay rejected", zap.String("op", op), zap.String("kind", Kind(err)), zap.Error(err))
}
