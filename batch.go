package residency

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// BatchStayは一括入力の1件。日付はYYYY-MM-DD形式の文字列のまま持つ。
type BatchStay struct {
	Continent string `yaml:"continent"`
	Start     string `yaml:"start"`
	End       string `yaml:"end"`
}

// Batchは台帳に順に登録する滞在の一覧
type Batch struct {
	Stays []BatchStay `yaml:"stays"`
}

// LoadBatchはrからYAML形式の一覧を読む。
// 知らないキーがあればエラーを返す。
func LoadBatch(r io.Reader) (Batch, error) {
	var b Batch
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return Batch{}, fmt.Errorf("decode batch: %w", err)
	}
	return b, nil
}

// Applyはbの滞在を先頭から登録する。
// 失敗した時点で止めて、何件目(1から数える)で失敗したかを含めたエラーを返す。
// それまでに登録した滞在は残る。
func (l *Ledger) Apply(b Batch) ([]StayID, error) {
	ids := make([]StayID, 0, len(b.Stays))
	for i, s := range b.Stays {
		id, err := l.AddStay(s.Continent, s.Start, s.End)
		if err != nil {
			return ids, fmt.Errorf("stay %d: %w", i+1, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
